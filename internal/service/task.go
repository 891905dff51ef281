package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
	"github.com/BuzzLyutic/task-tracker-api/internal/repo"
)

var (
	ErrValidation = errors.New("validation error")
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 1000

	defaultPageSize = 10
	maxPageSize     = 100
	maxPage         = 1_000_000
)

type TaskService struct {
	repo repo.TaskRepository
}

func NewTaskService(repo repo.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, req model.CreateTaskRequest) (model.Task, error) {
	now := time.Now().UTC()

	if err := validateFields(req.Title, req.Description, req.Priority); err != nil {
		return model.Task{}, err
	}
	// Дедлайн в прошлом отклоняется только при создании. При обновлении
	// правило сознательно не применяется повторно.
	if req.DueDate != nil && req.DueDate.Before(now) {
		return model.Task{}, fmt.Errorf("%w: due date cannot be in the past", ErrValidation)
	}

	return s.repo.Create(ctx, model.NewTask(req, now))
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

// List нормализует пагинацию и возвращает страницу, общее число строк
// и фактически примененные параметры.
func (s *TaskService) List(ctx context.Context, filter model.TaskFilter, params model.ListParams) ([]model.Task, int, model.ListParams, error) {
	params = normalize(params)
	tasks, total, err := s.repo.List(ctx, filter, params)
	return tasks, total, params, err
}

func (s *TaskService) Update(ctx context.Context, id int64, req model.UpdateTaskRequest) (model.Task, error) {
	if err := validateFields(req.Title, req.Description, req.Priority); err != nil {
		return model.Task{}, err
	}

	task, err := s.repo.Get(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	task.ApplyUpdate(req, time.Now().UTC())
	return s.repo.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) GetStats(ctx context.Context) (repo.Stats, error) {
	return s.repo.GetStats(ctx)
}

func validateFields(title string, description *string, priority *model.Priority) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	// Границы считаем в символах, не в байтах: кириллический заголовок
	// вдвое длиннее в байтах, но лимит на него тот же.
	if utf8.RuneCountInString(title) > maxTitleLen {
		return fmt.Errorf("%w: title exceeds %d characters", ErrValidation, maxTitleLen)
	}
	if description != nil && utf8.RuneCountInString(*description) > maxDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", ErrValidation, maxDescriptionLen)
	}
	if priority == nil {
		return fmt.Errorf("%w: priority is required", ErrValidation)
	}
	if !priority.Valid() {
		return fmt.Errorf("%w: unknown priority", ErrValidation)
	}
	return nil
}

// normalize ограничивает пагинацию: страница в пределах [1, 1000000], размер
// страницы в пределах [1, 100], ноль и отрицательные значения дают размер по
// умолчанию. Верхняя граница страницы не дает (page-1)*pageSize переполниться
// и уйти в отрицательный OFFSET.
func normalize(p model.ListParams) model.ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > maxPage {
		p.Page = maxPage
	}
	if p.PageSize < 1 {
		p.PageSize = defaultPageSize
	}
	if p.PageSize > maxPageSize {
		p.PageSize = maxPageSize
	}
	return p
}
