package model

import "time"

// Чистые преобразования между сущностью и контрактами. Момент времени
// передается снаружи, чтобы функции оставались детерминированными.

func (t Task) ToResponse() TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    t.Priority,
		DueDate:     t.DueDate,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToResponses(tasks []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ToResponse())
	}
	return out
}

// NewTask собирает сущность из контракта создания: ID назначит БД,
// завершенность всегда false, обе метки времени равны now.
func NewTask(req CreateTaskRequest, now time.Time) Task {
	t := Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		IsCompleted: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	return t
}

// ApplyUpdate заменяет изменяемые поля и обновляет updated_at.
// ID и created_at не трогаем.
func (t *Task) ApplyUpdate(req UpdateTaskRequest, now time.Time) {
	t.Title = req.Title
	t.Description = req.Description
	if req.Priority != nil {
		t.Priority = *req.Priority
	}
	t.DueDate = req.DueDate
	t.IsCompleted = req.IsCompleted
	t.UpdatedAt = now
}
