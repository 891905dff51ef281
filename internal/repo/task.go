package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
)

var ErrorNotFound = errors.New("not found")

type TaskRepo struct { // Репозиторий для работы непосредственно с БД
	pool *pgxpool.Pool
}

func NewTaskRepo(pool *pgxpool.Pool) *TaskRepo { // Конструктор
	return &TaskRepo{
		pool: pool,
	}
}

func (r *TaskRepo) Create(ctx context.Context, t model.Task) (model.Task, error) {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (title, description, priority, due_date, is_completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`, t.Title, t.Description, int16(t.Priority), t.DueDate, t.IsCompleted, t.CreatedAt, t.UpdatedAt).Scan(&t.ID)
	return t, err
}

func (r *TaskRepo) Get(ctx context.Context, id int64) (model.Task, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+taskColumns+`
		FROM tasks
		WHERE id = $1
	`, id)

	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, ErrorNotFound
	}
	return t, err
}

// List возвращает страницу задач и общее число строк под фильтрами
func (r *TaskRepo) List(ctx context.Context, filter model.TaskFilter, params model.ListParams) ([]model.Task, int, error) {
	countQuery, countArgs := buildCountQuery(filter)

	var total int
	if err := r.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query, args := buildListQuery(filter, params)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0, params.PageSize)
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, err
		}
		tasks = append(tasks, t)
	}
	return tasks, total, rows.Err()
}

func (r *TaskRepo) Update(ctx context.Context, t model.Task) (model.Task, error) {
	cmd, err := r.pool.Exec(ctx, `
		UPDATE tasks
		SET title = $2, description = $3, priority = $4, due_date = $5, is_completed = $6, updated_at = $7
		WHERE id = $1
	`, t.ID, t.Title, t.Description, int16(t.Priority), t.DueDate, t.IsCompleted, t.UpdatedAt)
	if err != nil {
		return t, err
	}
	if cmd.RowsAffected() == 0 {
		return t, ErrorNotFound
	}
	return t, nil
}

func (r *TaskRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func scanTask(row pgx.Row) (model.Task, error) {
	var t model.Task
	var prio int16
	err := row.Scan(&t.ID, &t.Title, &t.Description, &prio, &t.DueDate, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt)
	t.Priority = model.Priority(prio)
	return t, err
}
