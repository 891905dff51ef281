package repo

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	pool, err := pgxpool.New(context.Background(), dbURL)
	if err != nil {
		t.Fatal(err)
	}

	// Очистка
	pool.Exec(context.Background(), "TRUNCATE tasks RESTART IDENTITY CASCADE")

	return pool
}

func newTask(title string, prio model.Priority) model.Task {
	now := time.Now().UTC()
	return model.Task{
		Title:     title,
		Priority:  prio,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestTaskRepo_Create(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTaskRepo(pool)

	created, err := repo.Create(context.Background(), newTask("Test", model.PriorityMedium))
	if err != nil {
		t.Fatal(err)
	}

	if created.ID == 0 {
		t.Error("expected non-zero ID")
	}
	if created.IsCompleted {
		t.Error("expected is_completed=false")
	}
}

func TestTaskRepo_GetNotFound(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTaskRepo(pool)

	_, err := repo.Get(context.Background(), 999999)
	if err != ErrorNotFound {
		t.Errorf("expected ErrorNotFound, got %v", err)
	}
}

func TestTaskRepo_ListCountsFilteredSet(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTaskRepo(pool)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		if _, err := repo.Create(ctx, newTask("Task", model.Priority(i%3))); err != nil {
			t.Fatal(err)
		}
	}

	high := model.PriorityHigh
	tasks, total, err := repo.List(ctx, model.TaskFilter{Priority: &high}, model.ListParams{Page: 1, PageSize: 1})
	if err != nil {
		t.Fatal(err)
	}

	if len(tasks) != 1 {
		t.Errorf("expected page of 1, got %d", len(tasks))
	}
	if total != 2 {
		t.Errorf("expected totalCount=2 for High, got %d", total)
	}
}

func TestTaskRepo_UpdateNotFound(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTaskRepo(pool)

	task := newTask("Ghost", model.PriorityLow)
	task.ID = 999999

	_, err := repo.Update(context.Background(), task)
	if err != ErrorNotFound {
		t.Errorf("expected ErrorNotFound, got %v", err)
	}
}

func TestTaskRepo_Delete(t *testing.T) {
	pool := setupTestDB(t)
	defer pool.Close()

	repo := NewTaskRepo(pool)
	ctx := context.Background()

	created, err := repo.Create(ctx, newTask("To delete", model.PriorityLow))
	if err != nil {
		t.Fatal(err)
	}

	if err := repo.Delete(ctx, created.ID); err != nil {
		t.Fatal(err)
	}
	if err := repo.Delete(ctx, created.ID); err != ErrorNotFound {
		t.Errorf("expected ErrorNotFound on second delete, got %v", err)
	}
}
