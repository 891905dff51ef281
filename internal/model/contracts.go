package model

import "time"

// CreateTaskRequest — входной контракт создания. Завершенность и метки времени
// клиент не задает: задача всегда создается незавершенной.
type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    *Priority  `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

// UpdateTaskRequest заменяет все изменяемые поля целиком (PUT-семантика).
type UpdateTaskRequest struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    *Priority  `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	IsCompleted bool       `json:"isCompleted"`
}

type TaskResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Priority    Priority   `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
	IsCompleted bool       `json:"isCompleted"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskPage — страница списка с метаданными пагинации. totalCount считается
// по отфильтрованному множеству, не по странице.
type TaskPage struct {
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalCount int            `json:"totalCount"`
	Tasks      []TaskResponse `json:"tasks"`
}
