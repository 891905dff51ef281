package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

// Явная таблица соответствия: в БД хранится число, на проводе — имя.
// Не полагаемся на порядок объявления констант.
var priorityNames = map[Priority]string{
	PriorityLow:    "Low",
	PriorityMedium: "Medium",
	PriorityHigh:   "High",
}

var priorityValues = map[string]Priority{
	"low":    PriorityLow,
	"medium": PriorityMedium,
	"high":   PriorityHigh,
}

func (p Priority) Valid() bool {
	_, ok := priorityNames[p]
	return ok
}

func (p Priority) String() string {
	if name, ok := priorityNames[p]; ok {
		return name
	}
	return fmt.Sprintf("Priority(%d)", int(p))
}

// ParsePriority разбирает имя приоритета без учета регистра
func ParsePriority(s string) (Priority, bool) {
	p, ok := priorityValues[strings.ToLower(s)]
	return p, ok
}

func (p Priority) MarshalJSON() ([]byte, error) {
	name, ok := priorityNames[p]
	if !ok {
		return nil, fmt.Errorf("unknown priority %d", int(p))
	}
	return json.Marshal(name)
}

func (p *Priority) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := ParsePriority(name)
	if !ok {
		return fmt.Errorf("unknown priority %q", name)
	}
	*p = parsed
	return nil
}

type Task struct {
	ID          int64
	Title       string
	Description *string
	Priority    Priority
	DueDate     *time.Time
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TaskFilter — nil-поле означает отсутствие фильтра
type TaskFilter struct {
	IsCompleted *bool
	Priority    *Priority
	DueBefore   *time.Time
}

type SortKey string

const (
	SortByCreatedAt SortKey = "created_at"
	SortByDueDate   SortKey = "due_date"
	SortByPriority  SortKey = "priority"
)

type ListParams struct {
	Page     int
	PageSize int
	SortBy   string
	Order    string
}

// ResolveSort возвращает ключ сортировки. Неизвестные значения молча
// превращаются в created_at — это осознанное поведение, не ошибка.
func (p ListParams) ResolveSort() SortKey {
	switch strings.ToLower(p.SortBy) {
	case "duedate":
		return SortByDueDate
	case "priority":
		return SortByPriority
	default:
		return SortByCreatedAt
	}
}

// Все, что не "asc", считается убыванием.
func (p ListParams) Descending() bool {
	return p.Order != "asc"
}
