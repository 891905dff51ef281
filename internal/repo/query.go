package repo

import (
	"fmt"
	"strings"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
)

const taskColumns = "id, title, description, priority, due_date, is_completed, created_at, updated_at"

// whereClause собирает условия фильтрации. Все фильтры соединяются через AND,
// отсутствующий фильтр не дает условия вовсе.
func whereClause(f model.TaskFilter) (string, []any) {
	var conds []string
	var args []any

	if f.IsCompleted != nil {
		args = append(args, *f.IsCompleted)
		conds = append(conds, fmt.Sprintf("is_completed = $%d", len(args)))
	}
	if f.Priority != nil {
		args = append(args, int16(*f.Priority))
		conds = append(conds, fmt.Sprintf("priority = $%d", len(args)))
	}
	if f.DueBefore != nil {
		args = append(args, *f.DueBefore)
		conds = append(conds, fmt.Sprintf("(due_date IS NOT NULL AND due_date <= $%d)", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause: вторичный ключ id ASC дает детерминированную пагинацию при
// одинаковых значениях первичного ключа сортировки. NULL-дедлайны всегда
// в конце, иначе они вытесняют реальные сроки с первой страницы.
func orderClause(p model.ListParams) string {
	dir := "DESC"
	if !p.Descending() {
		dir = "ASC"
	}

	col := string(p.ResolveSort())
	if col == string(model.SortByDueDate) {
		return fmt.Sprintf(" ORDER BY %s %s NULLS LAST, id ASC", col, dir)
	}
	return fmt.Sprintf(" ORDER BY %s %s, id ASC", col, dir)
}

// buildListQuery возвращает запрос страницы. Параметры пагинации должны быть
// уже нормализованы вызывающей стороной.
func buildListQuery(f model.TaskFilter, p model.ListParams) (string, []any) {
	where, args := whereClause(f)

	args = append(args, p.PageSize)
	limit := fmt.Sprintf(" LIMIT $%d", len(args))
	args = append(args, (p.Page-1)*p.PageSize)
	offset := fmt.Sprintf(" OFFSET $%d", len(args))

	query := "SELECT " + taskColumns + " FROM tasks" + where + orderClause(p) + limit + offset
	return query, args
}

// buildCountQuery считает общее число строк под теми же фильтрами,
// без учета пагинации.
func buildCountQuery(f model.TaskFilter) (string, []any) {
	where, args := whereClause(f)
	return "SELECT COUNT(*) FROM tasks" + where, args
}
