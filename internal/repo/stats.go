package repo

import (
	"context"

	"github.com/BuzzLyutic/task-tracker-api/internal/model"
)

type Stats struct {
	TotalTasks     int            `json:"totalTasks"`
	CompletedTasks int            `json:"completedTasks"`
	OverdueTasks   int            `json:"overdueTasks"`
	ByPriority     map[string]int `json:"byPriority"`
}

// GetStats агрегирует счетчики по всей таблице. Просроченной считается
// незавершенная задача с дедлайном в прошлом.
func (r *TaskRepo) GetStats(ctx context.Context) (Stats, error) {
	stats := Stats{ByPriority: make(map[string]int)}

	err := r.pool.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE is_completed),
		       COUNT(*) FILTER (WHERE NOT is_completed AND due_date IS NOT NULL AND due_date < now())
		FROM tasks
	`).Scan(&stats.TotalTasks, &stats.CompletedTasks, &stats.OverdueTasks)
	if err != nil {
		return stats, err
	}

	rows, err := r.pool.Query(ctx, "SELECT priority, COUNT(*) FROM tasks GROUP BY priority")
	if err != nil {
		return stats, err
	}
	defer rows.Close()

	for rows.Next() {
		var prio int16
		var count int
		if err := rows.Scan(&prio, &count); err != nil {
			return stats, err
		}
		stats.ByPriority[model.Priority(prio).String()] = count
	}
	return stats, rows.Err()
}
