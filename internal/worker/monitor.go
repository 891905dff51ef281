package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/task-tracker-api/internal/repo"
)

// Monitor периодически снимает агрегаты по задачам и пишет их в лог.
type Monitor struct {
	repo     repo.TaskRepository
	logger   *zap.Logger
	interval time.Duration
	wg       sync.WaitGroup
	stop     chan struct{}
}

func NewMonitor(repo repo.TaskRepository, logger *zap.Logger, interval time.Duration) *Monitor {
	return &Monitor{
		repo:     repo,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (m *Monitor) Start(ctx context.Context) {
	m.logger.Info("Starting stats monitor", zap.Duration("interval", m.interval))

	m.wg.Add(1)
	go m.run(ctx)
}

func (m *Monitor) Stop() {
	m.logger.Info("Stopping stats monitor...")
	close(m.stop)
	m.wg.Wait()
	m.logger.Info("Stats monitor stopped")
}

func (m *Monitor) run(ctx context.Context) {
	defer m.wg.Done()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.report(ctx)
		}
	}
}

func (m *Monitor) report(ctx context.Context) {
	stats, err := m.repo.GetStats(ctx)
	if err != nil {
		m.logger.Error("stats query failed", zap.Error(err))
		return
	}

	m.logger.Info("Task stats",
		zap.Int("total", stats.TotalTasks),
		zap.Int("completed", stats.CompletedTasks),
		zap.Int("overdue", stats.OverdueTasks),
		zap.Any("by_priority", stats.ByPriority),
	)
}
