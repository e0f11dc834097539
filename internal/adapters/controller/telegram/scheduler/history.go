package scheduler

import (
	"context"
	"time"

	"github.com/Badsnus/qrage/cmd/bot"
	"github.com/Badsnus/qrage/internal/adapters/database/postgres"
	"github.com/Badsnus/qrage/internal/domain/service"
	"github.com/Badsnus/qrage/pkg/logger/types"
)

type historyService interface {
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}

// HistoryScheduler periodically removes history entries past retention.
type HistoryScheduler struct {
	historyService historyService
	retention      time.Duration
	interval       time.Duration
	logger         *types.Logger
}

func NewHistoryScheduler(b *bot.Bot, retention, interval time.Duration) *HistoryScheduler {
	return &HistoryScheduler{
		historyService: service.NewHistoryService(postgres.NewHistoryStorage(b.DB), 0),
		retention:      retention,
		interval:       interval,
		logger:         b.Logger,
	}
}

// Start runs the cleanup loop until ctx is done. A zero retention disables it.
func (s *HistoryScheduler) Start(ctx context.Context) {
	if s.retention <= 0 || s.interval <= 0 {
		s.logger.Info("History cleanup disabled")
		return
	}
	go s.periodicallyPrune(ctx)
}

func (s *HistoryScheduler) periodicallyPrune(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			s.prune(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (s *HistoryScheduler) prune(ctx context.Context) {
	n, err := s.historyService.Prune(ctx, s.retention)
	if err != nil {
		s.logger.Errorf("Error pruning history: %v", err)
		return
	}
	if n > 0 {
		s.logger.Infof("Pruned %d history entries older than %s", n, s.retention)
	}
}
