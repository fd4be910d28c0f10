package processor

import (
	"context"
	"time"

	"cinemashop/internal/app/cinema/repository"
	"cinemashop/pkg/logger"
	"cinemashop/pkg/metrics"

	"github.com/robfig/cron/v3"
)

// CronScheduler периодически удаляет брошенные корзины
// Позиции старше retention-срока считаются забытыми и вычищаются
type CronScheduler struct {
	cron          *cron.Cron
	cartRepo      repository.CartRepository
	retentionDays int
}

func NewCronScheduler(cartRepo repository.CartRepository, retentionDays int) *CronScheduler {
	return &CronScheduler{
		cron:          cron.New(),
		cartRepo:      cartRepo,
		retentionDays: retentionDays,
	}
}

func (s *CronScheduler) Start(ctx context.Context, schedule string) error {
	logger.Info().Str("schedule", schedule).Int("retention_days", s.retentionDays).Msg("Starting cart sweep scheduler")

	_, err := s.cron.AddFunc(schedule, func() {
		s.SweepStaleCarts(ctx)
	})
	if err != nil {
		return err
	}

	s.cron.Start()

	return nil
}

// SweepStaleCarts удаляет позиции корзин старше retention-срока
func (s *CronScheduler) SweepStaleCarts(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.retentionDays)

	deleted, err := s.cartRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to sweep stale cart items")
		return
	}

	if deleted > 0 {
		metrics.CartItemsSwept.Add(float64(deleted))
	}

	logger.Info().Int64("deleted", deleted).Time("cutoff", cutoff).Msg("Stale cart sweep completed")
}

func (s *CronScheduler) Stop() {
	logger.Info().Msg("Stopping cart sweep scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *CronScheduler) GetEntries() []cron.Entry {
	return s.cron.Entries()
}
