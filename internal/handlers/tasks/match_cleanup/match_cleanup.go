package match_cleanup

import (
	"context"
	"time"

	"parcelmatch/pkg/logger"
)

type Service interface {
	CleanupDeparted(ctx context.Context) (int64, error)
}

type MatchCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewMatchCleanup(log logger.Logger, service Service, interval time.Duration) *MatchCleanup {
	return &MatchCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (m *MatchCleanup) TTL() time.Duration {
	return m.interval
}

func (m *MatchCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	rowsAffected, err := m.service.CleanupDeparted(ctxWithTimeout)

	if rowsAffected > 0 {
		m.log.With(
			logger.NewField("rejected_matches", rowsAffected),
		).Info("match cleanup")
	}

	return err
}

func (m *MatchCleanup) Info() string {
	return "match cleanup"
}
