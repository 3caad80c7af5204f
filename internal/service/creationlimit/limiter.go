package creationlimit

import (
	"context"
	"time"

	"parcelmatch/internal/entities"
	"parcelmatch/pkg/logger"
)

const (
	DefaultWindow       = 15 * time.Minute
	DefaultMaxCreations = 3
)

// Service ограничивает частоту создания посылок и поездок скользящим окном
// по строкам в соответствующей таблице. При недоступности хранилища лимит
// не применяется: доступность создания важнее строгого учёта.
type Service struct {
	log          handlerLogger
	repository   Repository
	window       time.Duration
	maxCreations int64
}

func New(log handlerLogger, repository Repository, window time.Duration, maxCreations int64) *Service {
	if window <= 0 {
		window = DefaultWindow
	}
	if maxCreations <= 0 {
		maxCreations = DefaultMaxCreations
	}

	return &Service{
		log:          log.With(),
		repository:   repository,
		window:       window,
		maxCreations: maxCreations,
	}
}

func (s *Service) Check(ctx context.Context, ownerID int64, kind entities.CreationKind) entities.RateLimitDecision {
	since := time.Now().UTC().Add(-s.window)

	count, err := s.repository.CountCreatedSince(ctx, kind, ownerID, since)
	if err != nil {
		// fail open
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("owner", ownerID),
			logger.NewField("kind", kind.String()),
		).Warn("creation rate limit count failed, allowing request")

		return entities.RateLimitDecision{Allowed: true, Count: 0}
	}

	return entities.RateLimitDecision{
		Allowed: count < s.maxCreations,
		Count:   count,
	}
}
