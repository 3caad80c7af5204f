//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_test
package trip

import (
	"context"

	"parcelmatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, tripModify entities.TripModify) (*entities.Trip, error)
	GetByID(ctx context.Context, id int64) (*entities.Trip, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to entities.TripStatusType) (bool, error)
}

type RateLimiter interface {
	Check(ctx context.Context, ownerID int64, kind entities.CreationKind) entities.RateLimitDecision
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
