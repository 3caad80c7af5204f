//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"

	"parcelmatch/internal/entities"
	"parcelmatch/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	ListBySender(ctx context.Context, senderID int64) ([]entities.Parcel, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to entities.ParcelStatusType) (bool, error)
}

type TripProvider interface {
	GetByID(ctx context.Context, id int64) (*entities.Trip, error)
}

type RateLimiter interface {
	Check(ctx context.Context, ownerID int64, kind entities.CreationKind) entities.RateLimitDecision
}

type Notifier interface {
	ParcelStatusChanged(ctx context.Context, parcel *entities.Parcel) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
