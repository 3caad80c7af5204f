//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_test
package match

import (
	"context"
	"time"

	"parcelmatch/internal/entities"
	"parcelmatch/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, matchModify entities.MatchModify) (*entities.Match, error)
	GetByID(ctx context.Context, id int64) (*entities.Match, error)
	ExistsActive(ctx context.Context, parcelID, tripID int64) (bool, error)
	ListByParcel(ctx context.Context, parcelID int64) ([]entities.Match, error)
	MarkAcceptedIf(ctx context.Context, id int64, paymentIntentRef string) (bool, error)
	UpdateStatusIf(ctx context.Context, id int64, from, to entities.MatchStatusType) (bool, error)
	RejectPendingForDepartedTrips(ctx context.Context, now time.Time) (int64, error)
}

type ParcelRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	ListPending(ctx context.Context) ([]entities.Parcel, error)
	MarkMatchedIf(ctx context.Context, parcelID, tripID int64) (bool, error)
}

type TripRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Trip, error)
	ListMatchable(ctx context.Context) ([]entities.Trip, error)
}

type Scorer interface {
	Score(parcel *entities.Parcel, trip *entities.Trip) entities.MatchScore
}

type FeeEstimator interface {
	Estimate(ctx context.Context, parcel *entities.Parcel, trip *entities.Trip) (entities.FeeBreakdown, error)
}

type Notifier interface {
	MatchCreated(ctx context.Context, match *entities.Match) error
	MatchResolved(ctx context.Context, match *entities.Match) error
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
