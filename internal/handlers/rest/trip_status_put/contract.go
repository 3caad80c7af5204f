//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_status_put_test
package trip_status_put

import (
	"context"

	"parcelmatch/internal/entities"
	"parcelmatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	TransitionStatus(ctx context.Context, tripID int64, next entities.TripStatusType, actor entities.Actor) (*entities.Trip, error)
}
