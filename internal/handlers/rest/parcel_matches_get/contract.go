//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_matches_get_test
package parcel_matches_get

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
	GetMatchesByParcel(ctx context.Context, actor entities.Actor, parcelID int64) ([]entities.Match, error)
}
