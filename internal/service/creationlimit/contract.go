//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=creationlimit_test
package creationlimit

import (
	"context"
	"time"

	"parcelmatch/internal/entities"
	"parcelmatch/pkg/logger"
)

type Repository interface {
	CountCreatedSince(ctx context.Context, kind entities.CreationKind, ownerID int64, since time.Time) (int64, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
