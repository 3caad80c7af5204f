//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_accept_post_test
package match_accept_post

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
	Accept(ctx context.Context, actor entities.Actor, matchID int64) (*entities.Match, error)
}
