package payment_status_changed

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
	ApplyGatewayEvent(ctx context.Context, event entities.PaymentEvent) error
}
