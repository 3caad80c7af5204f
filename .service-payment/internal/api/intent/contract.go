package intent

import (
	"context"

	"github.com/nikolaev/service-payment/internal/domain/entity"
)

type usecase interface {
	CreateIntent(ctx context.Context, amount int64) (*entity.Intent, error)
	Capture(ctx context.Context, ref string) (*entity.Intent, error)
	Refund(ctx context.Context, ref string) (*entity.Intent, error)
}
