package estimate

import (
	"context"

	"github.com/nikolaev/service-payment/internal/domain/entity"
)

type usecase interface {
	Estimate(ctx context.Context, req entity.QuoteRequest) (*entity.Quote, error)
}
