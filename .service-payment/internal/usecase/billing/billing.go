package billing

import (
	"context"
	"errors"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nikolaev/service-payment/internal/domain/entity"
)

var (
	ErrIntentNotFound = errors.New("intent not found")
	ErrBadTransition  = errors.New("intent is not in a state allowing this transition")
)

// Тарифная сетка эмулятора. Суммы в копейках.
const (
	baseFeeSmall  = 15000
	baseFeeMedium = 25000
	baseFeeLarge  = 45000
	perKmFee      = 800
	platformRate  = 0.15
	currency      = "RUB"
)

type publisher interface {
	PublishStatusChanged(ctx context.Context, ref string, status entity.IntentStatus, occurredAt time.Time) error
}

type Service struct {
	pub publisher

	mu      sync.Mutex
	intents map[string]*entity.Intent
}

func New(pub publisher) *Service {
	return &Service{
		pub:     pub,
		intents: make(map[string]*entity.Intent),
	}
}

func (s *Service) Estimate(_ context.Context, req entity.QuoteRequest) (*entity.Quote, error) {
	base := int64(baseFeeMedium)
	switch req.SizeClass {
	case "small":
		base = baseFeeSmall
	case "large":
		base = baseFeeLarge
	}

	deliveryFee := base + int64(math.Round(req.DistanceKm))*perKmFee
	platformFee := int64(math.Round(float64(deliveryFee) * platformRate))

	return &entity.Quote{
		DeliveryFee: deliveryFee,
		PlatformFee: platformFee,
		TotalAmount: deliveryFee + platformFee,
		Currency:    currency,
	}, nil
}

func (s *Service) CreateIntent(_ context.Context, amount int64) (*entity.Intent, error) {
	now := time.Now()
	intent := &entity.Intent{
		Ref:       uuid.NewString(),
		Amount:    amount,
		Currency:  currency,
		Status:    entity.IntentPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.intents[intent.Ref] = intent
	s.mu.Unlock()

	return intent, nil
}

func (s *Service) Capture(ctx context.Context, ref string) (*entity.Intent, error) {
	return s.transition(ctx, ref, entity.IntentPending, entity.IntentPaid)
}

func (s *Service) Refund(ctx context.Context, ref string) (*entity.Intent, error) {
	return s.transition(ctx, ref, entity.IntentPaid, entity.IntentRefunded)
}

func (s *Service) transition(ctx context.Context, ref string, from, to entity.IntentStatus) (*entity.Intent, error) {
	s.mu.Lock()
	intent, ok := s.intents[ref]
	if !ok {
		// Реф мог быть выдан основным сервисом, а не нашим CreateIntent.
		// Регистрируем его лениво, чтобы capture работал для внешних рефов.
		intent = &entity.Intent{
			Ref:       ref,
			Currency:  currency,
			Status:    from,
			CreatedAt: time.Now(),
		}
		s.intents[ref] = intent
	}

	if intent.Status != from {
		s.mu.Unlock()
		return nil, ErrBadTransition
	}

	intent.Status = to
	intent.UpdatedAt = time.Now()
	snapshot := *intent
	s.mu.Unlock()

	if err := s.pub.PublishStatusChanged(ctx, snapshot.Ref, snapshot.Status, snapshot.UpdatedAt); err != nil {
		return nil, err
	}

	return &snapshot, nil
}
