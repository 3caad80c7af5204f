package payment

import (
	"context"
	"fmt"

	"parcelmatch/internal/entities"
	"parcelmatch/pkg/logger"
)

type Service struct {
	log        handlerLogger
	repository Repository
	txManager  TxManager
}

func New(log handlerLogger, repository Repository, txManager TxManager) *Service {
	return &Service{
		log:        log,
		repository: repository,
		txManager:  txManager,
	}
}

// ApplyGatewayEvent применяет событие платежного шлюза к сопоставлению.
// Повторная доставка события в уже достигнутый статус не ошибка,
// поток платежей строго unpaid -> paid -> refunded.
func (s *Service) ApplyGatewayEvent(ctx context.Context, event entities.PaymentEvent) error {
	if event.Status != entities.PaymentPaid && event.Status != entities.PaymentRefunded {
		return fmt.Errorf("status %q: %w", event.Status, ErrInvalidPaymentStatus)
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		match, err := s.repository.GetByIntentRef(ctx, event.IntentRef)
		if err != nil {
			return fmt.Errorf("get match by intent ref: %w", err)
		}

		if match.PaymentStatus == event.Status {
			s.log.Info("duplicate payment event, nothing to apply",
				logger.NewField("intent_ref", event.IntentRef),
				logger.NewField("status", event.Status.String()),
			)
			return nil
		}

		from, err := s.requiredCurrentStatus(match, event.Status)
		if err != nil {
			return err
		}

		ok, err := s.repository.UpdatePaymentStatusIf(ctx, match.ID, from, event.Status)
		if err != nil {
			return fmt.Errorf("update payment status: %w", err)
		}
		if !ok {
			// состояние изменилось между чтением и UPDATE
			return fmt.Errorf("match %d: %w", match.ID, ErrNotApplicable)
		}

		s.log.Info("payment status applied",
			logger.NewField("match_id", match.ID),
			logger.NewField("intent_ref", event.IntentRef),
			logger.NewField("status", event.Status.String()),
		)
		return nil
	})
}

func (s *Service) requiredCurrentStatus(match *entities.Match, next entities.PaymentStatusType) (entities.PaymentStatusType, error) {
	switch next {
	case entities.PaymentPaid:
		if match.Status != entities.MatchAccepted {
			return "", fmt.Errorf("match %d is %s, not accepted: %w", match.ID, match.Status, ErrNotApplicable)
		}
		if match.Fee.TotalAmount <= 0 {
			return "", fmt.Errorf("match %d has no payable amount: %w", match.ID, ErrNotApplicable)
		}
		if match.PaymentStatus != entities.PaymentUnpaid {
			return "", fmt.Errorf("match %d payment is %s: %w", match.ID, match.PaymentStatus, ErrNotApplicable)
		}
		return entities.PaymentUnpaid, nil
	case entities.PaymentRefunded:
		if match.PaymentStatus != entities.PaymentPaid {
			return "", fmt.Errorf("match %d payment is %s: %w", match.ID, match.PaymentStatus, ErrNotApplicable)
		}
		return entities.PaymentPaid, nil
	default:
		return "", fmt.Errorf("status %q: %w", next, ErrInvalidPaymentStatus)
	}
}
