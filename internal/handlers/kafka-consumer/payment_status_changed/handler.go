package payment_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"parcelmatch/internal/entities"
	paymentservice "parcelmatch/internal/service/payment"
	"parcelmatch/pkg/logger"
)

// statusChangedEvent — сообщение платёжного шлюза о смене статуса платежа.
type statusChangedEvent struct {
	IntentRef  string    `json:"intent_ref"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Handler struct {
	paymentService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, paymentService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		paymentService:           paymentService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("payment.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("payment.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("payment.status.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("intent_ref", event.IntentRef),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("payment.status.changed processing")

	paymentEvent := entities.PaymentEvent{
		IntentRef:  event.IntentRef,
		Status:     entities.PaymentStatusType(event.Status),
		OccurredAt: event.OccurredAt,
	}

	err = h.paymentService.ApplyGatewayEvent(ctx, paymentEvent)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, paymentservice.ErrInvalidPaymentStatus):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler unknown payment status")

		case errors.Is(err, paymentservice.ErrIntentNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler unknown payment intent")

		case errors.Is(err, paymentservice.ErrNotApplicable):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler status change not applicable")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("payment.status.changed handler failed to apply event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("payment.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}
