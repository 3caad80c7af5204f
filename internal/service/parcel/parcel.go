package parcel

import (
	"context"
	"fmt"

	"parcelmatch/internal/entities"
	"parcelmatch/pkg/logger"
)

type Service struct {
	log          handlerLogger
	repository   Repository
	tripProvider TripProvider
	rateLimiter  RateLimiter
	notifier     Notifier
	txManager    TxManager
}

func New(
	log handlerLogger,
	repository Repository,
	tripProvider TripProvider,
	rateLimiter RateLimiter,
	notifier Notifier,
	txManager TxManager,
) *Service {
	return &Service{
		log:          log.With(),
		repository:   repository,
		tripProvider: tripProvider,
		rateLimiter:  rateLimiter,
		notifier:     notifier,
		txManager:    txManager,
	}
}

func (s *Service) CreateParcel(ctx context.Context, parcelModify entities.ParcelModify) (*entities.Parcel, error) {
	if parcelModify.SenderID == nil ||
		parcelModify.PickupAddress == nil ||
		parcelModify.DeliveryAddress == nil ||
		parcelModify.WeightKg == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidAddress(*parcelModify.PickupAddress) || !isValidAddress(*parcelModify.DeliveryAddress) {
		return nil, ErrInvalidAddress
	}
	if !isValidWeight(*parcelModify.WeightKg) {
		return nil, ErrInvalidWeight
	}
	if !isValidCoordinates(parcelModify.Pickup) || !isValidCoordinates(parcelModify.Dropoff) {
		return nil, ErrInvalidCoordinates
	}

	decision := s.rateLimiter.Check(ctx, *parcelModify.SenderID, entities.CreationParcel)
	if !decision.Allowed {
		return nil, fmt.Errorf("sender %d has %d recent parcels: %w",
			*parcelModify.SenderID, decision.Count, ErrRateLimited)
	}

	status := entities.DefaultParcelStatus
	parcelModify.Status = &status
	parcelModify.TripID = nil

	created, err := s.repository.Create(ctx, parcelModify)
	if err != nil {
		return nil, fmt.Errorf("create parcel: %w", err)
	}

	return created, nil
}

func (s *Service) GetParcel(ctx context.Context, id int64) (*entities.Parcel, error) {
	parcel, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}
	return parcel, nil
}

func (s *Service) GetParcelsBySender(ctx context.Context, senderID int64) ([]entities.Parcel, error) {
	parcels, err := s.repository.ListBySender(ctx, senderID)
	if err != nil {
		return nil, fmt.Errorf("list parcels: %w", err)
	}
	return parcels, nil
}

// TransitionStatus переводит посылку в новый статус по таблице переходов.
// Право на переход проверяется по курьеру сопоставленной поездки на момент
// запроса, а не по данным вызывающей стороны.
func (s *Service) TransitionStatus(
	ctx context.Context,
	parcelID int64,
	next entities.ParcelStatusType,
	actor entities.Actor,
) (*entities.Parcel, error) {
	if !isValidStatus(next) {
		return nil, fmt.Errorf("status %q: %w", next, ErrUnknownStatus)
	}

	var updated *entities.Parcel
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, parcelID)
		if err != nil {
			return fmt.Errorf("get parcel: %w", err)
		}

		if !transitionAllowed(current.Status, next) {
			return &InvalidTransitionError{
				Current:   current.Status,
				Attempted: next,
				Allowed:   allowedTransitions(current.Status),
			}
		}

		if err := s.authorizeTransition(ctx, current, actor); err != nil {
			return err
		}

		ok, err := s.repository.UpdateStatusIf(ctx, parcelID, current.Status, next)
		if err != nil {
			return fmt.Errorf("update parcel status: %w", err)
		}
		if !ok {
			return ErrConflict
		}

		current.Status = next
		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.notifier.ParcelStatusChanged(ctx, updated); err != nil {
		s.log.With(
			logger.NewField("error", err),
			logger.NewField("parcel", updated.ID),
		).Warn("failed to publish parcel status notification")
	}

	return updated, nil
}

func (s *Service) authorizeTransition(ctx context.Context, parcel *entities.Parcel, actor entities.Actor) error {
	if actor.Admin {
		return nil
	}

	if parcel.TripID == nil {
		return ErrUnauthorized
	}

	trip, err := s.tripProvider.GetByID(ctx, *parcel.TripID)
	if err != nil {
		return fmt.Errorf("resolve matched trip: %w", err)
	}

	if trip.CourierID != actor.ID {
		return ErrUnauthorized
	}
	return nil
}
