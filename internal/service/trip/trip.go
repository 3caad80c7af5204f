package trip

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"parcelmatch/internal/entities"
)

type Service struct {
	repository  Repository
	rateLimiter RateLimiter
	txManager   TxManager
}

func New(repository Repository, rateLimiter RateLimiter, txManager TxManager) *Service {
	return &Service{
		repository:  repository,
		rateLimiter: rateLimiter,
		txManager:   txManager,
	}
}

func (s *Service) CreateTrip(ctx context.Context, tripModify entities.TripModify) (*entities.Trip, error) {
	if tripModify.CourierID == nil ||
		tripModify.OriginAddress == nil ||
		tripModify.DestinationAddress == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidAddress(*tripModify.OriginAddress) || !isValidAddress(*tripModify.DestinationAddress) {
		return nil, ErrInvalidAddress
	}
	if !isValidCoordinates(tripModify.Origin) || !isValidCoordinates(tripModify.Destination) {
		return nil, ErrInvalidCoordinates
	}
	if tripModify.Capacity != nil && !isValidCapacity(*tripModify.Capacity) {
		return nil, ErrInvalidCapacity
	}
	if tripModify.DepartureAt != nil && tripModify.DepartureAt.Before(time.Now().UTC()) {
		return nil, ErrInvalidDeparture
	}

	decision := s.rateLimiter.Check(ctx, *tripModify.CourierID, entities.CreationTrip)
	if !decision.Allowed {
		return nil, fmt.Errorf("courier %d has %d recent trips: %w",
			*tripModify.CourierID, decision.Count, ErrRateLimited)
	}

	status := entities.DefaultTripStatus
	tripModify.Status = &status

	created, err := s.repository.Create(ctx, tripModify)
	if err != nil {
		return nil, fmt.Errorf("create trip: %w", err)
	}

	return created, nil
}

func (s *Service) GetTrip(ctx context.Context, id int64) (*entities.Trip, error) {
	trip, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}
	return trip, nil
}

func (s *Service) TransitionStatus(
	ctx context.Context,
	tripID int64,
	next entities.TripStatusType,
	actor entities.Actor,
) (*entities.Trip, error) {
	if !isValidStatus(next) {
		return nil, fmt.Errorf("status %q: %w", next, ErrUnknownStatus)
	}

	var updated *entities.Trip
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, tripID)
		if err != nil {
			return fmt.Errorf("get trip: %w", err)
		}

		if !actor.Admin && current.CourierID != actor.ID {
			return ErrUnauthorized
		}

		if !transitionAllowed(current.Status, next) {
			return &InvalidTransitionError{
				Current:   current.Status,
				Attempted: next,
				Allowed:   allowedTransitions(current.Status),
			}
		}

		ok, err := s.repository.UpdateStatusIf(ctx, tripID, current.Status, next)
		if err != nil {
			return fmt.Errorf("update trip status: %w", err)
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

	return updated, nil
}

func allowedTransitions(current entities.TripStatusType) []entities.TripStatusType {
	switch current {
	case entities.TripScheduled:
		return []entities.TripStatusType{entities.TripInProgress, entities.TripCancelled}
	case entities.TripInProgress:
		return []entities.TripStatusType{entities.TripCompleted, entities.TripCancelled}
	default:
		return nil
	}
}

func transitionAllowed(current, next entities.TripStatusType) bool {
	for _, allowed := range allowedTransitions(current) {
		if allowed == next {
			return true
		}
	}
	return false
}

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidCoordinates(c *entities.Coordinates) bool {
	if c == nil {
		return true
	}
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

func isValidCapacity(class entities.SizeClass) bool {
	switch class {
	case entities.SizeSmall, entities.SizeMedium, entities.SizeLarge:
		return true
	default:
		return false
	}
}

func isValidStatus(status entities.TripStatusType) bool {
	switch status {
	case entities.TripScheduled, entities.TripInProgress, entities.TripCompleted, entities.TripCancelled:
		return true
	default:
		return false
	}
}
