package trip

import (
	"errors"
	"fmt"

	"parcelmatch/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrInvalidCapacity       = errors.New("invalid capacity class")
	ErrInvalidDeparture      = errors.New("departure time is in the past")
	ErrUnknownStatus         = errors.New("unknown trip status")

	ErrTripNotFound      = errors.New("trip not found")
	ErrRateLimited       = errors.New("creation rate limit exceeded")
	ErrUnauthorized      = errors.New("actor is not allowed to change trip status")
	ErrConflict          = errors.New("trip was modified concurrently")
	ErrInvalidTransition = errors.New("invalid status transition")
)

type InvalidTransitionError struct {
	Current   entities.TripStatusType
	Attempted entities.TripStatusType
	Allowed   []entities.TripStatusType
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid trip status transition %q -> %q, allowed: %v",
		e.Current, e.Attempted, e.Allowed)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
