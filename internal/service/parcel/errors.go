package parcel

import (
	"errors"
	"fmt"

	"parcelmatch/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidAddress        = errors.New("invalid address")
	ErrUnknownStatus         = errors.New("unknown parcel status")

	ErrParcelNotFound    = errors.New("parcel not found")
	ErrRateLimited       = errors.New("creation rate limit exceeded")
	ErrUnauthorized      = errors.New("actor is not allowed to change parcel status")
	ErrConflict          = errors.New("parcel was modified concurrently")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// InvalidTransitionError несёт текущий, запрошенный и допустимые статусы,
// чтобы вызывающая сторона могла показать их пользователю.
type InvalidTransitionError struct {
	Current   entities.ParcelStatusType
	Attempted entities.ParcelStatusType
	Allowed   []entities.ParcelStatusType
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid parcel status transition %q -> %q, allowed: %v",
		e.Current, e.Attempted, e.Allowed)
}

func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
