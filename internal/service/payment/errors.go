package payment

import "errors"

var (
	ErrIntentNotFound       = errors.New("payment intent not found")
	ErrNotApplicable        = errors.New("payment status change is not applicable")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)
