package match

import "time"

type MatchDB struct {
	ID               int64
	ParcelID         int64
	TripID           int64
	Score            float64
	Status           string
	PaymentStatus    string
	DeliveryFee      int64
	PlatformFee      int64
	TotalAmount      int64
	Currency         string
	PaymentIntentRef *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type MatchModifyDB struct {
	ID               *int64
	ParcelID         *int64
	TripID           *int64
	Score            *float64
	Status           *string
	PaymentStatus    *string
	DeliveryFee      *int64
	PlatformFee      *int64
	TotalAmount      *int64
	Currency         *string
	PaymentIntentRef *string
}
