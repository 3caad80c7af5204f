package entity

import "time"

type QuoteRequest struct {
	WeightKg   float64
	SizeClass  string
	DistanceKm float64
}

type Quote struct {
	DeliveryFee int64
	PlatformFee int64
	TotalAmount int64
	Currency    string
}

type IntentStatus string

const (
	IntentPending  IntentStatus = "pending"
	IntentPaid     IntentStatus = "paid"
	IntentRefunded IntentStatus = "refunded"
)

type Intent struct {
	Ref       string
	Amount    int64
	Currency  string
	Status    IntentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
