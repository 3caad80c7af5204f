package entities

import "time"

type Match struct {
	ID               int64
	ParcelID         int64
	TripID           int64
	Score            float64
	Status           MatchStatusType
	PaymentStatus    PaymentStatusType
	Fee              FeeBreakdown
	PaymentIntentRef string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type MatchStatusType string

const (
	MatchPending  MatchStatusType = "pending"
	MatchAccepted MatchStatusType = "accepted"
	MatchRejected MatchStatusType = "rejected"
)

func (s MatchStatusType) String() string {
	return string(s)
}

type PaymentStatusType string

const (
	PaymentUnpaid   PaymentStatusType = "unpaid"
	PaymentPaid     PaymentStatusType = "paid"
	PaymentRefunded PaymentStatusType = "refunded"
)

func (s PaymentStatusType) String() string {
	return string(s)
}

// FeeBreakdown хранит суммы в минимальных единицах валюты (копейки/центы).
type FeeBreakdown struct {
	DeliveryFee int64
	PlatformFee int64
	TotalAmount int64
	Currency    string
}

type MatchModify struct {
	ID               *int64
	ParcelID         *int64
	TripID           *int64
	Score            *float64
	Status           *MatchStatusType
	PaymentStatus    *PaymentStatusType
	Fee              *FeeBreakdown
	PaymentIntentRef *string
}

// MatchScore раскладывает итоговую оценку по компонентам.
type MatchScore struct {
	Total             float64
	RouteAlignment    float64
	Proximity         float64
	TimeCompatibility float64
	CapacityFit       float64
}

type PaymentEvent struct {
	IntentRef  string
	Status     PaymentStatusType
	OccurredAt time.Time
}

type RateLimitDecision struct {
	Allowed bool
	Count   int64
}

type CreationKind string

const (
	CreationParcel CreationKind = "parcel"
	CreationTrip   CreationKind = "trip"
)

func (k CreationKind) String() string {
	return string(k)
}
