package entities

import "time"

type Coordinates struct {
	Latitude  float64
	Longitude float64
}

type Parcel struct {
	ID              int64
	SenderID        int64
	PickupAddress   string
	DeliveryAddress string
	Pickup          *Coordinates
	Dropoff         *Coordinates
	WeightKg        float64
	Status          ParcelStatusType
	TripID          *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ParcelStatusType string

const (
	ParcelPending   ParcelStatusType = "pending"
	ParcelMatched   ParcelStatusType = "matched"
	ParcelPickedUp  ParcelStatusType = "picked_up"
	ParcelInTransit ParcelStatusType = "in_transit"
	ParcelDelivered ParcelStatusType = "delivered"
	ParcelCancelled ParcelStatusType = "cancelled"
)

const DefaultParcelStatus = ParcelPending

func (s ParcelStatusType) String() string {
	return string(s)
}

// Terminal сообщает, допускает ли статус дальнейшие переходы.
func (s ParcelStatusType) Terminal() bool {
	return s == ParcelDelivered || s == ParcelCancelled
}

type ParcelModify struct {
	ID              *int64
	SenderID        *int64
	PickupAddress   *string
	DeliveryAddress *string
	Pickup          *Coordinates
	Dropoff         *Coordinates
	WeightKg        *float64
	Status          *ParcelStatusType
	TripID          *int64
}

type SizeClass string

const (
	SizeSmall  SizeClass = "small"
	SizeMedium SizeClass = "medium"
	SizeLarge  SizeClass = "large"
)

const (
	maxSmallWeightKg  = 2.0
	maxMediumWeightKg = 10.0
)

func (c SizeClass) String() string {
	return string(c)
}

func SizeClassForWeight(weightKg float64) SizeClass {
	switch {
	case weightKg <= maxSmallWeightKg:
		return SizeSmall
	case weightKg <= maxMediumWeightKg:
		return SizeMedium
	default:
		return SizeLarge
	}
}

type Actor struct {
	ID    int64
	Admin bool
}
