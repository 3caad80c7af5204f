package entities

import "time"

type Trip struct {
	ID                 int64
	CourierID          int64
	OriginAddress      string
	DestinationAddress string
	Origin             *Coordinates
	Destination        *Coordinates
	DepartureAt        *time.Time
	Capacity           SizeClass
	Status             TripStatusType
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type TripStatusType string

const (
	TripScheduled  TripStatusType = "scheduled"
	TripInProgress TripStatusType = "in_progress"
	TripCompleted  TripStatusType = "completed"
	TripCancelled  TripStatusType = "cancelled"
)

const DefaultTripStatus = TripScheduled

func (s TripStatusType) String() string {
	return string(s)
}

// Matchable сообщает, может ли поездка принимать новые сопоставления.
func (s TripStatusType) Matchable() bool {
	return s == TripScheduled || s == TripInProgress
}

type TripModify struct {
	ID                 *int64
	CourierID          *int64
	OriginAddress      *string
	DestinationAddress *string
	Origin             *Coordinates
	Destination        *Coordinates
	DepartureAt        *time.Time
	Capacity           *SizeClass
	Status             *TripStatusType
}
