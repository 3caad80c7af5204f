package trip

import "time"

type TripDB struct {
	ID                 int64
	CourierID          int64
	OriginAddress      string
	DestinationAddress string
	OriginLat          *float64
	OriginLon          *float64
	DestinationLat     *float64
	DestinationLon     *float64
	DepartureAt        *time.Time
	Capacity           *string
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type TripModifyDB struct {
	ID                 *int64
	CourierID          *int64
	OriginAddress      *string
	DestinationAddress *string
	OriginLat          *float64
	OriginLon          *float64
	DestinationLat     *float64
	DestinationLon     *float64
	DepartureAt        *time.Time
	Capacity           *string
	Status             *string
}
