package parcel

import "time"

type ParcelDB struct {
	ID              int64
	SenderID        int64
	PickupAddress   string
	DeliveryAddress string
	PickupLat       *float64
	PickupLon       *float64
	DropoffLat      *float64
	DropoffLon      *float64
	WeightKg        float64
	Status          string
	TripID          *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type ParcelModifyDB struct {
	ID              *int64
	SenderID        *int64
	PickupAddress   *string
	DeliveryAddress *string
	PickupLat       *float64
	PickupLon       *float64
	DropoffLat      *float64
	DropoffLon      *float64
	WeightKg        *float64
	Status          *string
	TripID          *int64
}
