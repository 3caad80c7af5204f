// Package dto описывает JSON-представления сущностей REST API.
package dto

import "time"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type ParcelCreate struct {
	PickupAddress   string       `json:"pickup_address"`
	DeliveryAddress string       `json:"delivery_address"`
	Pickup          *Coordinates `json:"pickup,omitempty"`
	Dropoff         *Coordinates `json:"dropoff,omitempty"`
	WeightKg        float64      `json:"weight_kg"`
}

type Parcel struct {
	ID              int64        `json:"id"`
	SenderID        int64        `json:"sender_id"`
	PickupAddress   string       `json:"pickup_address"`
	DeliveryAddress string       `json:"delivery_address"`
	Pickup          *Coordinates `json:"pickup,omitempty"`
	Dropoff         *Coordinates `json:"dropoff,omitempty"`
	WeightKg        float64      `json:"weight_kg"`
	Status          string       `json:"status"`
	TripID          *int64       `json:"trip_id,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type ParcelCreateResponse struct {
	Parcel  Parcel  `json:"parcel"`
	Matches []Match `json:"matches"`
}

type TripCreate struct {
	OriginAddress      string       `json:"origin_address"`
	DestinationAddress string       `json:"destination_address"`
	Origin             *Coordinates `json:"origin,omitempty"`
	Destination        *Coordinates `json:"destination,omitempty"`
	DepartureAt        *time.Time   `json:"departure_at,omitempty"`
	Capacity           string       `json:"capacity"`
}

type Trip struct {
	ID                 int64        `json:"id"`
	CourierID          int64        `json:"courier_id"`
	OriginAddress      string       `json:"origin_address"`
	DestinationAddress string       `json:"destination_address"`
	Origin             *Coordinates `json:"origin,omitempty"`
	Destination        *Coordinates `json:"destination,omitempty"`
	DepartureAt        *time.Time   `json:"departure_at,omitempty"`
	Capacity           string       `json:"capacity"`
	Status             string       `json:"status"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

type TripCreateResponse struct {
	Trip    Trip    `json:"trip"`
	Matches []Match `json:"matches"`
}

type StatusUpdate struct {
	Status string `json:"status"`
}

type Fee struct {
	DeliveryFee int64  `json:"delivery_fee"`
	PlatformFee int64  `json:"platform_fee"`
	TotalAmount int64  `json:"total_amount"`
	Currency    string `json:"currency"`
}

type Match struct {
	ID               int64     `json:"id"`
	ParcelID         int64     `json:"parcel_id"`
	TripID           int64     `json:"trip_id"`
	Score            float64   `json:"score"`
	Status           string    `json:"status"`
	PaymentStatus    string    `json:"payment_status"`
	Fee              Fee       `json:"fee"`
	PaymentIntentRef string    `json:"payment_intent_ref,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type Error struct {
	Error string `json:"error"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
