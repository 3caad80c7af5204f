package dto

import "parcelmatch/internal/entities"

func NewCoordinates(c *entities.Coordinates) *Coordinates {
	if c == nil {
		return nil
	}
	return &Coordinates{
		Lat: c.Latitude,
		Lon: c.Longitude,
	}
}

func NewParcel(parcel *entities.Parcel) Parcel {
	return Parcel{
		ID:              parcel.ID,
		SenderID:        parcel.SenderID,
		PickupAddress:   parcel.PickupAddress,
		DeliveryAddress: parcel.DeliveryAddress,
		Pickup:          NewCoordinates(parcel.Pickup),
		Dropoff:         NewCoordinates(parcel.Dropoff),
		WeightKg:        parcel.WeightKg,
		Status:          parcel.Status.String(),
		TripID:          parcel.TripID,
		CreatedAt:       parcel.CreatedAt,
		UpdatedAt:       parcel.UpdatedAt,
	}
}

func NewTrip(trip *entities.Trip) Trip {
	return Trip{
		ID:                 trip.ID,
		CourierID:          trip.CourierID,
		OriginAddress:      trip.OriginAddress,
		DestinationAddress: trip.DestinationAddress,
		Origin:             NewCoordinates(trip.Origin),
		Destination:        NewCoordinates(trip.Destination),
		DepartureAt:        trip.DepartureAt,
		Capacity:           trip.Capacity.String(),
		Status:             trip.Status.String(),
		CreatedAt:          trip.CreatedAt,
		UpdatedAt:          trip.UpdatedAt,
	}
}

func NewMatch(match *entities.Match) Match {
	return Match{
		ID:            match.ID,
		ParcelID:      match.ParcelID,
		TripID:        match.TripID,
		Score:         match.Score,
		Status:        match.Status.String(),
		PaymentStatus: match.PaymentStatus.String(),
		Fee: Fee{
			DeliveryFee: match.Fee.DeliveryFee,
			PlatformFee: match.Fee.PlatformFee,
			TotalAmount: match.Fee.TotalAmount,
			Currency:    match.Fee.Currency,
		},
		PaymentIntentRef: match.PaymentIntentRef,
		CreatedAt:        match.CreatedAt,
		UpdatedAt:        match.UpdatedAt,
	}
}

func NewMatches(matches []entities.Match) []Match {
	matchDTOs := make([]Match, len(matches))
	for i := range matches {
		matchDTOs[i] = NewMatch(&matches[i])
	}
	return matchDTOs
}
