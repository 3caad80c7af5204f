package trip

import (
	"parcelmatch/internal/entities"
)

func ToDomain(t *TripDB) *entities.Trip {
	if t == nil {
		return nil
	}

	trip := &entities.Trip{
		ID:                 t.ID,
		CourierID:          t.CourierID,
		OriginAddress:      t.OriginAddress,
		DestinationAddress: t.DestinationAddress,
		Origin:             toCoordinates(t.OriginLat, t.OriginLon),
		Destination:        toCoordinates(t.DestinationLat, t.DestinationLon),
		DepartureAt:        t.DepartureAt,
		Status:             entities.TripStatusType(t.Status),
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
	if t.Capacity != nil {
		trip.Capacity = entities.SizeClass(*t.Capacity)
	}

	return trip
}

func FromDomainModify(tripModify *entities.TripModify) *TripModifyDB {
	if tripModify == nil {
		return nil
	}
	tripDB := &TripModifyDB{}

	if tripModify.ID != nil {
		tripDB.ID = tripModify.ID
	}
	if tripModify.CourierID != nil {
		tripDB.CourierID = tripModify.CourierID
	}
	if tripModify.OriginAddress != nil {
		tripDB.OriginAddress = tripModify.OriginAddress
	}
	if tripModify.DestinationAddress != nil {
		tripDB.DestinationAddress = tripModify.DestinationAddress
	}
	if tripModify.Origin != nil {
		tripDB.OriginLat = &tripModify.Origin.Latitude
		tripDB.OriginLon = &tripModify.Origin.Longitude
	}
	if tripModify.Destination != nil {
		tripDB.DestinationLat = &tripModify.Destination.Latitude
		tripDB.DestinationLon = &tripModify.Destination.Longitude
	}
	if tripModify.DepartureAt != nil {
		tripDB.DepartureAt = tripModify.DepartureAt
	}
	if tripModify.Capacity != nil {
		capacity := tripModify.Capacity.String()
		tripDB.Capacity = &capacity
	}
	if tripModify.Status != nil {
		status := tripModify.Status.String()
		tripDB.Status = &status
	}

	return tripDB
}

func ToDomainList(tripsDB []TripDB) []entities.Trip {
	if len(tripsDB) == 0 {
		return []entities.Trip{}
	}

	result := make([]entities.Trip, len(tripsDB))
	for i, tripDB := range tripsDB {
		result[i] = *ToDomain(&tripDB)
	}
	return result
}

func toCoordinates(lat, lon *float64) *entities.Coordinates {
	if lat == nil || lon == nil {
		return nil
	}
	return &entities.Coordinates{Latitude: *lat, Longitude: *lon}
}
