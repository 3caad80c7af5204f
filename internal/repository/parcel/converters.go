package parcel

import (
	"parcelmatch/internal/entities"
)

func ToDomain(p *ParcelDB) *entities.Parcel {
	if p == nil {
		return nil
	}

	return &entities.Parcel{
		ID:              p.ID,
		SenderID:        p.SenderID,
		PickupAddress:   p.PickupAddress,
		DeliveryAddress: p.DeliveryAddress,
		Pickup:          toCoordinates(p.PickupLat, p.PickupLon),
		Dropoff:         toCoordinates(p.DropoffLat, p.DropoffLon),
		WeightKg:        p.WeightKg,
		Status:          entities.ParcelStatusType(p.Status),
		TripID:          p.TripID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func FromDomainModify(parcelModify *entities.ParcelModify) *ParcelModifyDB {
	if parcelModify == nil {
		return nil
	}
	parcelDB := &ParcelModifyDB{}

	if parcelModify.ID != nil {
		parcelDB.ID = parcelModify.ID
	}
	if parcelModify.SenderID != nil {
		parcelDB.SenderID = parcelModify.SenderID
	}
	if parcelModify.PickupAddress != nil {
		parcelDB.PickupAddress = parcelModify.PickupAddress
	}
	if parcelModify.DeliveryAddress != nil {
		parcelDB.DeliveryAddress = parcelModify.DeliveryAddress
	}
	if parcelModify.Pickup != nil {
		parcelDB.PickupLat = &parcelModify.Pickup.Latitude
		parcelDB.PickupLon = &parcelModify.Pickup.Longitude
	}
	if parcelModify.Dropoff != nil {
		parcelDB.DropoffLat = &parcelModify.Dropoff.Latitude
		parcelDB.DropoffLon = &parcelModify.Dropoff.Longitude
	}
	if parcelModify.WeightKg != nil {
		parcelDB.WeightKg = parcelModify.WeightKg
	}
	if parcelModify.Status != nil {
		status := parcelModify.Status.String()
		parcelDB.Status = &status
	}
	if parcelModify.TripID != nil {
		parcelDB.TripID = parcelModify.TripID
	}

	return parcelDB
}

func ToDomainList(parcelsDB []ParcelDB) []entities.Parcel {
	if len(parcelsDB) == 0 {
		return []entities.Parcel{}
	}

	result := make([]entities.Parcel, len(parcelsDB))
	for i, parcelDB := range parcelsDB {
		result[i] = *ToDomain(&parcelDB)
	}
	return result
}

func toCoordinates(lat, lon *float64) *entities.Coordinates {
	if lat == nil || lon == nil {
		return nil
	}
	return &entities.Coordinates{Latitude: *lat, Longitude: *lon}
}
