package parcel

import (
	"math"
	"strings"

	"parcelmatch/internal/entities"
)

const maxWeightKg = 1000.0

func isValidAddress(address string) bool {
	return strings.TrimSpace(address) != ""
}

func isValidWeight(weightKg float64) bool {
	return weightKg > 0 && weightKg <= maxWeightKg && !math.IsNaN(weightKg)
}

func isValidCoordinates(c *entities.Coordinates) bool {
	if c == nil {
		return true // координаты опциональны
	}
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) {
		return false
	}
	return c.Latitude >= -90 && c.Latitude <= 90 &&
		c.Longitude >= -180 && c.Longitude <= 180
}

func isValidStatus(status entities.ParcelStatusType) bool {
	switch status {
	case entities.ParcelPending, entities.ParcelMatched, entities.ParcelPickedUp,
		entities.ParcelInTransit, entities.ParcelDelivered, entities.ParcelCancelled:
		return true
	default:
		return false
	}
}
