package scoring

import (
	"math"
	"time"

	"parcelmatch/internal/entities"
	"parcelmatch/pkg/geo"
)

// Нейтральные значения под-оценок при неполных данных.
const (
	neutralRouteScore     = 50.0
	neutralProximityScore = 40.0
	neutralTimeScore      = 70.0
	neutralCapacityScore  = 70.0
)

const (
	timeScoreDeparted  = 0.0
	timeScoreUnderHour = 30.0
	timeScoreUnderDay  = 70.0
	timeScoreAmple     = 90.0
)

type Engine struct {
	cfg Config
}

func New(cfg Config) *Engine {
	return &Engine{
		cfg: cfg.withDefaults(),
	}
}

// Score считает составную оценку совместимости посылки и поездки.
// Жёсткие отсечки (маршрут вне допуска, вместимость меньше требуемой)
// обнуляют итог целиком: такой кандидат непригоден независимо от
// остальных факторов.
func (e *Engine) Score(parcel *entities.Parcel, trip *entities.Trip) entities.MatchScore {
	now := time.Now().UTC()
	return e.score(parcel, trip, now)
}

func (e *Engine) score(parcel *entities.Parcel, trip *entities.Trip, now time.Time) entities.MatchScore {
	route, routeInfeasible := e.scoreRoute(parcel, trip)
	capacity, capacityInfeasible := e.scoreCapacity(parcel, trip)

	result := entities.MatchScore{
		RouteAlignment:    route,
		Proximity:         e.scoreProximity(parcel, trip),
		TimeCompatibility: e.scoreTime(trip.DepartureAt, now),
		CapacityFit:       capacity,
	}

	if routeInfeasible || capacityInfeasible {
		return result
	}

	total := e.cfg.RouteWeight*result.RouteAlignment +
		e.cfg.ProximityWeight*result.Proximity +
		e.cfg.TimeWeight*result.TimeCompatibility +
		e.cfg.CapacityWeight*result.CapacityFit

	result.Total = round2(total)
	return result
}

func (e *Engine) scoreRoute(parcel *entities.Parcel, trip *entities.Trip) (score float64, infeasible bool) {
	if parcel.Pickup == nil || parcel.Dropoff == nil || trip.Origin == nil || trip.Destination == nil {
		return neutralRouteScore, false
	}

	pickupKm := distanceBetween(parcel.Pickup, trip.Origin)
	deliveryKm := distanceBetween(parcel.Dropoff, trip.Destination)

	if pickupKm > e.cfg.MaxPickupDeviationKm || deliveryKm > e.cfg.MaxDeliveryDeviationKm {
		return 0, true
	}

	pickupScore := legScore(pickupKm, e.cfg.MaxPickupDeviationKm)
	deliveryScore := legScore(deliveryKm, e.cfg.MaxDeliveryDeviationKm)

	return (pickupScore + deliveryScore) / 2, false
}

func (e *Engine) scoreProximity(parcel *entities.Parcel, trip *entities.Trip) float64 {
	if parcel.Pickup == nil || parcel.Dropoff == nil || trip.Origin == nil || trip.Destination == nil {
		return neutralProximityScore
	}

	pickupScore := legScore(distanceBetween(parcel.Pickup, trip.Origin), e.cfg.ProximityRadiusKm)
	deliveryScore := legScore(distanceBetween(parcel.Dropoff, trip.Destination), e.cfg.ProximityRadiusKm)

	return (pickupScore + deliveryScore) / 2
}

func (e *Engine) scoreTime(departureAt *time.Time, now time.Time) float64 {
	if departureAt == nil {
		return neutralTimeScore
	}

	lead := departureAt.Sub(now)
	switch {
	case lead <= 0:
		return timeScoreDeparted
	case lead < time.Hour:
		return timeScoreUnderHour
	case lead < 24*time.Hour:
		return timeScoreUnderDay
	default:
		return timeScoreAmple
	}
}

func (e *Engine) scoreCapacity(parcel *entities.Parcel, trip *entities.Trip) (score float64, infeasible bool) {
	if trip.Capacity == "" {
		return neutralCapacityScore, false
	}

	required := entities.SizeClassForWeight(parcel.WeightKg)
	diff := classRank(trip.Capacity) - classRank(required)

	switch {
	case diff < 0:
		return 0, true
	case diff == 0:
		return 100, false
	case diff == 1:
		return 80, false
	default:
		return 60, false
	}
}

func classRank(class entities.SizeClass) int {
	switch class {
	case entities.SizeSmall:
		return 0
	case entities.SizeMedium:
		return 1
	case entities.SizeLarge:
		return 2
	default:
		return 0
	}
}

func legScore(distanceKm, thresholdKm float64) float64 {
	score := 100 * (1 - distanceKm/thresholdKm)
	if score < 0 {
		return 0
	}
	return score
}

func distanceBetween(a, b *entities.Coordinates) float64 {
	return geo.DistanceKm(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
