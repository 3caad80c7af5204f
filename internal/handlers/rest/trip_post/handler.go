package trip_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelmatch/internal/entities"
	"parcelmatch/internal/handlers/rest/actor"
	"parcelmatch/internal/handlers/rest/dto"
	"parcelmatch/internal/service/trip"
	"parcelmatch/pkg/logger"
)

type Handler struct {
	log          handlerLogger
	service      Service
	matchService MatchService
}

func New(log handlerLogger, service Service, matchService MatchService) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:          handlerLog,
		service:      service,
		matchService: matchService,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestActor, err := actor.FromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var tripCreateDTO dto.TripCreate
	err = json.NewDecoder(r.Body).Decode(&tripCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	capacity := entities.SizeClass(tripCreateDTO.Capacity)
	tripModify := entities.TripModify{
		CourierID:          &requestActor.ID,
		OriginAddress:      &tripCreateDTO.OriginAddress,
		DestinationAddress: &tripCreateDTO.DestinationAddress,
		DepartureAt:        tripCreateDTO.DepartureAt,
		Capacity:           &capacity,
	}
	if tripCreateDTO.Origin != nil {
		tripModify.Origin = &entities.Coordinates{
			Latitude:  tripCreateDTO.Origin.Lat,
			Longitude: tripCreateDTO.Origin.Lon,
		}
	}
	if tripCreateDTO.Destination != nil {
		tripModify.Destination = &entities.Coordinates{
			Latitude:  tripCreateDTO.Destination.Lat,
			Longitude: tripCreateDTO.Destination.Lon,
		}
	}

	tripEntity, err := h.service.CreateTrip(r.Context(), tripModify)
	if err != nil {
		switch {
		case errors.Is(err, trip.ErrMissingRequiredFields),
			errors.Is(err, trip.ErrInvalidAddress),
			errors.Is(err, trip.ErrInvalidCapacity),
			errors.Is(err, trip.ErrInvalidDeparture),
			errors.Is(err, trip.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, trip.ErrRateLimited):
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	matches, err := h.matchService.GenerateForTrip(r.Context(), tripEntity.ID)
	if err != nil {
		h.log.With(
			logger.NewField("trip", tripEntity.ID),
			logger.NewField("error", err),
		).Error("match generation after trip create")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.TripCreateResponse{
		Trip:    dto.NewTrip(tripEntity),
		Matches: dto.NewMatches(matches),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
