package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"parcelmatch/internal/entities"
	"parcelmatch/internal/handlers/rest/actor"
	"parcelmatch/internal/handlers/rest/dto"
	"parcelmatch/internal/service/parcel"
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

	var parcelCreateDTO dto.ParcelCreate
	err = json.NewDecoder(r.Body).Decode(&parcelCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelModify := entities.ParcelModify{
		SenderID:        &requestActor.ID,
		PickupAddress:   &parcelCreateDTO.PickupAddress,
		DeliveryAddress: &parcelCreateDTO.DeliveryAddress,
		WeightKg:        &parcelCreateDTO.WeightKg,
	}
	if parcelCreateDTO.Pickup != nil {
		parcelModify.Pickup = &entities.Coordinates{
			Latitude:  parcelCreateDTO.Pickup.Lat,
			Longitude: parcelCreateDTO.Pickup.Lon,
		}
	}
	if parcelCreateDTO.Dropoff != nil {
		parcelModify.Dropoff = &entities.Coordinates{
			Latitude:  parcelCreateDTO.Dropoff.Lat,
			Longitude: parcelCreateDTO.Dropoff.Lon,
		}
	}

	parcelEntity, err := h.service.CreateParcel(r.Context(), parcelModify)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidAddress),
			errors.Is(err, parcel.ErrInvalidWeight),
			errors.Is(err, parcel.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrRateLimited):
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	matches, err := h.matchService.GenerateForParcel(r.Context(), parcelEntity.ID)
	if err != nil {
		// посылка уже создана, но подбор не прошёл — клиент может
		// повторить запрос подбора позже
		h.log.With(
			logger.NewField("parcel", parcelEntity.ID),
			logger.NewField("error", err),
		).Error("match generation after parcel create")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.ParcelCreateResponse{
		Parcel:  dto.NewParcel(parcelEntity),
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
