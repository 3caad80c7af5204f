package parcels_get

import (
	"encoding/json"
	"net/http"

	"parcelmatch/internal/handlers/rest/actor"
	"parcelmatch/internal/handlers/rest/dto"
	"parcelmatch/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestActor, err := actor.FromRequest(r)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	parcelEntities, err := h.service.GetParcelsBySender(r.Context(), requestActor.ID)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	parcelDTOs := make([]dto.Parcel, len(parcelEntities))
	for i := range parcelEntities {
		parcelDTOs[i] = dto.NewParcel(&parcelEntities[i])
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(parcelDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
