package match_reject_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"parcelmatch/internal/handlers/rest/actor"
	"parcelmatch/internal/handlers/rest/dto"
	"parcelmatch/internal/service/match"
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

	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	matchEntity, err := h.service.Reject(r.Context(), requestActor, id)
	if err != nil {
		switch {
		case errors.Is(err, match.ErrMatchNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, match.ErrUnauthorized):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, match.ErrNotActionable),
			errors.Is(err, match.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	matchDTO := dto.NewMatch(matchEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(matchDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
