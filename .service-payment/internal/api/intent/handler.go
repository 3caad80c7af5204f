package intent

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nikolaev/service-payment/internal/domain/entity"
	"github.com/nikolaev/service-payment/internal/usecase/billing"
)

type createRequest struct {
	Amount int64 `json:"amount"`
}

type intentResponse struct {
	Ref       string    `json:"ref"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Handler struct {
	useCase usecase
}

func New(u usecase) *Handler {
	return &Handler{
		useCase: u,
	}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	created, err := h.useCase.CreateIntent(r.Context(), req.Amount)
	if err != nil {
		log.Printf("from Create: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeIntent(w, http.StatusCreated, created)
}

func (h *Handler) Capture(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.useCase.Capture)
}

func (h *Handler) Refund(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.useCase.Refund)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, ref string) (*entity.Intent, error)) {
	ref := chi.URLParam(r, "ref")
	if ref == "" {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	updated, err := fn(r.Context(), ref)
	if err != nil {
		switch {
		case errors.Is(err, billing.ErrIntentNotFound):
			http.Error(w, "not found", http.StatusNotFound)
		case errors.Is(err, billing.ErrBadTransition):
			http.Error(w, "conflict", http.StatusConflict)
		default:
			log.Printf("from transition: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	writeIntent(w, http.StatusOK, updated)
}

func writeIntent(w http.ResponseWriter, code int, i *entity.Intent) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(intentResponse{
		Ref:       i.Ref,
		Amount:    i.Amount,
		Currency:  i.Currency,
		Status:    string(i.Status),
		UpdatedAt: i.UpdatedAt,
	})
}
