package estimate

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/nikolaev/service-payment/internal/domain/entity"
)

type estimateRequest struct {
	WeightKg   float64 `json:"weight_kg"`
	SizeClass  string  `json:"size_class"`
	DistanceKm float64 `json:"distance_km"`
}

type estimateResponse struct {
	DeliveryFee int64  `json:"delivery_fee"`
	PlatformFee int64  `json:"platform_fee"`
	TotalAmount int64  `json:"total_amount"`
	Currency    string `json:"currency"`
}

type Handler struct {
	useCase usecase
}

func New(u usecase) *Handler {
	return &Handler{
		useCase: u,
	}
}

func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	quote, err := h.useCase.Estimate(r.Context(), entity.QuoteRequest{
		WeightKg:   req.WeightKg,
		SizeClass:  req.SizeClass,
		DistanceKm: req.DistanceKm,
	})
	if err != nil {
		log.Printf("from Estimate: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(estimateResponse{
		DeliveryFee: quote.DeliveryFee,
		PlatformFee: quote.PlatformFee,
		TotalAmount: quote.TotalAmount,
		Currency:    quote.Currency,
	})
}
