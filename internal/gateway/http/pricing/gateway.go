package pricing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"parcelmatch/internal/entities"
	"parcelmatch/pkg/geo"
	retrierconfig "parcelmatch/pkg/retrier"
	"parcelmatch/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const estimatePath = "/v1/estimate"

type estimateRequest struct {
	WeightKg   float64 `json:"weight_kg"`
	SizeClass  string  `json:"size_class"`
	DistanceKm float64 `json:"distance_km,omitempty"`
}

type estimateResponse struct {
	DeliveryFee int64  `json:"delivery_fee"`
	PlatformFee int64  `json:"platform_fee"`
	TotalAmount int64  `json:"total_amount"`
	Currency    string `json:"currency"`
}

// httpStatusError сохраняет код ответа для решения о ретрае.
type httpStatusError struct {
	code int
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("pricing responded with status %d", e.code)
}

type Gateway struct {
	baseURL string
	client  httpDoer
	retrier retrier
}

func New(baseURL string, client httpDoer) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		baseURL: baseURL,
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) Estimate(ctx context.Context, parcel *entities.Parcel, trip *entities.Trip) (entities.FeeBreakdown, error) {
	reqBody := estimateRequest{
		WeightKg:  parcel.WeightKg,
		SizeClass: entities.SizeClassForWeight(parcel.WeightKg).String(),
	}
	if parcel.Pickup != nil && parcel.Dropoff != nil {
		reqBody.DistanceKm = geo.DistanceKm(
			parcel.Pickup.Latitude, parcel.Pickup.Longitude,
			parcel.Dropoff.Latitude, parcel.Dropoff.Longitude,
		)
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return entities.FeeBreakdown{}, fmt.Errorf("gateway pricing, marshal request: %w", err)
	}

	var respBody estimateResponse

	err = g.executeWithMetrics(ctx, "Estimate", func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+estimatePath, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := g.client.Do(req)
		if err != nil {
			return err
		}
		defer func() {
			_, _ = io.Copy(io.Discard, resp.Body)
			_ = resp.Body.Close()
		}()

		if resp.StatusCode != http.StatusOK {
			return &httpStatusError{code: resp.StatusCode}
		}

		return json.NewDecoder(resp.Body).Decode(&respBody)
	})
	if err != nil {
		return entities.FeeBreakdown{}, fmt.Errorf("gateway pricing, estimate: %w", err)
	}

	return entities.FeeBreakdown{
		DeliveryFee: respBody.DeliveryFee,
		PlatformFee: respBody.PlatformFee,
		TotalAmount: respBody.TotalAmount,
		Currency:    respBody.Currency,
	}, nil
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return statusErr.code == http.StatusTooManyRequests || statusErr.code >= http.StatusInternalServerError
	}

	// сетевые ошибки ретраем всегда
	return true
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getHTTPCode(err)
	GatewayRequestDuration.WithLabelValues(method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(method, code).Inc()
	}

	return err
}

func getHTTPCode(err error) string {
	if err == nil {
		return "200"
	}

	var statusErr *httpStatusError
	if errors.As(err, &statusErr) {
		return strconv.Itoa(statusErr.code)
	}
	return "network_error"
}
