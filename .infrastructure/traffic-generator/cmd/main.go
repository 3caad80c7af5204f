package main

import (
	"bytes"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Метрики
var (
	requestsCounter = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "traffic_generator_requests_total",
		Help: "Общее количество отправленных запросов",
	}, []string{"endpoint", "code"})

	requestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "traffic_generator_request_duration_seconds",
		Help:    "Длительность запроса в секундах",
		Buckets: []float64{0.1, 0.3, 0.5, 1, 2},
	})
)

var client = &http.Client{Timeout: 5 * time.Second}

// Случайная точка в окрестностях Москвы
func randomPoint() (float64, float64) {
	lat := 55.5 + rand.Float64()*0.6
	lon := 37.3 + rand.Float64()*0.9
	return lat, lon
}

func parcelPayload() []byte {
	pickupLat, pickupLon := randomPoint()
	dropoffLat, dropoffLon := randomPoint()
	weight := 0.5 + rand.Float64()*24

	return []byte(fmt.Sprintf(`{
		"pickup_address": "Москва, точка %d",
		"delivery_address": "Москва, точка %d",
		"pickup": {"lat": %f, "lon": %f},
		"dropoff": {"lat": %f, "lon": %f},
		"weight_kg": %f
	}`, rand.Intn(1000), rand.Intn(1000), pickupLat, pickupLon, dropoffLat, dropoffLon, weight))
}

func tripPayload() []byte {
	originLat, originLon := randomPoint()
	destLat, destLon := randomPoint()
	departure := time.Now().Add(time.Duration(1+rand.Intn(48)) * time.Hour)

	return []byte(fmt.Sprintf(`{
		"origin_address": "Москва, точка %d",
		"destination_address": "Москва, точка %d",
		"origin": {"lat": %f, "lon": %f},
		"destination": {"lat": %f, "lon": %f},
		"departure_at": %q,
		"capacity": "medium"
	}`, rand.Intn(1000), rand.Intn(1000), originLat, originLon, destLat, destLon, departure.Format(time.RFC3339)))
}

func send(baseURL, endpoint string, actorID int64, payload []byte) {
	start := time.Now()
	defer func() {
		requestDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequest(http.MethodPost, baseURL+endpoint, bytes.NewReader(payload))
	if err != nil {
		requestsCounter.WithLabelValues(endpoint, "build_error").Inc()
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor-Id", strconv.FormatInt(actorID, 10))

	resp, err := client.Do(req)
	if err != nil {
		requestsCounter.WithLabelValues(endpoint, "network_error").Inc()
		return
	}
	defer resp.Body.Close()

	requestsCounter.WithLabelValues(endpoint, strconv.Itoa(resp.StatusCode)).Inc()
}

func main() {
	rand.Seed(time.Now().UnixNano())

	baseURL := os.Getenv("TARGET_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	http.Handle("/metrics", promhttp.Handler())
	go http.ListenAndServe(":2112", nil)

	for {
		actorID := int64(1 + rand.Intn(50))
		if rand.Intn(2) == 0 {
			send(baseURL, "/parcels", actorID, parcelPayload())
		} else {
			send(baseURL, "/trips", actorID, tripPayload())
		}
		time.Sleep(5 * time.Second)
	}
}
