package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nikolaev/service-payment/internal/api/estimate"
	"github.com/nikolaev/service-payment/internal/api/intent"
	"github.com/nikolaev/service-payment/internal/events"
	"github.com/nikolaev/service-payment/internal/usecase/billing"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8090"
	}

	brokers := os.Getenv("KAFKA_BROKERS")
	if brokers == "" {
		brokers = "localhost:9092"
	}

	topic := os.Getenv("KAFKA_TOPIC_PAYMENT_EVENTS")
	if topic == "" {
		topic = "payment.status.changed"
	}

	producer, err := events.NewProducer(strings.Split(brokers, ","), topic)
	if err != nil {
		log.Fatalf("kafka producer: %v", err)
	}
	defer producer.Close()

	useCase := billing.New(producer)

	estimateHandler := estimate.New(useCase)
	intentHandler := intent.New(useCase)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/v1/estimate", estimateHandler.Estimate)
	r.Post("/v1/intents", intentHandler.Create)
	r.Post("/v1/intents/{ref}/capture", intentHandler.Capture)
	r.Post("/v1/intents/{ref}/refund", intentHandler.Refund)

	log.Printf("payment emulator listening on :%s", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatal(err)
	}
}
