package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type (
	Tasks struct {
		MatchCleanupInterval time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host     string
		Port     string
		User     string
		Password string
		DBName   string
		SSLMode  string
	}

	Pricing struct {
		BaseURL string
		Timeout time.Duration
	}

	// CreationLimit — скользящее окно на создание посылок и поездок.
	// Нулевые значения означают использование дефолтов сервиса.
	CreationLimit struct {
		Window       time.Duration
		MaxCreations int
	}

	// Matching — порог сохранения и параметры скоринга кандидатов.
	// Нулевые веса и радиусы означают использование дефолтов движка,
	// нулевой MinScore — сохранение любой строго положительной оценки.
	Matching struct {
		MinScore float64

		RouteWeight     float64
		ProximityWeight float64
		TimeWeight      float64
		CapacityWeight  float64

		MaxPickupDeviationKm   float64
		MaxDeliveryDeviationKm float64
		ProximityRadiusKm      float64
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		ConsumerTopic   string
		ConsumerGroup   string
		Topics          KafkaTopics
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	KafkaTopics struct {
		MatchEvents  string
		ParcelEvents string
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		PaymentStatusChanged PaymentStatusChanged
	}

	PaymentStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks         Tasks
		Server        HTTPServer
		Database      Database
		Pricing       Pricing
		CreationLimit CreationLimit
		Matching      Matching
		Kafka         Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	cleanupInterval, err := osGetEnvDuration("BACKGROUND_MATCH_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pricingTimeout, err := osGetEnvDuration("PRICING_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	limitWindow, err := osGetEnvDuration("CREATION_LIMIT_WINDOW")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	limitMax, err := osGetInt("CREATION_LIMIT_MAX")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minScore, err := osGetFloat("MATCHING_MIN_SCORE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	routeWeight, err := osGetFloat("MATCHING_ROUTE_WEIGHT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	proximityWeight, err := osGetFloat("MATCHING_PROXIMITY_WEIGHT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	timeWeight, err := osGetFloat("MATCHING_TIME_WEIGHT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	capacityWeight, err := osGetFloat("MATCHING_CAPACITY_WEIGHT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxPickupDeviationKm, err := osGetFloat("MATCHING_MAX_PICKUP_DEVIATION_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	maxDeliveryDeviationKm, err := osGetFloat("MATCHING_MAX_DELIVERY_DEVIATION_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	proximityRadiusKm, err := osGetFloat("MATCHING_PROXIMITY_RADIUS_KM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	paymentStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_PAYMENT_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Tasks: Tasks{
			MatchCleanupInterval: cleanupInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:     os.Getenv("POSTGRES_HOST"),
			Port:     os.Getenv("POSTGRES_PORT"),
			User:     os.Getenv("POSTGRES_USER"),
			Password: os.Getenv("POSTGRES_PASSWORD"),
			DBName:   os.Getenv("POSTGRES_DB"),
			SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
		},
		Pricing: Pricing{
			BaseURL: os.Getenv("PRICING_BASE_URL"),
			Timeout: pricingTimeout,
		},
		CreationLimit: CreationLimit{
			Window:       limitWindow,
			MaxCreations: limitMax,
		},
		Matching: Matching{
			MinScore:               minScore,
			RouteWeight:            routeWeight,
			ProximityWeight:        proximityWeight,
			TimeWeight:             timeWeight,
			CapacityWeight:         capacityWeight,
			MaxPickupDeviationKm:   maxPickupDeviationKm,
			MaxDeliveryDeviationKm: maxDeliveryDeviationKm,
			ProximityRadiusKm:      proximityRadiusKm,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			ConsumerTopic:   os.Getenv("KAFKA_TOPIC_PAYMENT_EVENTS"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Topics: KafkaTopics{
				MatchEvents:  os.Getenv("KAFKA_TOPIC_MATCH_EVENTS"),
				ParcelEvents: os.Getenv("KAFKA_TOPIC_PARCEL_EVENTS"),
			},
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				PaymentStatusChanged: PaymentStatusChanged{
					ProcessTimeout: paymentStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.MatchCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_MATCH_CLEANUP_INTERVAL is required")
	}

	if cfg.Pricing.BaseURL == "" {
		return errors.New("PRICING_BASE_URL is required")
	}
	if cfg.Pricing.Timeout == time.Duration(0) {
		return errors.New("PRICING_TIMEOUT is required")
	}

	if cfg.Matching.MinScore < 0 || cfg.Matching.MinScore > 100 {
		return errors.New("MATCHING_MIN_SCORE must be between 0 and 100")
	}
	if cfg.Matching.RouteWeight < 0 || cfg.Matching.ProximityWeight < 0 ||
		cfg.Matching.TimeWeight < 0 || cfg.Matching.CapacityWeight < 0 {
		return errors.New("MATCHING_*_WEIGHT must not be negative")
	}
	if cfg.Matching.MaxPickupDeviationKm < 0 || cfg.Matching.MaxDeliveryDeviationKm < 0 ||
		cfg.Matching.ProximityRadiusKm < 0 {
		return errors.New("MATCHING_*_KM must not be negative")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.ConsumerTopic == "" {
		return errors.New("KAFKA_TOPIC_PAYMENT_EVENTS is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Topics.MatchEvents == "" {
		return errors.New("KAFKA_TOPIC_MATCH_EVENTS is required")
	}
	if cfg.Kafka.Topics.ParcelEvents == "" {
		return errors.New("KAFKA_TOPIC_PARCEL_EVENTS is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.PaymentStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_PAYMENT_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
