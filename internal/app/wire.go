//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	pricingGateway "parcelmatch/internal/gateway/http/pricing"
	notifyGateway "parcelmatch/internal/gateway/kafka/notify"
	"parcelmatch/internal/handlers/rest/match_accept_post"
	"parcelmatch/internal/handlers/rest/match_reject_post"
	"parcelmatch/internal/handlers/rest/parcel_get"
	"parcelmatch/internal/handlers/rest/parcel_matches_get"
	"parcelmatch/internal/handlers/rest/parcel_post"
	"parcelmatch/internal/handlers/rest/parcel_status_put"
	"parcelmatch/internal/handlers/rest/parcels_get"
	"parcelmatch/internal/handlers/rest/trip_get"
	"parcelmatch/internal/handlers/rest/trip_post"
	"parcelmatch/internal/handlers/rest/trip_status_put"
	"parcelmatch/internal/handlers/tasks/match_cleanup"
	"parcelmatch/internal/pkg/config"
	"parcelmatch/internal/pkg/kafka"

	activityRepo "parcelmatch/internal/repository/activity"
	matchRepo "parcelmatch/internal/repository/match"
	parcelRepo "parcelmatch/internal/repository/parcel"
	tripRepo "parcelmatch/internal/repository/trip"
	"parcelmatch/internal/service/creationlimit"
	matchService "parcelmatch/internal/service/match"
	parcelService "parcelmatch/internal/service/parcel"
	paymentService "parcelmatch/internal/service/payment"
	"parcelmatch/internal/service/scoring"
	tripService "parcelmatch/internal/service/trip"

	"parcelmatch/pkg/background"
	"parcelmatch/pkg/logger"
	"parcelmatch/pkg/querier"
	"parcelmatch/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	CleanupInterval time.Duration
	MinScore        float64
)

type Application struct {
	ServiceParcel     ServiceParcel
	ServiceTrip       ServiceTrip
	ServiceMatch      ServiceMatch
	Producer          *kafka.Producer
	BackgroundWorkers *background.Worker
}

type ServiceParcel interface {
	parcel_post.Service
	parcel_get.Service
	parcels_get.Service
	parcel_status_put.Service
}

type ServiceTrip interface {
	trip_post.Service
	trip_get.Service
	trip_status_put.Service
}

type ServiceMatch interface {
	parcel_post.MatchService
	trip_post.MatchService
	parcel_matches_get.Service
	match_accept_post.Service
	match_reject_post.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideMinScore,

		provideParcelRepository,
		provideTripRepository,
		provideMatchRepository,
		provideActivityRepository,

		provideCreationLimiter,
		provideScoringEngine,
		providePricingGateway,
		provideKafkaProducer,
		provideNotifyGateway,

		provideServiceParcel,
		provideServiceTrip,
		provideServiceMatch,

		provideMatchCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceParcel), new(*parcelService.Service)),
		wire.Bind(new(ServiceTrip), new(*tripService.Service)),
		wire.Bind(new(ServiceMatch), new(*matchService.Service)),

		wire.Bind(new(parcelService.Repository), new(*parcelRepo.Repository)),
		wire.Bind(new(parcelService.TripProvider), new(*tripRepo.Repository)),
		wire.Bind(new(parcelService.RateLimiter), new(*creationlimit.Service)),
		wire.Bind(new(parcelService.Notifier), new(*notifyGateway.Gateway)),
		wire.Bind(new(parcelService.TxManager), new(*tx.Manager)),

		wire.Bind(new(tripService.Repository), new(*tripRepo.Repository)),
		wire.Bind(new(tripService.RateLimiter), new(*creationlimit.Service)),
		wire.Bind(new(tripService.TxManager), new(*tx.Manager)),

		wire.Bind(new(matchService.Repository), new(*matchRepo.Repository)),
		wire.Bind(new(matchService.ParcelRepository), new(*parcelRepo.Repository)),
		wire.Bind(new(matchService.TripRepository), new(*tripRepo.Repository)),
		wire.Bind(new(matchService.Scorer), new(*scoring.Engine)),
		wire.Bind(new(matchService.FeeEstimator), new(*pricingGateway.Gateway)),
		wire.Bind(new(matchService.Notifier), new(*notifyGateway.Gateway)),
		wire.Bind(new(matchService.TxManager), new(*tx.Manager)),

		wire.Bind(new(creationlimit.Repository), new(*activityRepo.Repository)),

		wire.Bind(new(match_cleanup.Service), new(*matchService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	PaymentService *paymentService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-payment-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideMatchRepository,
		provideServicePayment,

		wire.Bind(new(paymentService.Repository), new(*matchRepo.Repository)),
		wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideParcelRepository(querier *querier.Querier) *parcelRepo.Repository {
	return parcelRepo.New(querier)
}

func provideTripRepository(querier *querier.Querier) *tripRepo.Repository {
	return tripRepo.New(querier)
}

func provideMatchRepository(querier *querier.Querier) *matchRepo.Repository {
	return matchRepo.New(querier)
}

func provideActivityRepository(querier *querier.Querier) *activityRepo.Repository {
	return activityRepo.New(querier)
}

func provideCreationLimiter(
	log logger.Logger,
	repository creationlimit.Repository,
	cfg *config.Config,
) *creationlimit.Service {
	return creationlimit.New(log, repository, cfg.CreationLimit.Window, int64(cfg.CreationLimit.MaxCreations))
}

func provideScoringEngine(cfg *config.Config) *scoring.Engine {
	return scoring.New(scoring.Config{
		RouteWeight:            cfg.Matching.RouteWeight,
		ProximityWeight:        cfg.Matching.ProximityWeight,
		TimeWeight:             cfg.Matching.TimeWeight,
		CapacityWeight:         cfg.Matching.CapacityWeight,
		MaxPickupDeviationKm:   cfg.Matching.MaxPickupDeviationKm,
		MaxDeliveryDeviationKm: cfg.Matching.MaxDeliveryDeviationKm,
		ProximityRadiusKm:      cfg.Matching.ProximityRadiusKm,
	})
}

func providePricingGateway(cfg *config.Config) *pricingGateway.Gateway {
	client := &http.Client{
		Timeout: cfg.Pricing.Timeout,
	}
	return pricingGateway.New(cfg.Pricing.BaseURL, client)
}

func provideKafkaProducer(ctx context.Context, log logger.Logger, cfg *config.Config) (*kafka.Producer, error) {
	brokers := strings.Split(cfg.Kafka.Brokers, ",")
	for i := range brokers {
		brokers[i] = strings.TrimSpace(brokers[i])
	}
	return kafka.NewSyncProducer(ctx, log, &cfg.Kafka, brokers)
}

func provideNotifyGateway(producer *kafka.Producer, cfg *config.Config) *notifyGateway.Gateway {
	return notifyGateway.New(producer, cfg.Kafka.Topics.MatchEvents, cfg.Kafka.Topics.ParcelEvents)
}

func provideServiceParcel(
	log logger.Logger,
	repository parcelService.Repository,
	tripProvider parcelService.TripProvider,
	rateLimiter parcelService.RateLimiter,
	notifier parcelService.Notifier,
	txManager parcelService.TxManager,
) *parcelService.Service {
	return parcelService.New(log, repository, tripProvider, rateLimiter, notifier, txManager)
}

func provideServiceTrip(
	repository tripService.Repository,
	rateLimiter tripService.RateLimiter,
	txManager tripService.TxManager,
) *tripService.Service {
	return tripService.New(repository, rateLimiter, txManager)
}

// Нулевой порог уходит в сервис как есть: он означает
// "сохранять любую строго положительную оценку".
func provideMinScore(cfg *config.Config) MinScore {
	return MinScore(cfg.Matching.MinScore)
}

func provideServiceMatch(
	log logger.Logger,
	repository matchService.Repository,
	parcelRepository matchService.ParcelRepository,
	tripRepository matchService.TripRepository,
	scorer matchService.Scorer,
	feeEstimator matchService.FeeEstimator,
	notifier matchService.Notifier,
	txManager matchService.TxManager,
	minScore MinScore,
) *matchService.Service {
	return matchService.New(
		log,
		repository,
		parcelRepository,
		tripRepository,
		scorer,
		feeEstimator,
		notifier,
		txManager,
		float64(minScore),
	)
}

func provideServicePayment(
	log logger.Logger,
	repository paymentService.Repository,
	txManager paymentService.TxManager,
) *paymentService.Service {
	return paymentService.New(log, repository, txManager)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.MatchCleanupInterval)
}

func provideMatchCleanupTask(
	log logger.Logger,
	matchService match_cleanup.Service,
	interval CleanupInterval,
) *match_cleanup.MatchCleanup {
	return match_cleanup.NewMatchCleanup(log, matchService, time.Duration(interval))
}

func provideTaskList(
	matchCleanupTask *match_cleanup.MatchCleanup,
) []background.Task {
	return []background.Task{
		matchCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
