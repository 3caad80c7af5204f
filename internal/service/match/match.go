package match

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"parcelmatch/internal/entities"
	"parcelmatch/pkg/logger"

	"github.com/AlekSi/pointer"
)

const (
	triggerParcel = "parcel"
	triggerTrip   = "trip"

	skipReasonSelfMatch = "self_match"
	skipReasonLowScore  = "low_score"
	skipReasonDuplicate = "duplicate"
)

type Service struct {
	log              handlerLogger
	repository       Repository
	parcelRepository ParcelRepository
	tripRepository   TripRepository
	scorer           Scorer
	feeEstimator     FeeEstimator
	notifier         Notifier
	txManager        TxManager
	minScore         float64
}

func New(
	log handlerLogger,
	repository Repository,
	parcelRepository ParcelRepository,
	tripRepository TripRepository,
	scorer Scorer,
	feeEstimator FeeEstimator,
	notifier Notifier,
	txManager TxManager,
	minScore float64,
) *Service {
	return &Service{
		log:              log,
		repository:       repository,
		parcelRepository: parcelRepository,
		tripRepository:   tripRepository,
		scorer:           scorer,
		feeEstimator:     feeEstimator,
		notifier:         notifier,
		txManager:        txManager,
		minScore:         minScore,
	}
}

// GenerateForParcel перебирает активные поездки и создает кандидатов для посылки.
// Уже существующие пары молча пропускаются, генерацию можно запускать повторно.
func (s *Service) GenerateForParcel(ctx context.Context, parcelID int64) ([]entities.Match, error) {
	timer := time.Now()
	defer func() {
		MatchGenerationDuration.WithLabelValues(triggerParcel).Observe(time.Since(timer).Seconds())
	}()

	parcel, err := s.parcelRepository.GetByID(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	if parcel.Status != entities.ParcelPending {
		s.log.Info("skip match generation for non-pending parcel",
			logger.NewField("parcel_id", parcelID),
			logger.NewField("status", parcel.Status.String()),
		)
		return nil, nil
	}

	trips, err := s.tripRepository.ListMatchable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matchable trips: %w", err)
	}

	created := make([]entities.Match, 0, len(trips))
	for i := range trips {
		match, err := s.candidate(ctx, parcel, &trips[i], triggerParcel)
		if err != nil {
			return created, err
		}
		if match != nil {
			created = append(created, *match)
		}
	}
	return created, nil
}

// GenerateForTrip перебирает ожидающие посылки и создает кандидатов для поездки.
func (s *Service) GenerateForTrip(ctx context.Context, tripID int64) ([]entities.Match, error) {
	timer := time.Now()
	defer func() {
		MatchGenerationDuration.WithLabelValues(triggerTrip).Observe(time.Since(timer).Seconds())
	}()

	trip, err := s.tripRepository.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}

	if !trip.Status.Matchable() {
		s.log.Info("skip match generation for non-matchable trip",
			logger.NewField("trip_id", tripID),
			logger.NewField("status", trip.Status.String()),
		)
		return nil, nil
	}

	parcels, err := s.parcelRepository.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending parcels: %w", err)
	}

	created := make([]entities.Match, 0, len(parcels))
	for i := range parcels {
		match, err := s.candidate(ctx, &parcels[i], trip, triggerTrip)
		if err != nil {
			return created, err
		}
		if match != nil {
			created = append(created, *match)
		}
	}
	return created, nil
}

func (s *Service) GetMatchesByParcel(ctx context.Context, actor entities.Actor, parcelID int64) ([]entities.Match, error) {
	parcel, err := s.parcelRepository.GetByID(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("get parcel: %w", err)
	}

	if !actor.Admin && actor.ID != parcel.SenderID {
		return nil, ErrUnauthorized
	}

	matches, err := s.repository.ListByParcel(ctx, parcelID)
	if err != nil {
		return nil, fmt.Errorf("list matches by parcel: %w", err)
	}
	return matches, nil
}

// Accept принимает кандидата. Посылка переводится в matched условным UPDATE,
// поэтому из нескольких pending кандидатов одной посылки принят будет ровно один.
func (s *Service) Accept(ctx context.Context, actor entities.Actor, matchID int64) (*entities.Match, error) {
	accepted := entities.Match{}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		match, err := s.repository.GetByID(ctx, matchID)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}

		if match.Status != entities.MatchPending {
			return ErrNotActionable
		}

		if err := s.authorizeResolve(ctx, actor, match); err != nil {
			return err
		}

		ok, err := s.parcelRepository.MarkMatchedIf(ctx, match.ParcelID, match.TripID)
		if err != nil {
			return fmt.Errorf("mark parcel matched: %w", err)
		}
		if !ok {
			return ErrAlreadyMatched
		}

		intentRef, err := newPaymentIntentRef()
		if err != nil {
			return fmt.Errorf("generate payment intent ref: %w", err)
		}

		ok, err = s.repository.MarkAcceptedIf(ctx, match.ID, intentRef)
		if err != nil {
			return fmt.Errorf("mark match accepted: %w", err)
		}
		if !ok {
			return ErrConflict
		}

		accepted = *match
		accepted.Status = entities.MatchAccepted
		accepted.PaymentIntentRef = intentRef
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyResolved(ctx, &accepted)
	return &accepted, nil
}

func (s *Service) Reject(ctx context.Context, actor entities.Actor, matchID int64) (*entities.Match, error) {
	rejected := entities.Match{}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		match, err := s.repository.GetByID(ctx, matchID)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}

		if match.Status != entities.MatchPending {
			return ErrNotActionable
		}

		if err := s.authorizeResolve(ctx, actor, match); err != nil {
			return err
		}

		ok, err := s.repository.UpdateStatusIf(ctx, match.ID, entities.MatchPending, entities.MatchRejected)
		if err != nil {
			return fmt.Errorf("mark match rejected: %w", err)
		}
		if !ok {
			return ErrConflict
		}

		rejected = *match
		rejected.Status = entities.MatchRejected
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyResolved(ctx, &rejected)
	return &rejected, nil
}

// CleanupDeparted отклоняет pending кандидатов поездок, которые уже отправились.
func (s *Service) CleanupDeparted(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.RejectPendingForDepartedTrips(ctx, time.Now().UTC())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}

	return rowsAffected, nil
}

// Нулевой порог означает "сохранять любую строго положительную оценку".
func (s *Service) passesFloor(total float64) bool {
	if s.minScore > 0 {
		return total >= s.minScore
	}
	return total > 0
}

func (s *Service) candidate(ctx context.Context, parcel *entities.Parcel, trip *entities.Trip, trigger string) (*entities.Match, error) {
	if trip.CourierID == parcel.SenderID {
		MatchCandidatesSkippedTotal.WithLabelValues(trigger, skipReasonSelfMatch).Inc()
		return nil, nil
	}

	score := s.scorer.Score(parcel, trip)
	if !s.passesFloor(score.Total) {
		MatchCandidatesSkippedTotal.WithLabelValues(trigger, skipReasonLowScore).Inc()
		return nil, nil
	}

	exists, err := s.repository.ExistsActive(ctx, parcel.ID, trip.ID)
	if err != nil {
		return nil, fmt.Errorf("check existing match: %w", err)
	}
	if exists {
		MatchCandidatesSkippedTotal.WithLabelValues(trigger, skipReasonDuplicate).Inc()
		return nil, nil
	}

	fee, err := s.feeEstimator.Estimate(ctx, parcel, trip)
	if err != nil {
		return nil, fmt.Errorf("estimate fee: %w", err)
	}

	matchModify := entities.MatchModify{
		ParcelID:      &parcel.ID,
		TripID:        &trip.ID,
		Score:         &score.Total,
		Status:        pointer.To(entities.MatchPending),
		PaymentStatus: pointer.To(entities.PaymentUnpaid),
		Fee:           &fee,
	}

	created, err := s.repository.Create(ctx, matchModify)
	if err != nil {
		// гонка с параллельной генерацией, пара уже существует
		if errors.Is(err, ErrMatchAlreadyExists) {
			MatchCandidatesSkippedTotal.WithLabelValues(trigger, skipReasonDuplicate).Inc()
			return nil, nil
		}
		return nil, fmt.Errorf("create match: %w", err)
	}

	MatchesCreatedTotal.WithLabelValues(trigger).Inc()

	if err := s.notifier.MatchCreated(ctx, created); err != nil {
		s.log.Warn("failed to publish match created event",
			logger.NewField("match_id", created.ID),
			logger.NewField("error", err.Error()),
		)
	}

	return created, nil
}

func (s *Service) authorizeResolve(ctx context.Context, actor entities.Actor, match *entities.Match) error {
	if actor.Admin {
		return nil
	}

	parcel, err := s.parcelRepository.GetByID(ctx, match.ParcelID)
	if err != nil {
		return fmt.Errorf("get parcel: %w", err)
	}
	if actor.ID == parcel.SenderID {
		return nil
	}

	trip, err := s.tripRepository.GetByID(ctx, match.TripID)
	if err != nil {
		return fmt.Errorf("get trip: %w", err)
	}
	if actor.ID == trip.CourierID {
		return nil
	}

	return ErrUnauthorized
}

func (s *Service) notifyResolved(ctx context.Context, match *entities.Match) {
	if err := s.notifier.MatchResolved(ctx, match); err != nil {
		s.log.Warn("failed to publish match resolved event",
			logger.NewField("match_id", match.ID),
			logger.NewField("status", match.Status.String()),
			logger.NewField("error", err.Error()),
		)
	}
}

func newPaymentIntentRef() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return "pi_" + hex.EncodeToString(buf), nil
}
