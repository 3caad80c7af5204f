package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcelmatch/internal/entities"
	"parcelmatch/internal/repository"
	"parcelmatch/internal/service/match"
	"parcelmatch/internal/service/payment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const matchColumns = `id, parcel_id, trip_id, score, status, payment_status,
		delivery_fee, platform_fee, total_amount, currency,
		payment_intent_ref, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, matchModifyEntity entities.MatchModify) (*entities.Match, error) {
	matchModifyModel := FromDomainModify(&matchModifyEntity)
	query := `INSERT INTO matches (parcel_id, trip_id, score, status, payment_status,
			delivery_fee, platform_fee, total_amount, currency)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + matchColumns

	var matchModel MatchDB
	err := r.querier.QueryRow(
		ctx,
		query,
		matchModifyModel.ParcelID,
		matchModifyModel.TripID,
		matchModifyModel.Score,
		matchModifyModel.Status,
		matchModifyModel.PaymentStatus,
		matchModifyModel.DeliveryFee,
		matchModifyModel.PlatformFee,
		matchModifyModel.TotalAmount,
		matchModifyModel.Currency,
	).Scan(scanTargets(&matchModel)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, match.ErrMatchAlreadyExists
		}
		return nil, fmt.Errorf("unexpected match repository create error: %w", err)
	}

	return ToDomain(&matchModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Match, error) {
	query := `SELECT ` + matchColumns + `
		FROM matches
		WHERE id = $1`

	var matchModel MatchDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&matchModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, match.ErrMatchNotFound
		}

		return nil, fmt.Errorf("unexpected match repository getbyid error: %w", err)
	}

	return ToDomain(&matchModel), nil
}

func (r *Repository) GetByIntentRef(ctx context.Context, intentRef string) (*entities.Match, error) {
	query := `SELECT ` + matchColumns + `
		FROM matches
		WHERE payment_intent_ref = $1`

	var matchModel MatchDB
	err := r.querier.QueryRow(ctx, query, intentRef).Scan(scanTargets(&matchModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrIntentNotFound
		}

		return nil, fmt.Errorf("unexpected match repository getbyintentref error: %w", err)
	}

	return ToDomain(&matchModel), nil
}

// ExistsActive проверяет наличие не отклоненного кандидата для пары.
func (r *Repository) ExistsActive(ctx context.Context, parcelID, tripID int64) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM matches
		WHERE parcel_id = $1 AND trip_id = $2 AND status <> $3
	)`

	var exists bool
	err := r.querier.QueryRow(ctx, query, parcelID, tripID, entities.MatchRejected.String()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("unexpected match repository existsactive error: %w", err)
	}

	return exists, nil
}

func (r *Repository) ListByParcel(ctx context.Context, parcelID int64) ([]entities.Match, error) {
	builder := qb.
		Select(matchColumns).
		From("matches").
		Where(sq.Eq{"parcel_id": parcelID}).
		OrderBy("score DESC", "id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository listbyparcel error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository listbyparcel error: %w", err)
	}
	defer rows.Close()

	matchModels := make([]MatchDB, 0, 8)
	for rows.Next() {
		var matchModel MatchDB
		if err := rows.Scan(scanTargets(&matchModel)...); err != nil {
			return nil, fmt.Errorf("unexpected match repository listbyparcel error: %w", err)
		}
		matchModels = append(matchModels, matchModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected match repository listbyparcel error: %w", err)
	}

	return ToDomainList(matchModels), nil
}

func (r *Repository) MarkAcceptedIf(ctx context.Context, id int64, paymentIntentRef string) (bool, error) {
	query := `UPDATE matches
		SET status = $1, payment_intent_ref = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4`

	tag, err := r.querier.Exec(ctx, query,
		entities.MatchAccepted.String(), paymentIntentRef, id, entities.MatchPending.String())
	if err != nil {
		return false, fmt.Errorf("unexpected match repository markacceptedif error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) UpdateStatusIf(ctx context.Context, id int64, from, to entities.MatchStatusType) (bool, error) {
	query := `UPDATE matches
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`

	tag, err := r.querier.Exec(ctx, query, to.String(), id, from.String())
	if err != nil {
		return false, fmt.Errorf("unexpected match repository updatestatusif error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) UpdatePaymentStatusIf(ctx context.Context, id int64, from, to entities.PaymentStatusType) (bool, error) {
	query := `UPDATE matches
		SET payment_status = $1, updated_at = NOW()
		WHERE id = $2 AND payment_status = $3`

	tag, err := r.querier.Exec(ctx, query, to.String(), id, from.String())
	if err != nil {
		return false, fmt.Errorf("unexpected match repository updatepaymentstatusif error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// RejectPendingForDepartedTrips снимает pending кандидатов поездок, которые
// уже отправились либо завершились.
func (r *Repository) RejectPendingForDepartedTrips(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE matches
		SET status = $1, updated_at = NOW()
		WHERE status = $2
		  AND trip_id IN (
			SELECT id FROM trips
			WHERE (departure_at IS NOT NULL AND departure_at <= $3)
			   OR status IN ($4, $5)
		  )`

	tag, err := r.querier.Exec(ctx, query,
		entities.MatchRejected.String(),
		entities.MatchPending.String(),
		now,
		entities.TripCompleted.String(),
		entities.TripCancelled.String(),
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected match repository rejectpendingfordepartedtrips error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanTargets(m *MatchDB) []interface{} {
	return []interface{}{
		&m.ID,
		&m.ParcelID,
		&m.TripID,
		&m.Score,
		&m.Status,
		&m.PaymentStatus,
		&m.DeliveryFee,
		&m.PlatformFee,
		&m.TotalAmount,
		&m.Currency,
		&m.PaymentIntentRef,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
}
