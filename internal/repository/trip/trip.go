package trip

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcelmatch/internal/entities"
	"parcelmatch/internal/service/trip"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const tripColumns = `id, courier_id, origin_address, destination_address,
		origin_lat, origin_lon, destination_lat, destination_lon,
		departure_at, capacity, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, tripModifyEntity entities.TripModify) (*entities.Trip, error) {
	tripModifyModel := FromDomainModify(&tripModifyEntity)
	query := `INSERT INTO trips (courier_id, origin_address, destination_address,
			origin_lat, origin_lon, destination_lat, destination_lon,
			departure_at, capacity, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + tripColumns

	var tripModel TripDB
	err := r.querier.QueryRow(
		ctx,
		query,
		tripModifyModel.CourierID,
		tripModifyModel.OriginAddress,
		tripModifyModel.DestinationAddress,
		tripModifyModel.OriginLat,
		tripModifyModel.OriginLon,
		tripModifyModel.DestinationLat,
		tripModifyModel.DestinationLon,
		tripModifyModel.DepartureAt,
		tripModifyModel.Capacity,
		tripModifyModel.Status,
	).Scan(scanTargets(&tripModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository create error: %w", err)
	}

	return ToDomain(&tripModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Trip, error) {
	query := `SELECT ` + tripColumns + `
		FROM trips
		WHERE id = $1`

	var tripModel TripDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&tripModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, trip.ErrTripNotFound
		}

		return nil, fmt.Errorf("unexpected trip repository getbyid error: %w", err)
	}

	return ToDomain(&tripModel), nil
}

func (r *Repository) ListMatchable(ctx context.Context) ([]entities.Trip, error) {
	builder := qb.
		Select(tripColumns).
		From("trips").
		Where(sq.Eq{"status": []string{
			entities.TripScheduled.String(),
			entities.TripInProgress.String(),
		}}).
		OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository listmatchable error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected trip repository listmatchable error: %w", err)
	}
	defer rows.Close()

	tripModels := make([]TripDB, 0, 8)
	for rows.Next() {
		var tripModel TripDB
		if err := rows.Scan(scanTargets(&tripModel)...); err != nil {
			return nil, fmt.Errorf("unexpected trip repository listmatchable error: %w", err)
		}
		tripModels = append(tripModels, tripModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected trip repository listmatchable error: %w", err)
	}

	return ToDomainList(tripModels), nil
}

func (r *Repository) UpdateStatusIf(ctx context.Context, id int64, from, to entities.TripStatusType) (bool, error) {
	query := `UPDATE trips
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`

	tag, err := r.querier.Exec(ctx, query, to.String(), id, from.String())
	if err != nil {
		return false, fmt.Errorf("unexpected trip repository updatestatusif error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanTargets(t *TripDB) []interface{} {
	return []interface{}{
		&t.ID,
		&t.CourierID,
		&t.OriginAddress,
		&t.DestinationAddress,
		&t.OriginLat,
		&t.OriginLon,
		&t.DestinationLat,
		&t.DestinationLon,
		&t.DepartureAt,
		&t.Capacity,
		&t.Status,
		&t.CreatedAt,
		&t.UpdatedAt,
	}
}
