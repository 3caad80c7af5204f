package parcel

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"parcelmatch/internal/entities"
	"parcelmatch/internal/service/parcel"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const parcelColumns = `id, sender_id, pickup_address, delivery_address,
		pickup_lat, pickup_lon, dropoff_lat, dropoff_lon,
		weight_kg, status, trip_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, parcelModifyEntity entities.ParcelModify) (*entities.Parcel, error) {
	parcelModifyModel := FromDomainModify(&parcelModifyEntity)
	query := `INSERT INTO parcels (sender_id, pickup_address, delivery_address,
			pickup_lat, pickup_lon, dropoff_lat, dropoff_lon, weight_kg, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + parcelColumns

	var parcelModel ParcelDB
	err := r.querier.QueryRow(
		ctx,
		query,
		parcelModifyModel.SenderID,
		parcelModifyModel.PickupAddress,
		parcelModifyModel.DeliveryAddress,
		parcelModifyModel.PickupLat,
		parcelModifyModel.PickupLon,
		parcelModifyModel.DropoffLat,
		parcelModifyModel.DropoffLon,
		parcelModifyModel.WeightKg,
		parcelModifyModel.Status,
	).Scan(scanTargets(&parcelModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository create error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Parcel, error) {
	query := `SELECT ` + parcelColumns + `
		FROM parcels
		WHERE id = $1`

	var parcelModel ParcelDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&parcelModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, parcel.ErrParcelNotFound
		}

		return nil, fmt.Errorf("unexpected parcel repository getbyid error: %w", err)
	}

	return ToDomain(&parcelModel), nil
}

func (r *Repository) ListBySender(ctx context.Context, senderID int64) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns).
		From("parcels").
		Where(sq.Eq{"sender_id": senderID}).
		OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository listbysender error: %w", err)
	}

	return r.list(ctx, query, args...)
}

func (r *Repository) ListPending(ctx context.Context) ([]entities.Parcel, error) {
	builder := qb.
		Select(parcelColumns).
		From("parcels").
		Where(sq.Eq{"status": entities.ParcelPending.String()}).
		OrderBy("id")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository listpending error: %w", err)
	}

	return r.list(ctx, query, args...)
}

// UpdateStatusIf выполняет условный переход статуса. Возвращает false без
// ошибки, если строка уже не в статусе from.
func (r *Repository) UpdateStatusIf(ctx context.Context, id int64, from, to entities.ParcelStatusType) (bool, error) {
	query := `UPDATE parcels
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3`

	tag, err := r.querier.Exec(ctx, query, to.String(), id, from.String())
	if err != nil {
		return false, fmt.Errorf("unexpected parcel repository updatestatusif error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// MarkMatchedIf переводит pending посылку в matched и привязывает поездку.
// Условие по статусу делает принятие единственного кандидата атомарным.
func (r *Repository) MarkMatchedIf(ctx context.Context, parcelID, tripID int64) (bool, error) {
	query := `UPDATE parcels
		SET status = $1, trip_id = $2, updated_at = NOW()
		WHERE id = $3 AND status = $4`

	tag, err := r.querier.Exec(ctx, query,
		entities.ParcelMatched.String(), tripID, parcelID, entities.ParcelPending.String())
	if err != nil {
		return false, fmt.Errorf("unexpected parcel repository markmatchedif error: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.Parcel, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}
	defer rows.Close()

	parcelModels := make([]ParcelDB, 0, 8)
	for rows.Next() {
		var parcelModel ParcelDB
		if err := rows.Scan(scanTargets(&parcelModel)...); err != nil {
			return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
		}
		parcelModels = append(parcelModels, parcelModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected parcel repository list error: %w", err)
	}

	return ToDomainList(parcelModels), nil
}

func scanTargets(p *ParcelDB) []interface{} {
	return []interface{}{
		&p.ID,
		&p.SenderID,
		&p.PickupAddress,
		&p.DeliveryAddress,
		&p.PickupLat,
		&p.PickupLon,
		&p.DropoffLat,
		&p.DropoffLon,
		&p.WeightKg,
		&p.Status,
		&p.TripID,
		&p.CreatedAt,
		&p.UpdatedAt,
	}
}
