// Package activity считает недавние создания посылок и поездок для
// скользящего окна лимитера. Отдельная таблица учёта не нужна: источником
// служат сами таблицы parcels и trips.
package activity

import (
	"context"
	"fmt"
	"time"

	"parcelmatch/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CountCreatedSince(ctx context.Context, kind entities.CreationKind, ownerID int64, since time.Time) (int64, error) {
	var query string
	switch kind {
	case entities.CreationParcel:
		query = `SELECT COUNT(*) FROM parcels WHERE sender_id = $1 AND created_at >= $2`
	case entities.CreationTrip:
		query = `SELECT COUNT(*) FROM trips WHERE courier_id = $1 AND created_at >= $2`
	default:
		return 0, fmt.Errorf("unknown creation kind %q", kind)
	}

	var count int64
	err := r.querier.QueryRow(ctx, query, ownerID, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected activity repository countcreatedsince error: %w", err)
	}

	return count, nil
}
