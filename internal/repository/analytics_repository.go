package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/KEYAJANI/demiland-sub000/internal/models"
)

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) Insert(ctx context.Context, event models.AnalyticsEvent) error {
	const query = `
		INSERT INTO analytics_events (id, event_type, payload, user_id, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	_, err := r.pool.Exec(ctx, query,
		event.ID,
		event.EventType,
		event.Payload,
		event.UserID,
		event.IPAddress,
		event.UserAgent,
	)
	return err
}

func (r *AnalyticsRepository) List(ctx context.Context, limit int, offset int) ([]models.AnalyticsEvent, error) {
	const query = `
		SELECT id, event_type, payload, user_id, ip_address, user_agent, created_at
		FROM analytics_events
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.AnalyticsEvent, 0)
	for rows.Next() {
		var event models.AnalyticsEvent
		if err := rows.Scan(
			&event.ID,
			&event.EventType,
			&event.Payload,
			&event.UserID,
			&event.IPAddress,
			&event.UserAgent,
			&event.CreatedAt,
		); err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}
