package postgres

import (
	"context"
	"database/sql"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{
		db,
	}
}

func (r *StatsRepository) CountBikes(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM bikes WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *StatsRepository) CountTheftReports(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM theft_reports WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *StatsRepository) RideStats(ctx context.Context, userID string) (int64, float64, float64, float64, error) {
	query := `SELECT
		COUNT(*),
		COALESCE(SUM(distance_km), 0),
		COALESCE(SUM(duration_minutes), 0),
		COALESCE(AVG(max_speed), 0)
	FROM tracking_sessions
	WHERE user_id = $1 AND session_end IS NOT NULL`

	var rides int64
	var distance, minutes, avgSpeed float64
	err := r.db.QueryRowContext(ctx, query, userID).Scan(&rides, &distance, &minutes, &avgSpeed)
	if err != nil && err != sql.ErrNoRows {
		return 0, 0, 0, 0, err
	}
	return rides, distance, minutes, avgSpeed, nil
}
