package ports

import (
	"context"

	"github.com/bikeguard/backend/internal/core/domain"
)

type SensorReadingRepository interface {
	CreateReading(ctx context.Context, reading *domain.SensorReading) (*domain.SensorReading, error)
	GetLatestByUserID(ctx context.Context, userID string) (*domain.SensorReading, error)
}

type StatsRepository interface {
	CountBikes(ctx context.Context, userID string) (int64, error)
	CountTheftReports(ctx context.Context, userID string) (int64, error)
	// RideStats aggregates finished tracking sessions.
	RideStats(ctx context.Context, userID string) (rides int64, distance, minutes, avgSpeed float64, err error)
}
