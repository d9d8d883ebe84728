package ports

import (
	"context"

	"github.com/bikeguard/backend/internal/core/domain"
)

// All lookups are scoped by owner; a bike owned by someone else behaves
// exactly like a missing one.
type BikeRepository interface {
	CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error)
	GetBikeByID(ctx context.Context, userID string, bikeID int64) (*domain.Bike, error)
	GetBikesByUserID(ctx context.Context, userID string) ([]*domain.Bike, error)
	GetPrimaryBike(ctx context.Context, userID string) (*domain.Bike, error)
	UpdateBike(ctx context.Context, userID string, bikeID int64, patch *domain.BikePatch) (*domain.Bike, error)
	SetStolen(ctx context.Context, userID string, bikeID int64, stolen bool) (*domain.Bike, error)
	DeleteBike(ctx context.Context, userID string, bikeID int64) error
}
