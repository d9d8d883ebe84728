package ports

import (
	"context"

	"github.com/bikeguard/backend/internal/core/domain"
)

type AlertRepository interface {
	CreateAlert(ctx context.Context, alert *domain.Alert) (*domain.Alert, error)
	GetAlertsByUserID(ctx context.Context, userID string, limit int) ([]*domain.Alert, error)
	ResolveAlert(ctx context.Context, userID string, alertID int64) (*domain.Alert, error)
}

type SecurityAlertRepository interface {
	CreateAlert(ctx context.Context, alert *domain.SecurityAlert) (*domain.SecurityAlert, error)
	GetAlertsByUserID(ctx context.Context, userID string, limit int) ([]*domain.SecurityAlert, error)
	// ResolveAlert is not idempotency-guarded: resolving again re-stamps
	// resolver and timestamp.
	ResolveAlert(ctx context.Context, userID string, alertID int64, resolverID string) (*domain.SecurityAlert, error)
	CountUnresolved(ctx context.Context, userID string) (int64, error)
}
