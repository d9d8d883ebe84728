package ports

import (
	"context"

	"github.com/bikeguard/backend/internal/core/domain"
)

type TheftReportRepository interface {
	CreateReport(ctx context.Context, report *domain.TheftReport) (*domain.TheftReport, error)
	GetReportsByUserID(ctx context.Context, userID string) ([]*domain.TheftReport, error)
	// UpdateStatus stamps recovered_at when status is "recovered" and
	// clears it for any other value.
	UpdateStatus(ctx context.Context, userID string, reportID int64, status string) (*domain.TheftReport, error)
}
