package ports

import (
	"context"

	"github.com/bikeguard/backend/internal/core/domain"
)

type SystemSettingsRepository interface {
	// GetSettings returns domain.ErrNotFound when no row exists yet;
	// lazy creation is the service's job.
	GetSettings(ctx context.Context, userID string) (*domain.SystemSettings, error)
	CreateSettings(ctx context.Context, settings *domain.SystemSettings) (*domain.SystemSettings, error)
	UpdateSettings(ctx context.Context, userID string, patch *domain.SystemSettingsPatch) (*domain.SystemSettings, error)
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID string, patch *domain.ProfilePatch) (*domain.Profile, error)
}
