package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type SettingsService struct {
	settingsRepo ports.SystemSettingsRepository
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewSettingsService(
	settingsRepo ports.SystemSettingsRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
		logger:       logger,
		validate:     validate,
	}
}

// GetSettings lazily creates the row with defaults on first read.
func (s *SettingsService) GetSettings(ctx context.Context, userID string) (*domain.SystemSettings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		settings, err = s.settingsRepo.CreateSettings(ctx, domain.DefaultSystemSettings(userID))
		if err != nil {
			s.logger.Error("Failed to create default settings", map[string]interface{}{
				"error":   err.Error(),
				"user_id": userID,
			})
			return nil, err
		}
		s.logger.Info("Default system settings created", map[string]interface{}{
			"user_id": userID,
		})
		return settings, nil
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) UpdateSettings(ctx context.Context, userID string, patch *domain.SystemSettingsPatch) (*domain.SystemSettings, error) {
	if err := s.validate.Struct(patch); err != nil {
		s.logger.Error("Settings patch validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// A row may not exist yet; create it first so the patch always lands.
	if _, err := s.GetSettings(ctx, userID); err != nil {
		return nil, err
	}

	if patch.Empty() {
		return s.settingsRepo.GetSettings(ctx, userID)
	}

	settings, err := s.settingsRepo.UpdateSettings(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("System settings updated", map[string]interface{}{
		"user_id": userID,
	})

	return settings, nil
}
