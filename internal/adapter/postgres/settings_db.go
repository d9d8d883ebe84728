package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bikeguard/backend/internal/core/domain"
)

type SystemSettingsRepository struct {
	db *sql.DB
}

func NewSystemSettingsRepository(db *sql.DB) *SystemSettingsRepository {
	return &SystemSettingsRepository{
		db,
	}
}

const settingsColumns = `user_id, crash_detection_enabled, blind_spot_enabled,
	theft_protection_enabled, crash_sensitivity, blind_spot_sensitivity, theft_sensitivity,
	created_at, updated_at`

func scanSettings(row interface{ Scan(...interface{}) error }) (*domain.SystemSettings, error) {
	s := &domain.SystemSettings{}
	err := row.Scan(
		&s.UserID,
		&s.CrashDetectionEnabled,
		&s.BlindSpotEnabled,
		&s.TheftProtectionEnabled,
		&s.CrashSensitivity,
		&s.BlindSpotSensitivity,
		&s.TheftSensitivity,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SystemSettingsRepository) GetSettings(ctx context.Context, userID string) (*domain.SystemSettings, error) {
	query := `SELECT ` + settingsColumns + ` FROM system_settings WHERE user_id = $1`

	settings, err := scanSettings(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *SystemSettingsRepository) CreateSettings(ctx context.Context, settings *domain.SystemSettings) (*domain.SystemSettings, error) {
	query := `INSERT INTO system_settings (user_id, crash_detection_enabled, blind_spot_enabled,
		theft_protection_enabled, crash_sensitivity, blind_spot_sensitivity, theft_sensitivity)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	RETURNING ` + settingsColumns

	row := r.db.QueryRowContext(ctx, query,
		settings.UserID,
		settings.CrashDetectionEnabled,
		settings.BlindSpotEnabled,
		settings.TheftProtectionEnabled,
		settings.CrashSensitivity,
		settings.BlindSpotSensitivity,
		settings.TheftSensitivity,
	)

	return scanSettings(row)
}

func (r *SystemSettingsRepository) UpdateSettings(ctx context.Context, userID string, patch *domain.SystemSettingsPatch) (*domain.SystemSettings, error) {
	set, args := newSetClause()
	if patch.CrashDetectionEnabled != nil {
		set.add("crash_detection_enabled", *patch.CrashDetectionEnabled, &args)
	}
	if patch.BlindSpotEnabled != nil {
		set.add("blind_spot_enabled", *patch.BlindSpotEnabled, &args)
	}
	if patch.TheftProtectionEnabled != nil {
		set.add("theft_protection_enabled", *patch.TheftProtectionEnabled, &args)
	}
	if patch.CrashSensitivity != nil {
		set.add("crash_sensitivity", *patch.CrashSensitivity, &args)
	}
	if patch.BlindSpotSensitivity != nil {
		set.add("blind_spot_sensitivity", *patch.BlindSpotSensitivity, &args)
	}
	if patch.TheftSensitivity != nil {
		set.add("theft_sensitivity", *patch.TheftSensitivity, &args)
	}
	if set.empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}

	query := fmt.Sprintf(`UPDATE system_settings SET %s, updated_at = NOW()
		WHERE user_id = $%d RETURNING `+settingsColumns,
		set.sql(), len(args)+1)
	args = append(args, userID)

	settings, err := scanSettings(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return settings, nil
}
