package domain

import (
	"time"
)

// SystemSettings holds one row per user, created lazily on first read.
type SystemSettings struct {
	UserID                 string    `json:"user_id"`
	CrashDetectionEnabled  bool      `json:"crash_detection_enabled"`
	BlindSpotEnabled       bool      `json:"blind_spot_enabled"`
	TheftProtectionEnabled bool      `json:"theft_protection_enabled"`
	CrashSensitivity       int       `json:"crash_sensitivity" validate:"min=0,max=100"`
	BlindSpotSensitivity   int       `json:"blind_spot_sensitivity" validate:"min=0,max=100"`
	TheftSensitivity       int       `json:"theft_sensitivity" validate:"min=0,max=100"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

func DefaultSystemSettings(userID string) *SystemSettings {
	return &SystemSettings{
		UserID:                 userID,
		CrashDetectionEnabled:  true,
		BlindSpotEnabled:       true,
		TheftProtectionEnabled: true,
		CrashSensitivity:       50,
		BlindSpotSensitivity:   50,
		TheftSensitivity:       50,
	}
}

type SystemSettingsPatch struct {
	CrashDetectionEnabled  *bool `json:"crash_detection_enabled"`
	BlindSpotEnabled       *bool `json:"blind_spot_enabled"`
	TheftProtectionEnabled *bool `json:"theft_protection_enabled"`
	CrashSensitivity       *int  `json:"crash_sensitivity" validate:"omitempty,min=0,max=100"`
	BlindSpotSensitivity   *int  `json:"blind_spot_sensitivity" validate:"omitempty,min=0,max=100"`
	TheftSensitivity       *int  `json:"theft_sensitivity" validate:"omitempty,min=0,max=100"`
}

func (p *SystemSettingsPatch) Empty() bool {
	return p.CrashDetectionEnabled == nil && p.BlindSpotEnabled == nil &&
		p.TheftProtectionEnabled == nil && p.CrashSensitivity == nil &&
		p.BlindSpotSensitivity == nil && p.TheftSensitivity == nil
}
