package services

import (
	"context"
	"testing"

	"github.com/bikeguard/backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsService_GetSettings_LazyCreate(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, nopLogger{}, NewValidator())
	ctx := context.Background()

	settings, err := svc.GetSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", settings.UserID)
	assert.True(t, settings.CrashDetectionEnabled)
	assert.Equal(t, 50, settings.CrashSensitivity)

	// A second read serves the stored row, not a fresh default.
	repo.rows["user-1"].CrashSensitivity = 75
	again, err := svc.GetSettings(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 75, again.CrashSensitivity)
}

func TestSettingsService_UpdateSettings_CreatesRowFirst(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo(), nopLogger{}, NewValidator())
	ctx := context.Background()

	updated, err := svc.UpdateSettings(ctx, "user-1", &domain.SystemSettingsPatch{
		TheftSensitivity: intPtr(90),
	})
	require.NoError(t, err)
	assert.Equal(t, 90, updated.TheftSensitivity)
	assert.True(t, updated.TheftProtectionEnabled)
}

func TestSettingsService_UpdateSettings_EmptyPatchReturnsCurrent(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo(), nopLogger{}, NewValidator())
	ctx := context.Background()

	_, err := svc.UpdateSettings(ctx, "user-1", &domain.SystemSettingsPatch{
		BlindSpotEnabled: boolPtr(false),
	})
	require.NoError(t, err)

	current, err := svc.UpdateSettings(ctx, "user-1", &domain.SystemSettingsPatch{})
	require.NoError(t, err)
	assert.False(t, current.BlindSpotEnabled)
	assert.True(t, current.CrashDetectionEnabled)
}

func TestSettingsService_UpdateSettings_SensitivityBounds(t *testing.T) {
	svc := NewSettingsService(newFakeSettingsRepo(), nopLogger{}, NewValidator())

	_, err := svc.UpdateSettings(context.Background(), "user-1", &domain.SystemSettingsPatch{
		CrashSensitivity: intPtr(150),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestProfileService_GetProfile_SeedsFromIdentity(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nopLogger{})
	ctx := context.Background()

	profile, err := svc.GetProfile(ctx, &domain.Identity{
		ID:          "user-1",
		Email:       "ada@example.com",
		DisplayName: "Ada Marie Lovelace",
		Picture:     "https://cdn.example.com/ada.png",
	})
	require.NoError(t, err)
	require.NotNil(t, profile.Username)
	assert.Equal(t, "ada_marie_lovelace", *profile.Username)
	require.NotNil(t, profile.FirstName)
	assert.Equal(t, "Ada", *profile.FirstName)
	require.NotNil(t, profile.LastName)
	assert.Equal(t, "Lovelace", *profile.LastName)
	require.NotNil(t, profile.AvatarURL)
	assert.Equal(t, "https://cdn.example.com/ada.png", *profile.AvatarURL)
}

func TestProfileService_GetProfile_SingleWordName(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nopLogger{})

	profile, err := svc.GetProfile(context.Background(), &domain.Identity{
		ID:          "user-2",
		DisplayName: "Cher",
	})
	require.NoError(t, err)
	require.NotNil(t, profile.FirstName)
	assert.Equal(t, "Cher", *profile.FirstName)
	assert.Nil(t, profile.LastName)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	svc := NewProfileService(newFakeProfileRepo(), nopLogger{})
	ctx := context.Background()
	identity := &domain.Identity{ID: "user-1", DisplayName: "Ada Lovelace"}

	_, err := svc.GetProfile(ctx, identity)
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(ctx, "user-1", &domain.ProfilePatch{
		BikeModel: strPtr("Allez Sprint"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.BikeModel)
	assert.Equal(t, "Allez Sprint", *updated.BikeModel)

	_, err = svc.UpdateProfile(ctx, "user-1", &domain.ProfilePatch{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
