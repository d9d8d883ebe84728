package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"
)

type ProfileService struct {
	profileRepo ports.ProfileRepository
	logger      ports.LoggerPort
}

func NewProfileService(
	profileRepo ports.ProfileRepository,
	logger ports.LoggerPort,
) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// GetProfile lazily creates the row from identity data on first read.
func (s *ProfileService) GetProfile(ctx context.Context, identity *domain.Identity) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetProfile(ctx, identity.ID)
	if errors.Is(err, domain.ErrNotFound) {
		profile, err = s.profileRepo.CreateProfile(ctx, seedProfile(identity))
		if err != nil {
			s.logger.Error("Failed to create profile", map[string]interface{}{
				"error":   err.Error(),
				"user_id": identity.ID,
			})
			return nil, err
		}
		s.logger.Info("Profile created from identity", map[string]interface{}{
			"user_id": identity.ID,
		})
		return profile, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID string, patch *domain.ProfilePatch) (*domain.Profile, error) {
	if patch.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}

	profile, err := s.profileRepo.UpdateProfile(ctx, userID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Profile updated", map[string]interface{}{
		"user_id": userID,
	})

	return profile, nil
}

func seedProfile(identity *domain.Identity) *domain.Profile {
	profile := &domain.Profile{ID: identity.ID}

	if identity.DisplayName != "" {
		username := strings.ToLower(strings.Join(strings.Fields(identity.DisplayName), "_"))
		profile.Username = &username

		parts := strings.Fields(identity.DisplayName)
		first := parts[0]
		profile.FirstName = &first
		if len(parts) > 1 {
			last := parts[len(parts)-1]
			profile.LastName = &last
		}
	}
	if identity.Picture != "" {
		avatar := identity.Picture
		profile.AvatarURL = &avatar
	}

	return profile
}
