package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type BikeService struct {
	bikeRepo ports.BikeRepository
	logger   ports.LoggerPort
	validate *validator.Validate
	cache    ports.CachePort
}

func NewBikeService(
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *BikeService {
	return &BikeService{
		bikeRepo: bikeRepo,
		logger:   logger,
		validate: validate,
		cache:    cache,
	}
}

func bikeCacheKey(userID string, bikeID int64) string {
	return fmt.Sprintf("bike:%s:%d", userID, bikeID)
}

func (s *BikeService) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	if err := s.validate.Struct(bike); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	createdBike, err := s.bikeRepo.CreateBike(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to create bike", map[string]interface{}{
			"error":   err.Error(),
			"user_id": bike.UserID,
		})
		return nil, err
	}

	s.logger.Info("Bike created successfully", map[string]interface{}{
		"bike_id": createdBike.ID,
		"user_id": createdBike.UserID,
	})

	return createdBike, nil
}

func (s *BikeService) GetBikeByID(ctx context.Context, userID string, bikeID int64) (*domain.Bike, error) {
	cacheKey := bikeCacheKey(userID, bikeID)
	cachedData, err := s.cache.Get(cacheKey)
	if err == nil {
		var cachedBike domain.Bike
		if err := json.Unmarshal(cachedData, &cachedBike); err == nil {
			return &cachedBike, nil
		}
	}

	bike, err := s.bikeRepo.GetBikeByID(ctx, userID, bikeID)
	if err != nil {
		return nil, err
	}

	bikeData, err := json.Marshal(bike)
	if err == nil {
		if err := s.cache.Set(cacheKey, bikeData, 15*time.Minute); err != nil {
			s.logger.Warn("Failed to cache bike", map[string]interface{}{
				"error":   err.Error(),
				"bike_id": bikeID,
			})
		}
	}

	return bike, nil
}

func (s *BikeService) GetBikesByUserID(ctx context.Context, userID string) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.GetBikesByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get bikes", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	if bikes == nil {
		// An empty list serializes as [], not null.
		bikes = []*domain.Bike{}
	}
	return bikes, nil
}

func (s *BikeService) UpdateBike(ctx context.Context, userID string, bikeID int64, patch *domain.BikePatch) (*domain.Bike, error) {
	if err := s.validate.Struct(patch); err != nil {
		s.logger.Error("Bike patch validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}

	updatedBike, err := s.bikeRepo.UpdateBike(ctx, userID, bikeID, patch)
	if err != nil {
		return nil, err
	}

	s.invalidate(userID, bikeID)

	s.logger.Info("Bike updated successfully", map[string]interface{}{
		"bike_id": bikeID,
	})

	return updatedBike, nil
}

// SetStolen flips the flag and nothing else. Theft reports and alerts are
// separate caller-orchestrated actions.
func (s *BikeService) SetStolen(ctx context.Context, userID string, bikeID int64, stolen bool) (*domain.Bike, error) {
	bike, err := s.bikeRepo.SetStolen(ctx, userID, bikeID, stolen)
	if err != nil {
		return nil, err
	}

	s.invalidate(userID, bikeID)

	s.logger.Info("Bike stolen flag updated", map[string]interface{}{
		"bike_id":   bikeID,
		"is_stolen": stolen,
	})

	return bike, nil
}

func (s *BikeService) DeleteBike(ctx context.Context, userID string, bikeID int64) error {
	if err := s.bikeRepo.DeleteBike(ctx, userID, bikeID); err != nil {
		return err
	}

	s.invalidate(userID, bikeID)

	s.logger.Info("Bike deleted successfully", map[string]interface{}{
		"bike_id": bikeID,
	})

	return nil
}

func (s *BikeService) invalidate(userID string, bikeID int64) {
	if err := s.cache.Delete(bikeCacheKey(userID, bikeID)); err != nil {
		s.logger.Warn("Failed to invalidate bike cache", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": bikeID,
		})
	}
}
