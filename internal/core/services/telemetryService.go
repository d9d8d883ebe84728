package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

// TelemetryService builds the live-data snapshot and dashboard stats, and
// ingests raw device readings.
type TelemetryService struct {
	bikeRepo     ports.BikeRepository
	sensorRepo   ports.SensorReadingRepository
	settingsRepo ports.SystemSettingsRepository
	statsRepo    ports.StatsRepository
	alertRepo    ports.SecurityAlertRepository
	source       ports.TelemetrySource
	logger       ports.LoggerPort
	validate     *validator.Validate
}

func NewTelemetryService(
	bikeRepo ports.BikeRepository,
	sensorRepo ports.SensorReadingRepository,
	settingsRepo ports.SystemSettingsRepository,
	statsRepo ports.StatsRepository,
	alertRepo ports.SecurityAlertRepository,
	source ports.TelemetrySource,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *TelemetryService {
	return &TelemetryService{
		bikeRepo:     bikeRepo,
		sensorRepo:   sensorRepo,
		settingsRepo: settingsRepo,
		statsRepo:    statsRepo,
		alertRepo:    alertRepo,
		source:       source,
		logger:       logger,
		validate:     validate,
	}
}

// GetLiveData never fails past authentication: every missing source falls
// back field by field to the simulator, and a missing settings row falls
// back to defaults without creating one.
func (s *TelemetryService) GetLiveData(ctx context.Context, userID string) *domain.LiveData {
	live := &domain.LiveData{}

	primaryBike, err := s.bikeRepo.GetPrimaryBike(ctx, userID)
	if err == nil {
		live.CurrentBikeID = &primaryBike.ID
	} else if !errors.Is(err, domain.ErrNotFound) {
		s.logger.Warn("Failed to load primary bike for live data", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
	}

	settings, err := s.settingsRepo.GetSettings(ctx, userID)
	if err != nil {
		settings = domain.DefaultSystemSettings(userID)
	}
	live.CrashDetectionActive = settings.CrashDetectionEnabled
	live.BlindSpotActive = settings.BlindSpotEnabled
	live.TheftProtectionActive = settings.TheftProtectionEnabled
	live.CrashSensitivity = settings.CrashSensitivity
	live.BlindSpotSensitivity = settings.BlindSpotSensitivity
	live.TheftSensitivity = settings.TheftSensitivity

	var reading *domain.SensorReading
	if r, err := s.sensorRepo.GetLatestByUserID(ctx, userID); err == nil {
		reading = r
	}

	live.Speed = fallbackFloat(readingField(reading, func(r *domain.SensorReading) *float64 { return r.Speed }), s.source.Speed)
	simLat, simLng := s.source.Coordinates()
	live.Latitude = fallbackFloat(readingField(reading, func(r *domain.SensorReading) *float64 { return r.Latitude }), func() float64 { return simLat })
	live.Longitude = fallbackFloat(readingField(reading, func(r *domain.SensorReading) *float64 { return r.Longitude }), func() float64 { return simLng })

	gx, gy, gz := s.source.Gyroscope()
	live.GyroscopeX = fallbackFloat(readingField(reading, func(r *domain.SensorReading) *float64 { return r.GyroscopeX }), func() float64 { return gx })
	live.GyroscopeY = fallbackFloat(readingField(reading, func(r *domain.SensorReading) *float64 { return r.GyroscopeY }), func() float64 { return gy })
	live.GyroscopeZ = fallbackFloat(readingField(reading, func(r *domain.SensorReading) *float64 { return r.GyroscopeZ }), func() float64 { return gz })

	ax, ay, az := s.source.Accelerometer()
	live.AccelerometerX = fallbackFloat(readingField(reading, func(r *domain.SensorReading) *float64 { return r.AccelerometerX }), func() float64 { return ax })
	live.AccelerometerY = fallbackFloat(readingField(reading, func(r *domain.SensorReading) *float64 { return r.AccelerometerY }), func() float64 { return ay })
	live.AccelerometerZ = fallbackFloat(readingField(reading, func(r *domain.SensorReading) *float64 { return r.AccelerometerZ }), func() float64 { return az })

	live.GPSAccuracy = fallbackFloat(readingField(reading, func(r *domain.SensorReading) *float64 { return r.GPSAccuracy }), s.source.GPSAccuracy)

	// Online/offline is always simulated; there is no device heartbeat.
	live.DeviceStatus = s.source.DeviceStatus()

	if reading != nil {
		live.LastGPSUpdate = reading.CreatedAt.Format(time.RFC3339)
	} else {
		live.LastGPSUpdate = time.Now().UTC().Format(time.RFC3339)
	}

	return live
}

func (s *TelemetryService) GetDashboardStats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	bikes, err := s.statsRepo.CountBikes(ctx, userID)
	if err != nil {
		return nil, err
	}
	activeAlerts, err := s.alertRepo.CountUnresolved(ctx, userID)
	if err != nil {
		return nil, err
	}
	theftReports, err := s.statsRepo.CountTheftReports(ctx, userID)
	if err != nil {
		return nil, err
	}
	rides, distance, minutes, avgSpeed, err := s.statsRepo.RideStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{
		TotalRides:    rides,
		TotalDistance: distance,
		TotalTime:     minutes,
		AvgSpeed:      avgSpeed,
		BikesCount:    bikes,
		ActiveAlerts:  activeAlerts,
		TheftReports:  theftReports,
	}, nil
}

func (s *TelemetryService) IngestReading(ctx context.Context, reading *domain.SensorReading) (*domain.SensorReading, error) {
	if err := s.validate.Struct(reading); err != nil {
		s.logger.Error("Sensor reading validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	created, err := s.sensorRepo.CreateReading(ctx, reading)
	if err != nil {
		s.logger.Error("Failed to store sensor reading", map[string]interface{}{
			"error":     err.Error(),
			"device_id": reading.DeviceID,
		})
		return nil, err
	}

	return created, nil
}

func readingField(reading *domain.SensorReading, get func(*domain.SensorReading) *float64) *float64 {
	if reading == nil {
		return nil
	}
	return get(reading)
}

func fallbackFloat(stored *float64, simulate func() float64) float64 {
	if stored != nil {
		return *stored
	}
	return simulate()
}
