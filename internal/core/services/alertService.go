package services

import (
	"context"
	"fmt"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

const alertListLimit = 100

// AlertService handles the first-generation device alerts.
type AlertService struct {
	alertRepo   ports.AlertRepository
	contactRepo ports.EmergencyContactRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
}

func NewAlertService(
	alertRepo ports.AlertRepository,
	contactRepo ports.EmergencyContactRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *AlertService {
	return &AlertService{
		alertRepo:   alertRepo,
		contactRepo: contactRepo,
		logger:      logger,
		validate:    validate,
	}
}

func (s *AlertService) CreateAlert(ctx context.Context, alert *domain.Alert) (*domain.Alert, error) {
	if err := s.validate.Struct(alert); err != nil {
		s.logger.Error("Alert validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	created, err := s.alertRepo.CreateAlert(ctx, alert)
	if err != nil {
		s.logger.Error("Failed to create alert", map[string]interface{}{
			"error":     err.Error(),
			"device_id": alert.DeviceID,
		})
		return nil, err
	}

	// Notification delivery is not implemented; contacts are only counted
	// so the pending fan-out is visible in the logs.
	contacts, err := s.contactRepo.GetContactsByUserID(ctx, alert.UserID)
	if err != nil {
		s.logger.Warn("Failed to load emergency contacts for alert", map[string]interface{}{
			"error":    err.Error(),
			"alert_id": created.ID,
		})
	} else {
		s.logger.Info("Alert created, notifications pending", map[string]interface{}{
			"alert_id":      created.ID,
			"user_id":       created.UserID,
			"contact_count": len(contacts),
		})
	}

	return created, nil
}

func (s *AlertService) GetAlertsByUserID(ctx context.Context, userID string) ([]*domain.Alert, error) {
	alerts, err := s.alertRepo.GetAlertsByUserID(ctx, userID, alertListLimit)
	if err != nil {
		s.logger.Error("Failed to get alerts", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	if alerts == nil {
		alerts = []*domain.Alert{}
	}
	return alerts, nil
}

func (s *AlertService) ResolveAlert(ctx context.Context, userID string, alertID int64) (*domain.Alert, error) {
	alert, err := s.alertRepo.ResolveAlert(ctx, userID, alertID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Alert resolved", map[string]interface{}{
		"alert_id": alertID,
		"user_id":  userID,
	})

	return alert, nil
}
