package services

import (
	"context"
	"fmt"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type SecurityAlertService struct {
	alertRepo ports.SecurityAlertRepository
	logger    ports.LoggerPort
	validate  *validator.Validate
}

func NewSecurityAlertService(
	alertRepo ports.SecurityAlertRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *SecurityAlertService {
	return &SecurityAlertService{
		alertRepo: alertRepo,
		logger:    logger,
		validate:  validate,
	}
}

func (s *SecurityAlertService) CreateAlert(ctx context.Context, alert *domain.SecurityAlert) (*domain.SecurityAlert, error) {
	if alert.Severity == "" {
		alert.Severity = domain.SeverityMedium
	}

	if err := s.validate.Struct(alert); err != nil {
		s.logger.Error("Security alert validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	created, err := s.alertRepo.CreateAlert(ctx, alert)
	if err != nil {
		s.logger.Error("Failed to create security alert", map[string]interface{}{
			"error":     err.Error(),
			"device_id": alert.DeviceID,
		})
		return nil, err
	}

	s.logger.Info("Security alert created", map[string]interface{}{
		"alert_id":   created.ID,
		"alert_type": created.AlertType,
		"severity":   created.Severity,
	})

	return created, nil
}

func (s *SecurityAlertService) GetAlertsByUserID(ctx context.Context, userID string) ([]*domain.SecurityAlert, error) {
	alerts, err := s.alertRepo.GetAlertsByUserID(ctx, userID, alertListLimit)
	if err != nil {
		s.logger.Error("Failed to get security alerts", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	if alerts == nil {
		alerts = []*domain.SecurityAlert{}
	}
	return alerts, nil
}

// ResolveAlert may be called on an already-resolved alert; the resolver and
// timestamp are simply re-stamped.
func (s *SecurityAlertService) ResolveAlert(ctx context.Context, userID string, alertID int64, resolverID string) (*domain.SecurityAlert, error) {
	alert, err := s.alertRepo.ResolveAlert(ctx, userID, alertID, resolverID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Security alert resolved", map[string]interface{}{
		"alert_id":    alertID,
		"resolved_by": resolverID,
	})

	return alert, nil
}
