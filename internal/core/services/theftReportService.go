package services

import (
	"context"
	"fmt"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type TheftReportService struct {
	reportRepo ports.TheftReportRepository
	bikeRepo   ports.BikeRepository
	logger     ports.LoggerPort
	validate   *validator.Validate
}

func NewTheftReportService(
	reportRepo ports.TheftReportRepository,
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *TheftReportService {
	return &TheftReportService{
		reportRepo: reportRepo,
		bikeRepo:   bikeRepo,
		logger:     logger,
		validate:   validate,
	}
}

func (s *TheftReportService) CreateReport(ctx context.Context, report *domain.TheftReport) (*domain.TheftReport, error) {
	if err := s.validate.Struct(report); err != nil {
		s.logger.Error("Theft report validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// The referenced bike must belong to the reporter. A bike under another
	// owner is indistinguishable from a missing one.
	if _, err := s.bikeRepo.GetBikeByID(ctx, report.UserID, report.BikeID); err != nil {
		return nil, err
	}

	created, err := s.reportRepo.CreateReport(ctx, report)
	if err != nil {
		s.logger.Error("Failed to create theft report", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": report.BikeID,
			"user_id": report.UserID,
		})
		return nil, err
	}

	s.logger.Info("Theft report created", map[string]interface{}{
		"report_id": created.ID,
		"bike_id":   created.BikeID,
	})

	return created, nil
}

func (s *TheftReportService) GetReportsByUserID(ctx context.Context, userID string) ([]*domain.TheftReport, error) {
	reports, err := s.reportRepo.GetReportsByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get theft reports", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	if reports == nil {
		reports = []*domain.TheftReport{}
	}
	return reports, nil
}

// UpdateStatus takes the status as a free-form string; callers are expected
// to send one of the known values but the boundary does not enforce it.
func (s *TheftReportService) UpdateStatus(ctx context.Context, userID string, reportID int64, status string) (*domain.TheftReport, error) {
	if status == "" {
		return nil, fmt.Errorf("%w: status is required", domain.ErrValidation)
	}

	report, err := s.reportRepo.UpdateStatus(ctx, userID, reportID, status)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Theft report status updated", map[string]interface{}{
		"report_id": reportID,
		"status":    status,
	})

	return report, nil
}
