package services

import (
	"context"
	"fmt"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"

	"github.com/go-playground/validator/v10"
)

type ContactService struct {
	contactRepo ports.EmergencyContactRepository
	logger      ports.LoggerPort
	validate    *validator.Validate
}

func NewContactService(
	contactRepo ports.EmergencyContactRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
		logger:      logger,
		validate:    validate,
	}
}

func (s *ContactService) CreateContact(ctx context.Context, contact *domain.EmergencyContact) (*domain.EmergencyContact, error) {
	if err := s.validate.Struct(contact); err != nil {
		s.logger.Error("Contact validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	created, err := s.contactRepo.CreateContact(ctx, contact)
	if err != nil {
		s.logger.Error("Failed to create contact", map[string]interface{}{
			"error":   err.Error(),
			"user_id": contact.UserID,
		})
		return nil, err
	}

	s.logger.Info("Emergency contact created", map[string]interface{}{
		"contact_id": created.ID,
		"user_id":    created.UserID,
	})

	return created, nil
}

func (s *ContactService) GetContactsByUserID(ctx context.Context, userID string) ([]*domain.EmergencyContact, error) {
	contacts, err := s.contactRepo.GetContactsByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to get contacts", map[string]interface{}{
			"error":   err.Error(),
			"user_id": userID,
		})
		return nil, err
	}
	if contacts == nil {
		contacts = []*domain.EmergencyContact{}
	}
	return contacts, nil
}

func (s *ContactService) UpdateContact(ctx context.Context, userID string, contactID int64, patch *domain.EmergencyContactPatch) (*domain.EmergencyContact, error) {
	if err := s.validate.Struct(patch); err != nil {
		s.logger.Error("Contact patch validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if patch.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}

	contact, err := s.contactRepo.UpdateContact(ctx, userID, contactID, patch)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Emergency contact updated", map[string]interface{}{
		"contact_id": contactID,
	})

	return contact, nil
}

func (s *ContactService) DeleteContact(ctx context.Context, userID string, contactID int64) error {
	if err := s.contactRepo.DeleteContact(ctx, userID, contactID); err != nil {
		return err
	}

	s.logger.Info("Emergency contact deleted", map[string]interface{}{
		"contact_id": contactID,
	})

	return nil
}
