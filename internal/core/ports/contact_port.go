package ports

import (
	"context"

	"github.com/bikeguard/backend/internal/core/domain"
)

type EmergencyContactRepository interface {
	CreateContact(ctx context.Context, contact *domain.EmergencyContact) (*domain.EmergencyContact, error)
	GetContactsByUserID(ctx context.Context, userID string) ([]*domain.EmergencyContact, error)
	UpdateContact(ctx context.Context, userID string, contactID int64, patch *domain.EmergencyContactPatch) (*domain.EmergencyContact, error)
	DeleteContact(ctx context.Context, userID string, contactID int64) error
}
