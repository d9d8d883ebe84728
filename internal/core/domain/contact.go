package domain

import (
	"time"
)

type EmergencyContact struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"user_id"`
	ContactName string    `json:"contact_name" validate:"required"`
	PhoneNumber string    `json:"phone_number" validate:"required"`
	Email       string    `json:"email" validate:"required,email"`
	IsPrimary   bool      `json:"is_primary"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type EmergencyContactPatch struct {
	ContactName *string `json:"contact_name" validate:"omitempty,min=1"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,min=1"`
	Email       *string `json:"email" validate:"omitempty,email"`
	IsPrimary   *bool   `json:"is_primary"`
}

func (p *EmergencyContactPatch) Empty() bool {
	return p.ContactName == nil && p.PhoneNumber == nil && p.Email == nil && p.IsPrimary == nil
}
