package domain

import (
	"time"
)

type Bike struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	BikeName       string    `json:"bike_name" validate:"required"`
	Model          string    `json:"model" validate:"required"`
	Brand          *string   `json:"brand"`
	SerialNumber   *string   `json:"serial_number"`
	LicensePlate   *string   `json:"license_plate"`
	Color          *string   `json:"color"`
	Year           *int      `json:"year" validate:"omitempty,bike_year"`
	EstimatedValue *float64  `json:"estimated_value" validate:"omitempty,min=0"`
	BikePhotoURL   *string   `json:"bike_photo_url"`
	IsPrimary      bool      `json:"is_primary"`
	IsStolen       bool      `json:"is_stolen"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BikePatch enumerates every updatable bike column. A nil field is left
// untouched.
type BikePatch struct {
	BikeName       *string  `json:"bike_name" validate:"omitempty,min=1"`
	Model          *string  `json:"model" validate:"omitempty,min=1"`
	Brand          *string  `json:"brand"`
	SerialNumber   *string  `json:"serial_number"`
	LicensePlate   *string  `json:"license_plate"`
	Color          *string  `json:"color"`
	Year           *int     `json:"year" validate:"omitempty,bike_year"`
	EstimatedValue *float64 `json:"estimated_value" validate:"omitempty,min=0"`
	BikePhotoURL   *string  `json:"bike_photo_url"`
	IsPrimary      *bool    `json:"is_primary"`
}

func (p *BikePatch) Empty() bool {
	return p.BikeName == nil && p.Model == nil && p.Brand == nil &&
		p.SerialNumber == nil && p.LicensePlate == nil && p.Color == nil &&
		p.Year == nil && p.EstimatedValue == nil && p.BikePhotoURL == nil &&
		p.IsPrimary == nil
}
