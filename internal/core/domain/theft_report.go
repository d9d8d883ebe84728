package domain

import (
	"time"
)

type TheftReportStatus string

const (
	TheftReported      TheftReportStatus = "reported"
	TheftInvestigating TheftReportStatus = "investigating"
	TheftRecovered     TheftReportStatus = "recovered"
	TheftClosed        TheftReportStatus = "closed"
)

type TheftReport struct {
	ID                 int64             `json:"id"`
	BikeID             int64             `json:"bike_id" validate:"required"`
	UserID             string            `json:"user_id"`
	TheftDate          string            `json:"theft_date" validate:"required"`
	TheftLocation      string            `json:"theft_location" validate:"required"`
	TheftLatitude      *float64          `json:"theft_latitude"`
	TheftLongitude     *float64          `json:"theft_longitude"`
	Description        *string           `json:"description"`
	PoliceReportNumber *string           `json:"police_report_number"`
	Status             TheftReportStatus `json:"status"`
	ReportedAt         time.Time         `json:"reported_at"`
	RecoveredAt        *time.Time        `json:"recovered_at"`
	CreatedAt          time.Time         `json:"created_at"`
	UpdatedAt          time.Time         `json:"updated_at"`
}
