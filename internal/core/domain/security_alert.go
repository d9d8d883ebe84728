package domain

import (
	"time"
)

type SecurityAlertType string

const (
	UnauthorizedMovement SecurityAlertType = "unauthorized_movement"
	Tampering            SecurityAlertType = "tampering"
	LowBattery           SecurityAlertType = "low_battery"
	GeofenceBreach       SecurityAlertType = "geofence_breach"
)

type AlertSeverity string

const (
	SeverityLow      AlertSeverity = "low"
	SeverityMedium   AlertSeverity = "medium"
	SeverityHigh     AlertSeverity = "high"
	SeverityCritical AlertSeverity = "critical"
)

type SecurityAlert struct {
	ID             int64             `json:"id"`
	BikeID         *int64            `json:"bike_id"`
	UserID         string            `json:"user_id"`
	DeviceID       string            `json:"device_id" validate:"required"`
	AlertType      SecurityAlertType `json:"alert_type" validate:"required,oneof=unauthorized_movement tampering low_battery geofence_breach"`
	Severity       AlertSeverity     `json:"severity" validate:"required,oneof=low medium high critical"`
	Latitude       *float64          `json:"latitude"`
	Longitude      *float64          `json:"longitude"`
	SensorData     *string           `json:"sensor_data"`
	GyroscopeX     *float64          `json:"gyroscope_x"`
	GyroscopeY     *float64          `json:"gyroscope_y"`
	GyroscopeZ     *float64          `json:"gyroscope_z"`
	AccelerometerX *float64          `json:"accelerometer_x"`
	AccelerometerY *float64          `json:"accelerometer_y"`
	AccelerometerZ *float64          `json:"accelerometer_z"`
	GPSAccuracy    *float64          `json:"gps_accuracy"`
	Resolved       bool              `json:"resolved"`
	ResolvedBy     *string           `json:"resolved_by"`
	ResolvedAt     *time.Time        `json:"resolved_at"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}
