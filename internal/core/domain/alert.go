package domain

import (
	"time"
)

// Alert is the first-generation device alert (crash / blind spot / SOS),
// kept separate from SecurityAlert because devices in the field still
// post to the old endpoint.
type AlertType string

const (
	AlertCrash     AlertType = "crash"
	AlertBlindSpot AlertType = "blind_spot"
	AlertManualSOS AlertType = "manual_sos"
)

type Alert struct {
	ID             int64     `json:"id"`
	DeviceID       string    `json:"device_id" validate:"required"`
	UserID         string    `json:"user_id"`
	AlertType      AlertType `json:"alert_type" validate:"required,oneof=crash blind_spot manual_sos"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	GyroscopeX     *float64  `json:"gyroscope_x"`
	GyroscopeY     *float64  `json:"gyroscope_y"`
	GyroscopeZ     *float64  `json:"gyroscope_z"`
	AccelerometerX *float64  `json:"accelerometer_x"`
	AccelerometerY *float64  `json:"accelerometer_y"`
	AccelerometerZ *float64  `json:"accelerometer_z"`
	GPSAccuracy    *float64  `json:"gps_accuracy"`
	Resolved       bool      `json:"resolved"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
