package domain

import (
	"time"
)

// SensorReading is a raw device sample persisted uninterpreted.
type SensorReading struct {
	ID             int64     `json:"id"`
	DeviceID       string    `json:"device_id" validate:"required"`
	UserID         string    `json:"user_id"`
	BikeID         *int64    `json:"bike_id"`
	Speed          *float64  `json:"speed"`
	Latitude       *float64  `json:"latitude"`
	Longitude      *float64  `json:"longitude"`
	GyroscopeX     *float64  `json:"gyroscope_x"`
	GyroscopeY     *float64  `json:"gyroscope_y"`
	GyroscopeZ     *float64  `json:"gyroscope_z"`
	AccelerometerX *float64  `json:"accelerometer_x"`
	AccelerometerY *float64  `json:"accelerometer_y"`
	AccelerometerZ *float64  `json:"accelerometer_z"`
	GPSAccuracy    *float64  `json:"gps_accuracy"`
	SignalStrength *float64  `json:"signal_strength"`
	BatteryLevel   *float64  `json:"battery_level"`
	CreatedAt      time.Time `json:"created_at"`
}
