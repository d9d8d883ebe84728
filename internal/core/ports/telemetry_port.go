package ports

import "github.com/bikeguard/backend/internal/core/domain"

// TelemetrySource fills in live-data fields when no stored sample covers
// them. The production implementation is a random simulator; a real
// sensor-fusion path would satisfy the same interface.
type TelemetrySource interface {
	Speed() float64
	Coordinates() (lat, lng float64)
	DeviceStatus() domain.DeviceStatus
	Gyroscope() (x, y, z float64)
	Accelerometer() (x, y, z float64)
	GPSAccuracy() float64
}
