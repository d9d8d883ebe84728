package domain

type DeviceStatus string

const (
	DeviceOnline  DeviceStatus = "online"
	DeviceOffline DeviceStatus = "offline"
)

// LiveData is the computed telemetry snapshot. It is never persisted;
// missing sources are filled in per field by the simulator.
type LiveData struct {
	Speed                 float64      `json:"speed"`
	Latitude              float64      `json:"latitude"`
	Longitude             float64      `json:"longitude"`
	DeviceStatus          DeviceStatus `json:"device_status"`
	CrashDetectionActive  bool         `json:"crash_detection_active"`
	BlindSpotActive       bool         `json:"blind_spot_active"`
	TheftProtectionActive bool         `json:"theft_protection_active"`
	CurrentBikeID         *int64       `json:"current_bike_id"`
	GyroscopeX            float64      `json:"gyroscope_x"`
	GyroscopeY            float64      `json:"gyroscope_y"`
	GyroscopeZ            float64      `json:"gyroscope_z"`
	AccelerometerX        float64      `json:"accelerometer_x"`
	AccelerometerY        float64      `json:"accelerometer_y"`
	AccelerometerZ        float64      `json:"accelerometer_z"`
	CrashSensitivity      int          `json:"crash_sensitivity"`
	BlindSpotSensitivity  int          `json:"blind_spot_sensitivity"`
	TheftSensitivity      int          `json:"theft_sensitivity"`
	GPSAccuracy           float64      `json:"gps_accuracy"`
	LastGPSUpdate         string       `json:"last_gps_update"`
}

type DashboardStats struct {
	TotalRides    int64   `json:"total_rides"`
	TotalDistance float64 `json:"total_distance"`
	TotalTime     float64 `json:"total_time"`
	AvgSpeed      float64 `json:"avg_speed"`
	BikesCount    int64   `json:"bikes_count"`
	ActiveAlerts  int64   `json:"active_alerts"`
	TheftReports  int64   `json:"theft_reports"`
}
