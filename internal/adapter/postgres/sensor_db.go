package postgres

import (
	"context"
	"database/sql"

	"github.com/bikeguard/backend/internal/core/domain"
)

type SensorReadingRepository struct {
	db *sql.DB
}

func NewSensorReadingRepository(db *sql.DB) *SensorReadingRepository {
	return &SensorReadingRepository{
		db,
	}
}

const sensorReadingColumns = `id, device_id, user_id, bike_id, speed, latitude, longitude,
	gyroscope_x, gyroscope_y, gyroscope_z, accelerometer_x, accelerometer_y, accelerometer_z,
	gps_accuracy, signal_strength, battery_level, created_at`

func scanSensorReading(row interface{ Scan(...interface{}) error }) (*domain.SensorReading, error) {
	reading := &domain.SensorReading{}
	err := row.Scan(
		&reading.ID,
		&reading.DeviceID,
		&reading.UserID,
		&reading.BikeID,
		&reading.Speed,
		&reading.Latitude,
		&reading.Longitude,
		&reading.GyroscopeX,
		&reading.GyroscopeY,
		&reading.GyroscopeZ,
		&reading.AccelerometerX,
		&reading.AccelerometerY,
		&reading.AccelerometerZ,
		&reading.GPSAccuracy,
		&reading.SignalStrength,
		&reading.BatteryLevel,
		&reading.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return reading, nil
}

func (r *SensorReadingRepository) CreateReading(ctx context.Context, reading *domain.SensorReading) (*domain.SensorReading, error) {
	query := `INSERT INTO sensor_readings (device_id, user_id, bike_id, speed, latitude,
		longitude, gyroscope_x, gyroscope_y, gyroscope_z, accelerometer_x, accelerometer_y,
		accelerometer_z, gps_accuracy, signal_strength, battery_level)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	RETURNING ` + sensorReadingColumns

	row := r.db.QueryRowContext(ctx, query,
		reading.DeviceID,
		reading.UserID,
		reading.BikeID,
		reading.Speed,
		reading.Latitude,
		reading.Longitude,
		reading.GyroscopeX,
		reading.GyroscopeY,
		reading.GyroscopeZ,
		reading.AccelerometerX,
		reading.AccelerometerY,
		reading.AccelerometerZ,
		reading.GPSAccuracy,
		reading.SignalStrength,
		reading.BatteryLevel,
	)

	return scanSensorReading(row)
}

func (r *SensorReadingRepository) GetLatestByUserID(ctx context.Context, userID string) (*domain.SensorReading, error) {
	query := `SELECT ` + sensorReadingColumns + ` FROM sensor_readings
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT 1`

	reading, err := scanSensorReading(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return reading, nil
}
