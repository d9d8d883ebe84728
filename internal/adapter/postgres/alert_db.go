package postgres

import (
	"context"
	"database/sql"

	"github.com/bikeguard/backend/internal/core/domain"
)

type AlertRepository struct {
	db *sql.DB
}

func NewAlertRepository(db *sql.DB) *AlertRepository {
	return &AlertRepository{
		db,
	}
}

const alertColumns = `id, device_id, user_id, alert_type, latitude, longitude, gyroscope_x,
	gyroscope_y, gyroscope_z, accelerometer_x, accelerometer_y, accelerometer_z,
	gps_accuracy, resolved, created_at, updated_at`

func scanAlert(row interface{ Scan(...interface{}) error }) (*domain.Alert, error) {
	alert := &domain.Alert{}
	err := row.Scan(
		&alert.ID,
		&alert.DeviceID,
		&alert.UserID,
		&alert.AlertType,
		&alert.Latitude,
		&alert.Longitude,
		&alert.GyroscopeX,
		&alert.GyroscopeY,
		&alert.GyroscopeZ,
		&alert.AccelerometerX,
		&alert.AccelerometerY,
		&alert.AccelerometerZ,
		&alert.GPSAccuracy,
		&alert.Resolved,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

func (r *AlertRepository) CreateAlert(ctx context.Context, alert *domain.Alert) (*domain.Alert, error) {
	query := `INSERT INTO alerts (device_id, user_id, alert_type, latitude, longitude,
		gyroscope_x, gyroscope_y, gyroscope_z, accelerometer_x, accelerometer_y,
		accelerometer_z, gps_accuracy, resolved)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, false)
	RETURNING ` + alertColumns

	row := r.db.QueryRowContext(ctx, query,
		alert.DeviceID,
		alert.UserID,
		alert.AlertType,
		alert.Latitude,
		alert.Longitude,
		alert.GyroscopeX,
		alert.GyroscopeY,
		alert.GyroscopeZ,
		alert.AccelerometerX,
		alert.AccelerometerY,
		alert.AccelerometerZ,
		alert.GPSAccuracy,
	)

	return scanAlert(row)
}

func (r *AlertRepository) GetAlertsByUserID(ctx context.Context, userID string, limit int) ([]*domain.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []*domain.Alert
	for rows.Next() {
		alert, err := scanAlert(rows)
		if err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *AlertRepository) ResolveAlert(ctx context.Context, userID string, alertID int64) (*domain.Alert, error) {
	query := `UPDATE alerts SET resolved = true, updated_at = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + alertColumns

	alert, err := scanAlert(r.db.QueryRowContext(ctx, query, alertID, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return alert, nil
}
