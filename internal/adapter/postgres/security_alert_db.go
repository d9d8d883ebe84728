package postgres

import (
	"context"
	"database/sql"

	"github.com/bikeguard/backend/internal/core/domain"
)

type SecurityAlertRepository struct {
	db *sql.DB
}

func NewSecurityAlertRepository(db *sql.DB) *SecurityAlertRepository {
	return &SecurityAlertRepository{
		db,
	}
}

const securityAlertColumns = `id, bike_id, user_id, device_id, alert_type, severity, latitude,
	longitude, sensor_data, gyroscope_x, gyroscope_y, gyroscope_z, accelerometer_x,
	accelerometer_y, accelerometer_z, gps_accuracy, resolved, resolved_by, resolved_at,
	created_at, updated_at`

func scanSecurityAlert(row interface{ Scan(...interface{}) error }) (*domain.SecurityAlert, error) {
	alert := &domain.SecurityAlert{}
	err := row.Scan(
		&alert.ID,
		&alert.BikeID,
		&alert.UserID,
		&alert.DeviceID,
		&alert.AlertType,
		&alert.Severity,
		&alert.Latitude,
		&alert.Longitude,
		&alert.SensorData,
		&alert.GyroscopeX,
		&alert.GyroscopeY,
		&alert.GyroscopeZ,
		&alert.AccelerometerX,
		&alert.AccelerometerY,
		&alert.AccelerometerZ,
		&alert.GPSAccuracy,
		&alert.Resolved,
		&alert.ResolvedBy,
		&alert.ResolvedAt,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return alert, nil
}

func (r *SecurityAlertRepository) CreateAlert(ctx context.Context, alert *domain.SecurityAlert) (*domain.SecurityAlert, error) {
	query := `INSERT INTO security_alerts (bike_id, user_id, device_id, alert_type, severity,
		latitude, longitude, sensor_data, gyroscope_x, gyroscope_y, gyroscope_z,
		accelerometer_x, accelerometer_y, accelerometer_z, gps_accuracy, resolved)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, false)
	RETURNING ` + securityAlertColumns

	row := r.db.QueryRowContext(ctx, query,
		alert.BikeID,
		alert.UserID,
		alert.DeviceID,
		alert.AlertType,
		alert.Severity,
		alert.Latitude,
		alert.Longitude,
		alert.SensorData,
		alert.GyroscopeX,
		alert.GyroscopeY,
		alert.GyroscopeZ,
		alert.AccelerometerX,
		alert.AccelerometerY,
		alert.AccelerometerZ,
		alert.GPSAccuracy,
	)

	return scanSecurityAlert(row)
}

func (r *SecurityAlertRepository) GetAlertsByUserID(ctx context.Context, userID string, limit int) ([]*domain.SecurityAlert, error) {
	query := `SELECT ` + securityAlertColumns + ` FROM security_alerts
		WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []*domain.SecurityAlert
	for rows.Next() {
		alert, err := scanSecurityAlert(rows)
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

func (r *SecurityAlertRepository) ResolveAlert(ctx context.Context, userID string, alertID int64, resolverID string) (*domain.SecurityAlert, error) {
	query := `UPDATE security_alerts
		SET resolved = true, resolved_by = $1, resolved_at = NOW(), updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING ` + securityAlertColumns

	alert, err := scanSecurityAlert(r.db.QueryRowContext(ctx, query, resolverID, alertID, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return alert, nil
}

func (r *SecurityAlertRepository) CountUnresolved(ctx context.Context, userID string) (int64, error) {
	query := `SELECT COUNT(*) FROM security_alerts WHERE user_id = $1 AND resolved = false`

	var count int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
