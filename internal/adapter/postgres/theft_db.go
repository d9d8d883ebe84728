package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bikeguard/backend/internal/core/domain"

	"github.com/lib/pq"
)

type TheftReportRepository struct {
	db *sql.DB
}

func NewTheftReportRepository(db *sql.DB) *TheftReportRepository {
	return &TheftReportRepository{
		db,
	}
}

const theftReportColumns = `id, bike_id, user_id, theft_date, theft_location, theft_latitude,
	theft_longitude, description, police_report_number, status, reported_at, recovered_at,
	created_at, updated_at`

func scanTheftReport(row interface{ Scan(...interface{}) error }) (*domain.TheftReport, error) {
	report := &domain.TheftReport{}
	err := row.Scan(
		&report.ID,
		&report.BikeID,
		&report.UserID,
		&report.TheftDate,
		&report.TheftLocation,
		&report.TheftLatitude,
		&report.TheftLongitude,
		&report.Description,
		&report.PoliceReportNumber,
		&report.Status,
		&report.ReportedAt,
		&report.RecoveredAt,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return report, nil
}

func (r *TheftReportRepository) CreateReport(ctx context.Context, report *domain.TheftReport) (*domain.TheftReport, error) {
	query := `INSERT INTO theft_reports (bike_id, user_id, theft_date, theft_location,
		theft_latitude, theft_longitude, description, police_report_number, status, reported_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'reported', NOW())
	RETURNING ` + theftReportColumns

	row := r.db.QueryRowContext(ctx, query,
		report.BikeID,
		report.UserID,
		report.TheftDate,
		report.TheftLocation,
		report.TheftLatitude,
		report.TheftLongitude,
		report.Description,
		report.PoliceReportNumber,
	)

	created, err := scanTheftReport(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23502":
				return nil, fmt.Errorf("%w: required field is missing", domain.ErrValidation)
			case "23503":
				return nil, domain.ErrNotFound
			}
		}
		return nil, err
	}
	return created, nil
}

func (r *TheftReportRepository) GetReportsByUserID(ctx context.Context, userID string) ([]*domain.TheftReport, error) {
	query := `SELECT ` + theftReportColumns + ` FROM theft_reports
		WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*domain.TheftReport
	for rows.Next() {
		report, err := scanTheftReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return reports, nil
}

// UpdateStatus accepts the status string as-is. recovered_at is stamped
// exactly when the new status is "recovered" and cleared otherwise.
func (r *TheftReportRepository) UpdateStatus(ctx context.Context, userID string, reportID int64, status string) (*domain.TheftReport, error) {
	query := `UPDATE theft_reports
		SET status = $1,
			recovered_at = CASE WHEN $1 = 'recovered' THEN NOW() ELSE NULL END,
			updated_at = NOW()
		WHERE id = $2 AND user_id = $3
		RETURNING ` + theftReportColumns

	report, err := scanTheftReport(r.db.QueryRowContext(ctx, query, status, reportID, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return report, nil
}
