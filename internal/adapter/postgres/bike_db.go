package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bikeguard/backend/internal/core/domain"

	"github.com/lib/pq"
)

type BikeRepository struct {
	db *sql.DB
}

func NewBikeRepository(db *sql.DB) *BikeRepository {
	return &BikeRepository{
		db,
	}
}

const bikeColumns = `id, user_id, bike_name, model, brand, serial_number, license_plate,
	color, year, estimated_value, bike_photo_url, is_primary, is_stolen, created_at, updated_at`

func scanBike(row interface{ Scan(...interface{}) error }) (*domain.Bike, error) {
	bike := &domain.Bike{}
	err := row.Scan(
		&bike.ID,
		&bike.UserID,
		&bike.BikeName,
		&bike.Model,
		&bike.Brand,
		&bike.SerialNumber,
		&bike.LicensePlate,
		&bike.Color,
		&bike.Year,
		&bike.EstimatedValue,
		&bike.BikePhotoURL,
		&bike.IsPrimary,
		&bike.IsStolen,
		&bike.CreatedAt,
		&bike.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return bike, nil
}

func (r *BikeRepository) CreateBike(ctx context.Context, bike *domain.Bike) (*domain.Bike, error) {
	query := `INSERT INTO bikes (user_id, bike_name, model, brand, serial_number, license_plate,
		color, year, estimated_value, bike_photo_url, is_primary, is_stolen)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, false)
	RETURNING ` + bikeColumns

	row := r.db.QueryRowContext(ctx, query,
		bike.UserID,
		bike.BikeName,
		bike.Model,
		bike.Brand,
		bike.SerialNumber,
		bike.LicensePlate,
		bike.Color,
		bike.Year,
		bike.EstimatedValue,
		bike.BikePhotoURL,
		bike.IsPrimary,
	)

	created, err := scanBike(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23502" {
			return nil, fmt.Errorf("%w: required field is missing", domain.ErrValidation)
		}
		return nil, err
	}
	return created, nil
}

func (r *BikeRepository) GetBikeByID(ctx context.Context, userID string, bikeID int64) (*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes WHERE id = $1 AND user_id = $2`

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, bikeID, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bike, nil
}

func (r *BikeRepository) GetBikesByUserID(ctx context.Context, userID string) ([]*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes
		WHERE user_id = $1 ORDER BY is_primary DESC, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bikes []*domain.Bike
	for rows.Next() {
		bike, err := scanBike(rows)
		if err != nil {
			return nil, err
		}
		bikes = append(bikes, bike)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return bikes, nil
}

func (r *BikeRepository) GetPrimaryBike(ctx context.Context, userID string) (*domain.Bike, error) {
	query := `SELECT ` + bikeColumns + ` FROM bikes
		WHERE user_id = $1 AND is_primary = true LIMIT 1`

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bike, nil
}

// UpdateBike applies a typed partial update. The column list is statically
// enumerated; request keys never reach the SQL text.
func (r *BikeRepository) UpdateBike(ctx context.Context, userID string, bikeID int64, patch *domain.BikePatch) (*domain.Bike, error) {
	set, args := newSetClause()
	if patch.BikeName != nil {
		set.add("bike_name", *patch.BikeName, &args)
	}
	if patch.Model != nil {
		set.add("model", *patch.Model, &args)
	}
	if patch.Brand != nil {
		set.add("brand", *patch.Brand, &args)
	}
	if patch.SerialNumber != nil {
		set.add("serial_number", *patch.SerialNumber, &args)
	}
	if patch.LicensePlate != nil {
		set.add("license_plate", *patch.LicensePlate, &args)
	}
	if patch.Color != nil {
		set.add("color", *patch.Color, &args)
	}
	if patch.Year != nil {
		set.add("year", *patch.Year, &args)
	}
	if patch.EstimatedValue != nil {
		set.add("estimated_value", *patch.EstimatedValue, &args)
	}
	if patch.BikePhotoURL != nil {
		set.add("bike_photo_url", *patch.BikePhotoURL, &args)
	}
	if patch.IsPrimary != nil {
		set.add("is_primary", *patch.IsPrimary, &args)
	}
	if set.empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}

	query := fmt.Sprintf(`UPDATE bikes SET %s, updated_at = NOW()
		WHERE id = $%d AND user_id = $%d RETURNING `+bikeColumns,
		set.sql(), len(args)+1, len(args)+2)
	args = append(args, bikeID, userID)

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error updating bike: %w", err)
	}
	return bike, nil
}

func (r *BikeRepository) SetStolen(ctx context.Context, userID string, bikeID int64, stolen bool) (*domain.Bike, error) {
	query := `UPDATE bikes SET is_stolen = $1, updated_at = NOW()
		WHERE id = $2 AND user_id = $3 RETURNING ` + bikeColumns

	bike, err := scanBike(r.db.QueryRowContext(ctx, query, stolen, bikeID, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return bike, nil
}

func (r *BikeRepository) DeleteBike(ctx context.Context, userID string, bikeID int64) error {
	query := `DELETE FROM bikes WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, bikeID, userID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
