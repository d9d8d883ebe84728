package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bikeguard/backend/internal/core/domain"

	"github.com/lib/pq"
)

type ProfileRepository struct {
	db *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{
		db,
	}
}

const profileColumns = `id, username, first_name, last_name, bike_model, avatar_url,
	created_at, updated_at`

func scanProfile(row interface{ Scan(...interface{}) error }) (*domain.Profile, error) {
	p := &domain.Profile{}
	err := row.Scan(
		&p.ID,
		&p.Username,
		&p.FirstName,
		&p.LastName,
		&p.BikeModel,
		&p.AvatarURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProfileRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT ` + profileColumns + ` FROM profiles WHERE id = $1`

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, userID))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	query := `INSERT INTO profiles (id, username, first_name, last_name, bike_model, avatar_url)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING ` + profileColumns

	row := r.db.QueryRowContext(ctx, query,
		profile.ID,
		profile.Username,
		profile.FirstName,
		profile.LastName,
		profile.BikeModel,
		profile.AvatarURL,
	)

	created, err := scanProfile(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			// Concurrent first read; the row is there now.
			return r.GetProfile(ctx, profile.ID)
		}
		return nil, err
	}
	return created, nil
}

func (r *ProfileRepository) UpdateProfile(ctx context.Context, userID string, patch *domain.ProfilePatch) (*domain.Profile, error) {
	set, args := newSetClause()
	if patch.Username != nil {
		set.add("username", *patch.Username, &args)
	}
	if patch.FirstName != nil {
		set.add("first_name", *patch.FirstName, &args)
	}
	if patch.LastName != nil {
		set.add("last_name", *patch.LastName, &args)
	}
	if patch.BikeModel != nil {
		set.add("bike_model", *patch.BikeModel, &args)
	}
	if patch.AvatarURL != nil {
		set.add("avatar_url", *patch.AvatarURL, &args)
	}
	if set.empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}

	query := fmt.Sprintf(`UPDATE profiles SET %s, updated_at = NOW()
		WHERE id = $%d RETURNING `+profileColumns,
		set.sql(), len(args)+1)
	args = append(args, userID)

	profile, err := scanProfile(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}
