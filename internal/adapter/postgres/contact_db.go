package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/bikeguard/backend/internal/core/domain"

	"github.com/lib/pq"
)

type EmergencyContactRepository struct {
	db *sql.DB
}

func NewEmergencyContactRepository(db *sql.DB) *EmergencyContactRepository {
	return &EmergencyContactRepository{
		db,
	}
}

const contactColumns = `id, user_id, contact_name, phone_number, email, is_primary,
	created_at, updated_at`

func scanContact(row interface{ Scan(...interface{}) error }) (*domain.EmergencyContact, error) {
	contact := &domain.EmergencyContact{}
	err := row.Scan(
		&contact.ID,
		&contact.UserID,
		&contact.ContactName,
		&contact.PhoneNumber,
		&contact.Email,
		&contact.IsPrimary,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *EmergencyContactRepository) CreateContact(ctx context.Context, contact *domain.EmergencyContact) (*domain.EmergencyContact, error) {
	query := `INSERT INTO emergency_contacts (user_id, contact_name, phone_number, email, is_primary)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING ` + contactColumns

	row := r.db.QueryRowContext(ctx, query,
		contact.UserID,
		contact.ContactName,
		contact.PhoneNumber,
		contact.Email,
		contact.IsPrimary,
	)

	created, err := scanContact(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23502" {
			return nil, fmt.Errorf("%w: required field is missing", domain.ErrValidation)
		}
		return nil, err
	}
	return created, nil
}

// Primary contact sorts first, then creation order.
func (r *EmergencyContactRepository) GetContactsByUserID(ctx context.Context, userID string) ([]*domain.EmergencyContact, error) {
	query := `SELECT ` + contactColumns + ` FROM emergency_contacts
		WHERE user_id = $1 ORDER BY is_primary DESC, created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*domain.EmergencyContact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, contact)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *EmergencyContactRepository) UpdateContact(ctx context.Context, userID string, contactID int64, patch *domain.EmergencyContactPatch) (*domain.EmergencyContact, error) {
	set, args := newSetClause()
	if patch.ContactName != nil {
		set.add("contact_name", *patch.ContactName, &args)
	}
	if patch.PhoneNumber != nil {
		set.add("phone_number", *patch.PhoneNumber, &args)
	}
	if patch.Email != nil {
		set.add("email", *patch.Email, &args)
	}
	if patch.IsPrimary != nil {
		set.add("is_primary", *patch.IsPrimary, &args)
	}
	if set.empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}

	query := fmt.Sprintf(`UPDATE emergency_contacts SET %s, updated_at = NOW()
		WHERE id = $%d AND user_id = $%d RETURNING `+contactColumns,
		set.sql(), len(args)+1, len(args)+2)
	args = append(args, contactID, userID)

	contact, err := scanContact(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *EmergencyContactRepository) DeleteContact(ctx context.Context, userID string, contactID int64) error {
	query := `DELETE FROM emergency_contacts WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, contactID, userID)
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
