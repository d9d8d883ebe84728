package services

import (
	"context"
	"testing"

	"github.com/bikeguard/backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_CreateContact(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), nopLogger{}, NewValidator())

	created, err := svc.CreateContact(context.Background(), &domain.EmergencyContact{
		UserID:      "user-1",
		ContactName: "Jamie Rivera",
		PhoneNumber: "+1-555-0142",
		Email:       "jamie@example.com",
		IsPrimary:   true,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.True(t, created.IsPrimary)
}

func TestContactService_CreateContact_InvalidEmail(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), nopLogger{}, NewValidator())

	_, err := svc.CreateContact(context.Background(), &domain.EmergencyContact{
		UserID:      "user-1",
		ContactName: "Jamie Rivera",
		PhoneNumber: "+1-555-0142",
		Email:       "not-an-email",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Several contacts may carry the primary flag at once; nothing demotes the
// previous one.
func TestContactService_MultiplePrimariesAllowed(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), nopLogger{}, NewValidator())
	ctx := context.Background()

	for _, email := range []string{"a@example.com", "b@example.com"} {
		_, err := svc.CreateContact(ctx, &domain.EmergencyContact{
			UserID:      "user-1",
			ContactName: "Contact",
			PhoneNumber: "+1-555-0100",
			Email:       email,
			IsPrimary:   true,
		})
		require.NoError(t, err)
	}

	contacts, err := svc.GetContactsByUserID(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	for _, contact := range contacts {
		assert.True(t, contact.IsPrimary)
	}
}

func TestContactService_UpdateContact(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), nopLogger{}, NewValidator())
	ctx := context.Background()

	created, err := svc.CreateContact(ctx, &domain.EmergencyContact{
		UserID:      "user-1",
		ContactName: "Jamie Rivera",
		PhoneNumber: "+1-555-0142",
		Email:       "jamie@example.com",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateContact(ctx, "user-1", created.ID, &domain.EmergencyContactPatch{
		PhoneNumber: strPtr("+1-555-0199"),
	})
	require.NoError(t, err)
	assert.Equal(t, "+1-555-0199", updated.PhoneNumber)
	assert.Equal(t, "jamie@example.com", updated.Email)
}

func TestContactService_UpdateContact_InvalidEmailInPatch(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), nopLogger{}, NewValidator())
	ctx := context.Background()

	created, err := svc.CreateContact(ctx, &domain.EmergencyContact{
		UserID:      "user-1",
		ContactName: "Jamie Rivera",
		PhoneNumber: "+1-555-0142",
		Email:       "jamie@example.com",
	})
	require.NoError(t, err)

	_, err = svc.UpdateContact(ctx, "user-1", created.ID, &domain.EmergencyContactPatch{
		Email: strPtr("still-not-an-email"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestContactService_DeleteContact_OtherUser(t *testing.T) {
	svc := NewContactService(newFakeContactRepo(), nopLogger{}, NewValidator())
	ctx := context.Background()

	created, err := svc.CreateContact(ctx, &domain.EmergencyContact{
		UserID:      "user-1",
		ContactName: "Jamie Rivera",
		PhoneNumber: "+1-555-0142",
		Email:       "jamie@example.com",
	})
	require.NoError(t, err)

	err = svc.DeleteContact(ctx, "user-2", created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, svc.DeleteContact(ctx, "user-1", created.ID))
}
