package services

import (
	"context"
	"testing"

	"github.com/bikeguard/backend/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTheftServiceForTest(t *testing.T) (*TheftReportService, *domain.Bike) {
	t.Helper()

	bikeRepo := newFakeBikeRepo()
	bike, err := bikeRepo.CreateBike(context.Background(), &domain.Bike{
		UserID:   "user-1",
		BikeName: "Commuter",
		Model:    "Allez Sprint",
	})
	require.NoError(t, err)

	svc := NewTheftReportService(newFakeTheftRepo(), bikeRepo, nopLogger{}, NewValidator())
	return svc, bike
}

func TestTheftReportService_CreateReport(t *testing.T) {
	svc, bike := newTheftServiceForTest(t)

	created, err := svc.CreateReport(context.Background(), &domain.TheftReport{
		BikeID:        bike.ID,
		UserID:        "user-1",
		TheftDate:     "2024-06-01",
		TheftLocation: "5th Ave & E 23rd St",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, domain.TheftReported, created.Status)
	assert.Nil(t, created.RecoveredAt)
}

func TestTheftReportService_CreateReport_ForeignBike(t *testing.T) {
	svc, bike := newTheftServiceForTest(t)

	_, err := svc.CreateReport(context.Background(), &domain.TheftReport{
		BikeID:        bike.ID,
		UserID:        "user-2",
		TheftDate:     "2024-06-01",
		TheftLocation: "5th Ave & E 23rd St",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTheftReportService_CreateReport_MissingFields(t *testing.T) {
	svc, bike := newTheftServiceForTest(t)

	_, err := svc.CreateReport(context.Background(), &domain.TheftReport{
		BikeID: bike.ID,
		UserID: "user-1",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTheftReportService_GetReportsByUserID_EmptyIsNotNil(t *testing.T) {
	svc, _ := newTheftServiceForTest(t)

	reports, err := svc.GetReportsByUserID(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}

func TestTheftReportService_UpdateStatus_RecoveredStampsTimestamp(t *testing.T) {
	svc, bike := newTheftServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateReport(ctx, &domain.TheftReport{
		BikeID:        bike.ID,
		UserID:        "user-1",
		TheftDate:     "2024-06-01",
		TheftLocation: "5th Ave & E 23rd St",
	})
	require.NoError(t, err)

	recovered, err := svc.UpdateStatus(ctx, "user-1", created.ID, "recovered")
	require.NoError(t, err)
	assert.Equal(t, domain.TheftRecovered, recovered.Status)
	assert.NotNil(t, recovered.RecoveredAt)

	// Moving off recovered clears the timestamp again.
	reopened, err := svc.UpdateStatus(ctx, "user-1", created.ID, "investigating")
	require.NoError(t, err)
	assert.Equal(t, domain.TheftInvestigating, reopened.Status)
	assert.Nil(t, reopened.RecoveredAt)
}

func TestTheftReportService_UpdateStatus_EmptyStatus(t *testing.T) {
	svc, bike := newTheftServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateReport(ctx, &domain.TheftReport{
		BikeID:        bike.ID,
		UserID:        "user-1",
		TheftDate:     "2024-06-01",
		TheftLocation: "5th Ave & E 23rd St",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "user-1", created.ID, "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTheftReportService_UpdateStatus_OtherUser(t *testing.T) {
	svc, bike := newTheftServiceForTest(t)
	ctx := context.Background()

	created, err := svc.CreateReport(ctx, &domain.TheftReport{
		BikeID:        bike.ID,
		UserID:        "user-1",
		TheftDate:     "2024-06-01",
		TheftLocation: "5th Ave & E 23rd St",
	})
	require.NoError(t, err)

	_, err = svc.UpdateStatus(ctx, "user-2", created.ID, "closed")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
