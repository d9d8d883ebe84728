package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"
)

// In-memory repository fakes shared by the service tests. They enforce the
// same owner scoping as the SQL implementations: a row under another user
// is reported as missing.

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type memoryCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (c *memoryCache) Get(key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.items[key]
	if !ok {
		return nil, fmt.Errorf("cache miss: %s", key)
	}
	return value, nil
}

func (c *memoryCache) Set(key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
	return nil
}

func (c *memoryCache) Delete(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

type fakeBikeRepo struct {
	nextID int64
	bikes  map[int64]*domain.Bike
}

func newFakeBikeRepo() *fakeBikeRepo {
	return &fakeBikeRepo{nextID: 1, bikes: map[int64]*domain.Bike{}}
}

func (r *fakeBikeRepo) CreateBike(_ context.Context, bike *domain.Bike) (*domain.Bike, error) {
	stored := *bike
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	stored.UpdatedAt = stored.CreatedAt
	r.bikes[stored.ID] = &stored
	r.nextID++
	out := stored
	return &out, nil
}

func (r *fakeBikeRepo) GetBikeByID(_ context.Context, userID string, bikeID int64) (*domain.Bike, error) {
	bike, ok := r.bikes[bikeID]
	if !ok || bike.UserID != userID {
		return nil, domain.ErrNotFound
	}
	out := *bike
	return &out, nil
}

func (r *fakeBikeRepo) GetBikesByUserID(_ context.Context, userID string) ([]*domain.Bike, error) {
	var out []*domain.Bike
	for _, bike := range r.bikes {
		if bike.UserID == userID {
			copied := *bike
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeBikeRepo) GetPrimaryBike(_ context.Context, userID string) (*domain.Bike, error) {
	for _, bike := range r.bikes {
		if bike.UserID == userID && bike.IsPrimary {
			out := *bike
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *fakeBikeRepo) UpdateBike(ctx context.Context, userID string, bikeID int64, patch *domain.BikePatch) (*domain.Bike, error) {
	bike, ok := r.bikes[bikeID]
	if !ok || bike.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if patch.BikeName != nil {
		bike.BikeName = *patch.BikeName
	}
	if patch.Model != nil {
		bike.Model = *patch.Model
	}
	if patch.Brand != nil {
		bike.Brand = patch.Brand
	}
	if patch.SerialNumber != nil {
		bike.SerialNumber = patch.SerialNumber
	}
	if patch.LicensePlate != nil {
		bike.LicensePlate = patch.LicensePlate
	}
	if patch.Color != nil {
		bike.Color = patch.Color
	}
	if patch.Year != nil {
		bike.Year = patch.Year
	}
	if patch.EstimatedValue != nil {
		bike.EstimatedValue = patch.EstimatedValue
	}
	if patch.BikePhotoURL != nil {
		bike.BikePhotoURL = patch.BikePhotoURL
	}
	if patch.IsPrimary != nil {
		bike.IsPrimary = *patch.IsPrimary
	}
	bike.UpdatedAt = time.Now()
	out := *bike
	return &out, nil
}

func (r *fakeBikeRepo) SetStolen(_ context.Context, userID string, bikeID int64, stolen bool) (*domain.Bike, error) {
	bike, ok := r.bikes[bikeID]
	if !ok || bike.UserID != userID {
		return nil, domain.ErrNotFound
	}
	bike.IsStolen = stolen
	bike.UpdatedAt = time.Now()
	out := *bike
	return &out, nil
}

func (r *fakeBikeRepo) DeleteBike(_ context.Context, userID string, bikeID int64) error {
	bike, ok := r.bikes[bikeID]
	if !ok || bike.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.bikes, bikeID)
	return nil
}

type fakeTheftRepo struct {
	nextID  int64
	reports map[int64]*domain.TheftReport
}

func newFakeTheftRepo() *fakeTheftRepo {
	return &fakeTheftRepo{nextID: 1, reports: map[int64]*domain.TheftReport{}}
}

func (r *fakeTheftRepo) CreateReport(_ context.Context, report *domain.TheftReport) (*domain.TheftReport, error) {
	stored := *report
	stored.ID = r.nextID
	if stored.Status == "" {
		stored.Status = domain.TheftReported
	}
	stored.ReportedAt = time.Now()
	r.reports[stored.ID] = &stored
	r.nextID++
	out := stored
	return &out, nil
}

func (r *fakeTheftRepo) GetReportsByUserID(_ context.Context, userID string) ([]*domain.TheftReport, error) {
	var out []*domain.TheftReport
	for _, report := range r.reports {
		if report.UserID == userID {
			copied := *report
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeTheftRepo) UpdateStatus(_ context.Context, userID string, reportID int64, status string) (*domain.TheftReport, error) {
	report, ok := r.reports[reportID]
	if !ok || report.UserID != userID {
		return nil, domain.ErrNotFound
	}
	report.Status = domain.TheftReportStatus(status)
	if status == string(domain.TheftRecovered) {
		now := time.Now()
		report.RecoveredAt = &now
	} else {
		report.RecoveredAt = nil
	}
	out := *report
	return &out, nil
}

type fakeAlertRepo struct {
	nextID int64
	alerts map[int64]*domain.Alert
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{nextID: 1, alerts: map[int64]*domain.Alert{}}
}

func (r *fakeAlertRepo) CreateAlert(_ context.Context, alert *domain.Alert) (*domain.Alert, error) {
	stored := *alert
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.alerts[stored.ID] = &stored
	r.nextID++
	out := stored
	return &out, nil
}

func (r *fakeAlertRepo) GetAlertsByUserID(_ context.Context, userID string, limit int) ([]*domain.Alert, error) {
	var out []*domain.Alert
	for _, alert := range r.alerts {
		if alert.UserID == userID && len(out) < limit {
			copied := *alert
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeAlertRepo) ResolveAlert(_ context.Context, userID string, alertID int64) (*domain.Alert, error) {
	alert, ok := r.alerts[alertID]
	if !ok || alert.UserID != userID {
		return nil, domain.ErrNotFound
	}
	alert.Resolved = true
	out := *alert
	return &out, nil
}

type fakeSecurityAlertRepo struct {
	nextID int64
	alerts map[int64]*domain.SecurityAlert
}

func newFakeSecurityAlertRepo() *fakeSecurityAlertRepo {
	return &fakeSecurityAlertRepo{nextID: 1, alerts: map[int64]*domain.SecurityAlert{}}
}

func (r *fakeSecurityAlertRepo) CreateAlert(_ context.Context, alert *domain.SecurityAlert) (*domain.SecurityAlert, error) {
	stored := *alert
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.alerts[stored.ID] = &stored
	r.nextID++
	out := stored
	return &out, nil
}

func (r *fakeSecurityAlertRepo) GetAlertsByUserID(_ context.Context, userID string, limit int) ([]*domain.SecurityAlert, error) {
	var out []*domain.SecurityAlert
	for _, alert := range r.alerts {
		if alert.UserID == userID && len(out) < limit {
			copied := *alert
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeSecurityAlertRepo) ResolveAlert(_ context.Context, userID string, alertID int64, resolverID string) (*domain.SecurityAlert, error) {
	alert, ok := r.alerts[alertID]
	if !ok || alert.UserID != userID {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	alert.Resolved = true
	alert.ResolvedBy = &resolverID
	alert.ResolvedAt = &now
	out := *alert
	return &out, nil
}

func (r *fakeSecurityAlertRepo) CountUnresolved(_ context.Context, userID string) (int64, error) {
	var count int64
	for _, alert := range r.alerts {
		if alert.UserID == userID && !alert.Resolved {
			count++
		}
	}
	return count, nil
}

type fakeContactRepo struct {
	nextID   int64
	contacts map[int64]*domain.EmergencyContact
}

func newFakeContactRepo() *fakeContactRepo {
	return &fakeContactRepo{nextID: 1, contacts: map[int64]*domain.EmergencyContact{}}
}

func (r *fakeContactRepo) CreateContact(_ context.Context, contact *domain.EmergencyContact) (*domain.EmergencyContact, error) {
	stored := *contact
	stored.ID = r.nextID
	r.contacts[stored.ID] = &stored
	r.nextID++
	out := stored
	return &out, nil
}

func (r *fakeContactRepo) GetContactsByUserID(_ context.Context, userID string) ([]*domain.EmergencyContact, error) {
	var out []*domain.EmergencyContact
	for _, contact := range r.contacts {
		if contact.UserID == userID {
			copied := *contact
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeContactRepo) UpdateContact(_ context.Context, userID string, contactID int64, patch *domain.EmergencyContactPatch) (*domain.EmergencyContact, error) {
	contact, ok := r.contacts[contactID]
	if !ok || contact.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if patch.ContactName != nil {
		contact.ContactName = *patch.ContactName
	}
	if patch.PhoneNumber != nil {
		contact.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Email != nil {
		contact.Email = *patch.Email
	}
	if patch.IsPrimary != nil {
		contact.IsPrimary = *patch.IsPrimary
	}
	out := *contact
	return &out, nil
}

func (r *fakeContactRepo) DeleteContact(_ context.Context, userID string, contactID int64) error {
	contact, ok := r.contacts[contactID]
	if !ok || contact.UserID != userID {
		return domain.ErrNotFound
	}
	delete(r.contacts, contactID)
	return nil
}

type fakeSettingsRepo struct {
	rows map[string]*domain.SystemSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{rows: map[string]*domain.SystemSettings{}}
}

func (r *fakeSettingsRepo) GetSettings(_ context.Context, userID string) (*domain.SystemSettings, error) {
	settings, ok := r.rows[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *settings
	return &out, nil
}

func (r *fakeSettingsRepo) CreateSettings(_ context.Context, settings *domain.SystemSettings) (*domain.SystemSettings, error) {
	stored := *settings
	r.rows[stored.UserID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeSettingsRepo) UpdateSettings(_ context.Context, userID string, patch *domain.SystemSettingsPatch) (*domain.SystemSettings, error) {
	settings, ok := r.rows[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.CrashDetectionEnabled != nil {
		settings.CrashDetectionEnabled = *patch.CrashDetectionEnabled
	}
	if patch.BlindSpotEnabled != nil {
		settings.BlindSpotEnabled = *patch.BlindSpotEnabled
	}
	if patch.TheftProtectionEnabled != nil {
		settings.TheftProtectionEnabled = *patch.TheftProtectionEnabled
	}
	if patch.CrashSensitivity != nil {
		settings.CrashSensitivity = *patch.CrashSensitivity
	}
	if patch.BlindSpotSensitivity != nil {
		settings.BlindSpotSensitivity = *patch.BlindSpotSensitivity
	}
	if patch.TheftSensitivity != nil {
		settings.TheftSensitivity = *patch.TheftSensitivity
	}
	out := *settings
	return &out, nil
}

type fakeProfileRepo struct {
	rows map[string]*domain.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{rows: map[string]*domain.Profile{}}
}

func (r *fakeProfileRepo) GetProfile(_ context.Context, userID string) (*domain.Profile, error) {
	profile, ok := r.rows[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *profile
	return &out, nil
}

func (r *fakeProfileRepo) CreateProfile(_ context.Context, profile *domain.Profile) (*domain.Profile, error) {
	stored := *profile
	r.rows[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *fakeProfileRepo) UpdateProfile(_ context.Context, userID string, patch *domain.ProfilePatch) (*domain.Profile, error) {
	profile, ok := r.rows[userID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Username != nil {
		profile.Username = patch.Username
	}
	if patch.FirstName != nil {
		profile.FirstName = patch.FirstName
	}
	if patch.LastName != nil {
		profile.LastName = patch.LastName
	}
	if patch.BikeModel != nil {
		profile.BikeModel = patch.BikeModel
	}
	if patch.AvatarURL != nil {
		profile.AvatarURL = patch.AvatarURL
	}
	out := *profile
	return &out, nil
}

type fakeSensorRepo struct {
	nextID   int64
	readings []*domain.SensorReading
}

func newFakeSensorRepo() *fakeSensorRepo {
	return &fakeSensorRepo{nextID: 1}
}

func (r *fakeSensorRepo) CreateReading(_ context.Context, reading *domain.SensorReading) (*domain.SensorReading, error) {
	stored := *reading
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.readings = append(r.readings, &stored)
	r.nextID++
	out := stored
	return &out, nil
}

func (r *fakeSensorRepo) GetLatestByUserID(_ context.Context, userID string) (*domain.SensorReading, error) {
	for i := len(r.readings) - 1; i >= 0; i-- {
		if r.readings[i].UserID == userID {
			out := *r.readings[i]
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fakeStatsRepo struct {
	bikes    int64
	reports  int64
	rides    int64
	distance float64
	minutes  float64
	avgSpeed float64
}

func (r *fakeStatsRepo) CountBikes(_ context.Context, _ string) (int64, error) {
	return r.bikes, nil
}

func (r *fakeStatsRepo) CountTheftReports(_ context.Context, _ string) (int64, error) {
	return r.reports, nil
}

func (r *fakeStatsRepo) RideStats(_ context.Context, _ string) (int64, float64, float64, float64, error) {
	return r.rides, r.distance, r.minutes, r.avgSpeed, nil
}

// fixedTelemetry returns constant values so tests can tell simulated
// fields apart from stored ones.
type fixedTelemetry struct{}

func (fixedTelemetry) Speed() float64                             { return 25 }
func (fixedTelemetry) Coordinates() (float64, float64)            { return 40.5, -74.5 }
func (fixedTelemetry) DeviceStatus() domain.DeviceStatus          { return domain.DeviceOnline }
func (fixedTelemetry) Gyroscope() (float64, float64, float64)     { return 1, 2, 3 }
func (fixedTelemetry) Accelerometer() (float64, float64, float64) { return 4, 5, 9.8 }
func (fixedTelemetry) GPSAccuracy() float64                       { return 3 }

func strPtr(s string) *string     { return &s }
func intPtr(i int) *int           { return &i }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }
