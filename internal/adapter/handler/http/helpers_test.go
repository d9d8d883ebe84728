package http

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{})  {}
func (nopLogger) Warn(string, map[string]interface{})  {}
func (nopLogger) Error(string, map[string]interface{}) {}

type logRecord struct {
	msg    string
	fields map[string]interface{}
}

// recordLogger captures entries so tests can assert on log fields.
type recordLogger struct {
	mu      sync.Mutex
	records []logRecord
}

func (l *recordLogger) record(msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, logRecord{msg: msg, fields: fields})
}

func (l *recordLogger) Info(msg string, fields map[string]interface{})  { l.record(msg, fields) }
func (l *recordLogger) Warn(msg string, fields map[string]interface{})  { l.record(msg, fields) }
func (l *recordLogger) Error(msg string, fields map[string]interface{}) { l.record(msg, fields) }

type nopMetrics struct{}

func (nopMetrics) RecordMetrics(*gin.Context, time.Time) {}

// staticVerifier resolves tokens from a fixed table regardless of
// credential kind.
type staticVerifier struct {
	identities map[string]*domain.Identity
}

func (v *staticVerifier) Verify(_ context.Context, cred domain.Credential) (*domain.Identity, error) {
	identity, ok := v.identities[cred.Token]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return identity, nil
}

type fakeIdentityClient struct {
	redirectURL   string
	sessionToken  string
	exchangeErr   error
	deletedTokens []string
	identities    map[string]*domain.Identity
}

func (c *fakeIdentityClient) OAuthRedirectURL(context.Context, string) (string, error) {
	return c.redirectURL, nil
}

func (c *fakeIdentityClient) ExchangeCode(context.Context, string) (string, error) {
	if c.exchangeErr != nil {
		return "", c.exchangeErr
	}
	return c.sessionToken, nil
}

func (c *fakeIdentityClient) GetCurrentUser(_ context.Context, token string) (*domain.Identity, error) {
	identity, ok := c.identities[token]
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	return identity, nil
}

func (c *fakeIdentityClient) DeleteSession(_ context.Context, token string) error {
	c.deletedTokens = append(c.deletedTokens, token)
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

func (r *fakeBikeRepo) UpdateBike(_ context.Context, userID string, bikeID int64, patch *domain.BikePatch) (*domain.Bike, error) {
	bike, ok := r.bikes[bikeID]
	if !ok || bike.UserID != userID {
		return nil, domain.ErrNotFound
	}
	if patch.BikeName != nil {
		bike.BikeName = *patch.BikeName
	}
	if patch.Color != nil {
		bike.Color = patch.Color
	}
	if patch.IsPrimary != nil {
		bike.IsPrimary = *patch.IsPrimary
	}
	out := *bike
	return &out, nil
}

func (r *fakeBikeRepo) SetStolen(_ context.Context, userID string, bikeID int64, stolen bool) (*domain.Bike, error) {
	bike, ok := r.bikes[bikeID]
	if !ok || bike.UserID != userID {
		return nil, domain.ErrNotFound
	}
	bike.IsStolen = stolen
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

type fakeContactRepo struct{}

func (fakeContactRepo) CreateContact(_ context.Context, contact *domain.EmergencyContact) (*domain.EmergencyContact, error) {
	out := *contact
	out.ID = 1
	return &out, nil
}

func (fakeContactRepo) GetContactsByUserID(context.Context, string) ([]*domain.EmergencyContact, error) {
	return nil, nil
}

func (fakeContactRepo) UpdateContact(context.Context, string, int64, *domain.EmergencyContactPatch) (*domain.EmergencyContact, error) {
	return nil, domain.ErrNotFound
}

func (fakeContactRepo) DeleteContact(context.Context, string, int64) error {
	return domain.ErrNotFound
}

type nopCache struct{}

func (nopCache) Get(key string) ([]byte, error)          { return nil, fmt.Errorf("miss: %s", key) }
func (nopCache) Set(string, []byte, time.Duration) error { return nil }
func (nopCache) Delete(string) error                     { return nil }
