package http

import (
	"context"
	"fmt"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"
)

// CredentialVerifier resolves both credential forms through one entry
// point: session tokens are checked locally against the shared signing
// secret, device bearer tokens go to the identity service on every call.
type CredentialVerifier struct {
	sessions *SessionTokenService
	identity ports.IdentityClient
}

func NewCredentialVerifier(sessions *SessionTokenService, identity ports.IdentityClient) *CredentialVerifier {
	return &CredentialVerifier{
		sessions: sessions,
		identity: identity,
	}
}

func (v *CredentialVerifier) Verify(ctx context.Context, cred domain.Credential) (*domain.Identity, error) {
	if cred.Token == "" {
		return nil, domain.ErrUnauthenticated
	}

	switch cred.Kind {
	case domain.SessionCredential:
		return v.sessions.VerifyToken(cred.Token)
	case domain.DeviceCredential:
		return v.identity.GetCurrentUser(ctx, cred.Token)
	default:
		return nil, fmt.Errorf("unknown credential kind %q", cred.Kind)
	}
}
