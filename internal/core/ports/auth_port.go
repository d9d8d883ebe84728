package ports

import (
	"context"

	"github.com/bikeguard/backend/internal/core/domain"
)

// CredentialVerifier resolves either credential form into an identity.
// Device credentials are checked against the identity service on every
// call, never cached.
type CredentialVerifier interface {
	Verify(ctx context.Context, cred domain.Credential) (*domain.Identity, error)
}

// IdentityClient talks to the external users service.
type IdentityClient interface {
	OAuthRedirectURL(ctx context.Context, provider string) (string, error)
	ExchangeCode(ctx context.Context, code string) (sessionToken string, err error)
	GetCurrentUser(ctx context.Context, token string) (*domain.Identity, error)
	DeleteSession(ctx context.Context, token string) error
}
