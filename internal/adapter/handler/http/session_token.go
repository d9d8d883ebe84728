package http

import (
	"errors"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTokenService verifies session JWTs locally. The tokens are issued
// and signed by the identity service at code exchange; only the shared
// secret is needed here.
type SessionTokenService struct {
	secretKey []byte
	logger    ports.LoggerPort
}

func NewSessionTokenService(secretKey string, logger ports.LoggerPort) *SessionTokenService {
	return &SessionTokenService{
		secretKey: []byte(secretKey),
		logger:    logger,
	}
}

func (j *SessionTokenService) VerifyToken(token string) (*domain.Identity, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	})
	if err != nil {
		j.logger.Warn("Failed to parse session token", map[string]interface{}{
			"error":  err.Error(),
			"method": "VerifyToken",
		})
		return nil, domain.ErrUnauthenticated
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("failed to read claims from token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("missing subject claim")
	}

	identity := &domain.Identity{ID: sub}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if picture, ok := claims["picture"].(string); ok {
		identity.Picture = picture
	}

	return identity, nil
}
