package http

import (
	"net/http"
	"strings"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookieName carries the session token issued at code exchange.
const SessionCookieName = "bikeguard_session"

// AuthMiddleware resolves the session credential (cookie first, bearer
// header as fallback) into an identity for user-facing routes. Device
// routes never pass through here; their token rides in the request body.
func AuthMiddleware(verifier ports.CredentialVerifier, logger ports.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}
		if token == "" {
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		identity, err := verifier.Verify(c.Request.Context(), domain.Credential{
			Kind:  domain.SessionCredential,
			Token: token,
		})
		if err != nil {
			logger.Warn("Session verification failed", requestFields(c, map[string]interface{}{
				"error": err.Error(),
				"ip":    c.ClientIP(),
			}))
			newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
			return
		}

		c.Set(authPayloadKey, identity)
		c.Next()
	}
}

// RequestIDMiddleware tags every request so log lines can be correlated.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

const requestIDKey = "request_id"

// requestFields merges the request id into handler log fields so every
// line from one request carries the same correlation id.
func requestFields(c *gin.Context, fields map[string]interface{}) map[string]interface{} {
	if id := c.GetString(requestIDKey); id != "" {
		fields[requestIDKey] = id
	}
	return fields
}
