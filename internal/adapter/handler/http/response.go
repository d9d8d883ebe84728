package http

import (
	"errors"
	"net/http"

	"github.com/bikeguard/backend/internal/core/domain"

	"github.com/gin-gonic/gin"
)

type errorResponse struct {
	Error string `json:"error"`
}

type successResponse struct {
	Success bool `json:"success"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

// statusFromError collapses ownership mismatches and absence into one 404
// so existence never leaks.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func serviceError(c *gin.Context, err error, fallback string) {
	status := statusFromError(err)
	msg := fallback
	switch status {
	case http.StatusBadRequest:
		msg = err.Error()
	case http.StatusNotFound:
		msg = fallback
	case http.StatusUnauthorized:
		msg = "Unauthorized"
	case http.StatusInternalServerError:
		msg = fallback
	}
	newErrorResponse(c, status, msg)
}

const authPayloadKey = "authorization_payload"

func getAuthPayload(c *gin.Context) (*domain.Identity, bool) {
	value, exists := c.Get(authPayloadKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*domain.Identity)
	return identity, ok
}
