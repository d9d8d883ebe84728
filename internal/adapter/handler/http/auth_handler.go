package http

import (
	"net/http"
	"time"

	"github.com/bikeguard/backend/internal/core/ports"

	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 60 * 24 * time.Hour

type AuthHandler struct {
	identity ports.IdentityClient
	logger   ports.LoggerPort
	metrics  ports.MetricsPort
}

func NewAuthHandler(
	identity ports.IdentityClient,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AuthHandler {
	return &AuthHandler{
		identity: identity,
		logger:   logger,
		metrics:  metrics,
	}
}

type RedirectURLResponse struct {
	RedirectURL string `json:"redirect_url"`
}

type CreateSessionRequest struct {
	Code string `json:"code" binding:"required" example:"4/0AX4XfWh..."`
}

// @Summary OAuth redirect URL
// @Description Returns the Google OAuth URL to send the user to
// @Tags auth
// @Produce json
// @Success 200 {object} RedirectURLResponse
// @Router /api/oauth/google/redirect_url [get]
func (h *AuthHandler) GetOAuthRedirectURL(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	redirectURL, err := h.identity.OAuthRedirectURL(c.Request.Context(), "google")
	if err != nil {
		h.logger.Error("Failed to get OAuth redirect URL", requestFields(c, map[string]interface{}{
			"error": err.Error(),
		}))
		newErrorResponse(c, http.StatusInternalServerError, "Failed to get redirect URL")
		return
	}

	c.JSON(http.StatusOK, RedirectURLResponse{RedirectURL: redirectURL})
}

// @Summary Create session
// @Description Exchanges an OAuth authorization code for a session cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CreateSessionRequest true "Authorization code"
// @Success 200 {object} successResponse
// @Failure 400 {object} errorResponse
// @Router /api/sessions [post]
func (h *AuthHandler) CreateSession(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "No authorization code provided")
		return
	}

	sessionToken, err := h.identity.ExchangeCode(c.Request.Context(), req.Code)
	if err != nil {
		h.logger.Error("Failed to exchange authorization code", requestFields(c, map[string]interface{}{
			"error": err.Error(),
		}))
		serviceError(c, err, "Failed to create session")
		return
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, sessionToken, int(sessionMaxAge.Seconds()), "/", "", true, true)

	c.JSON(http.StatusOK, successResponse{Success: true})
}

// @Summary Current user
// @Description Returns the authenticated user's identity
// @Tags auth
// @Produce json
// @Success 200 {object} domain.Identity
// @Failure 401 {object} errorResponse
// @Router /api/users/me [get]
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	c.JSON(http.StatusOK, identity)
}

// @Summary Logout
// @Description Deletes the remote session and clears the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} successResponse
// @Router /api/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	if token, err := c.Cookie(SessionCookieName); err == nil && token != "" {
		if err := h.identity.DeleteSession(c.Request.Context(), token); err != nil {
			h.logger.Warn("Failed to delete remote session", requestFields(c, map[string]interface{}{
				"error": err.Error(),
			}))
		}
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", true, true)

	c.JSON(http.StatusOK, successResponse{Success: true})
}
