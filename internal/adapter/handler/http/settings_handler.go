package http

import (
	"net/http"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"
	"github.com/bikeguard/backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
	profileService  *services.ProfileService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

func NewSettingsHandler(
	settingsService *services.SettingsService,
	profileService *services.ProfileService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *SettingsHandler {
	return &SettingsHandler{
		settingsService: settingsService,
		profileService:  profileService,
		logger:          logger,
		metrics:         metrics,
	}
}

// @Summary Get system settings
// @Description Creates the row with defaults on first read
// @Tags settings
// @Produce json
// @Success 200 {object} domain.SystemSettings
// @Router /api/system-settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context(), identity.ID)
	if err != nil {
		serviceError(c, err, "Failed to get settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// @Summary Update system settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body domain.SystemSettingsPatch true "Fields to update"
// @Success 200 {object} domain.SystemSettings
// @Failure 400 {object} errorResponse
// @Router /api/system-settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch domain.SystemSettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), identity.ID, &patch)
	if err != nil {
		serviceError(c, err, "Failed to update settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// @Summary Get profile
// @Description Creates the profile from the identity on first read
// @Tags profile
// @Produce json
// @Success 200 {object} domain.Profile
// @Router /api/profile [get]
func (h *SettingsHandler) GetProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), identity)
	if err != nil {
		serviceError(c, err, "Failed to get profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}

// @Summary Update profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body domain.ProfilePatch true "Fields to update"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} errorResponse
// @Router /api/profile [put]
func (h *SettingsHandler) UpdateProfile(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var patch domain.ProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), identity.ID, &patch)
	if err != nil {
		serviceError(c, err, "Failed to update profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
