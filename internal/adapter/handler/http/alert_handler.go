package http

import (
	"net/http"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"
	"github.com/bikeguard/backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

// AlertHandler serves the first-generation device alerts. The create
// endpoint is device-facing: the bearer token arrives inside the JSON
// body instead of a cookie or header.
type AlertHandler struct {
	alertService *services.AlertService
	verifier     ports.CredentialVerifier
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

func NewAlertHandler(
	alertService *services.AlertService,
	verifier ports.CredentialVerifier,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *AlertHandler {
	return &AlertHandler{
		alertService: alertService,
		verifier:     verifier,
		logger:       logger,
		metrics:      metrics,
	}
}

type CreateAlertRequest struct {
	JWT            string   `json:"jwt" binding:"required"`
	DeviceID       string   `json:"device_id" binding:"required" example:"esp32-0042"`
	AlertType      string   `json:"alert_type" binding:"required" example:"crash"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	GyroscopeX     *float64 `json:"gyroscope_x"`
	GyroscopeY     *float64 `json:"gyroscope_y"`
	GyroscopeZ     *float64 `json:"gyroscope_z"`
	AccelerometerX *float64 `json:"accelerometer_x"`
	AccelerometerY *float64 `json:"accelerometer_y"`
	AccelerometerZ *float64 `json:"accelerometer_z"`
	GPSAccuracy    *float64 `json:"gps_accuracy"`
}

// deviceIdentity resolves the in-body device token. Verification goes to
// the identity service on every call; device tokens are never cached.
func (h *AlertHandler) deviceIdentity(c *gin.Context, token string) (*domain.Identity, bool) {
	identity, err := h.verifier.Verify(c.Request.Context(), domain.Credential{
		Kind:  domain.DeviceCredential,
		Token: token,
	})
	if err != nil {
		h.logger.Warn("Device token verification failed", requestFields(c, map[string]interface{}{
			"error": err.Error(),
			"ip":    c.ClientIP(),
		}))
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return nil, false
	}
	return identity, true
}

// @Summary Create a device alert
// @Description Device endpoint; the bearer token travels in the jwt body field
// @Tags alerts
// @Accept json
// @Produce json
// @Param request body CreateAlertRequest true "Alert data"
// @Success 201 {object} domain.Alert
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/alert [post]
func (h *AlertHandler) CreateAlert(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CreateAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	identity, ok := h.deviceIdentity(c, req.JWT)
	if !ok {
		return
	}

	alert := &domain.Alert{
		DeviceID:       req.DeviceID,
		UserID:         identity.ID,
		AlertType:      domain.AlertType(req.AlertType),
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		GyroscopeX:     req.GyroscopeX,
		GyroscopeY:     req.GyroscopeY,
		GyroscopeZ:     req.GyroscopeZ,
		AccelerometerX: req.AccelerometerX,
		AccelerometerY: req.AccelerometerY,
		AccelerometerZ: req.AccelerometerZ,
		GPSAccuracy:    req.GPSAccuracy,
	}

	created, err := h.alertService.CreateAlert(c.Request.Context(), alert)
	if err != nil {
		serviceError(c, err, "Failed to create alert")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary List alerts
// @Tags alerts
// @Produce json
// @Success 200 {array} domain.Alert
// @Router /api/alerts [get]
func (h *AlertHandler) GetAlerts(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	alerts, err := h.alertService.GetAlertsByUserID(c.Request.Context(), identity.ID)
	if err != nil {
		serviceError(c, err, "Failed to get alerts")
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// @Summary Resolve an alert
// @Tags alerts
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} domain.Alert
// @Failure 404 {object} errorResponse
// @Router /api/alerts/{id}/resolve [put]
func (h *AlertHandler) ResolveAlert(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	alertID, err := pathID(c, "id")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid alert ID")
		return
	}

	alert, err := h.alertService.ResolveAlert(c.Request.Context(), identity.ID, alertID)
	if err != nil {
		serviceError(c, err, "Alert not found")
		return
	}

	c.JSON(http.StatusOK, alert)
}
