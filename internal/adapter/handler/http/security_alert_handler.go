package http

import (
	"net/http"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"
	"github.com/bikeguard/backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

type SecurityAlertHandler struct {
	alertService *services.SecurityAlertService
	verifier     ports.CredentialVerifier
	logger       ports.LoggerPort
	metrics      ports.MetricsPort
}

func NewSecurityAlertHandler(
	alertService *services.SecurityAlertService,
	verifier ports.CredentialVerifier,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *SecurityAlertHandler {
	return &SecurityAlertHandler{
		alertService: alertService,
		verifier:     verifier,
		logger:       logger,
		metrics:      metrics,
	}
}

type CreateSecurityAlertRequest struct {
	JWT            string   `json:"jwt" binding:"required"`
	DeviceID       string   `json:"device_id" binding:"required" example:"esp32-0042"`
	BikeID         *int64   `json:"bike_id"`
	AlertType      string   `json:"alert_type" binding:"required" example:"unauthorized_movement"`
	Severity       string   `json:"severity" example:"high"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	SensorData     *string  `json:"sensor_data"`
	GyroscopeX     *float64 `json:"gyroscope_x"`
	GyroscopeY     *float64 `json:"gyroscope_y"`
	GyroscopeZ     *float64 `json:"gyroscope_z"`
	AccelerometerX *float64 `json:"accelerometer_x"`
	AccelerometerY *float64 `json:"accelerometer_y"`
	AccelerometerZ *float64 `json:"accelerometer_z"`
	GPSAccuracy    *float64 `json:"gps_accuracy"`
}

// @Summary Create a security alert
// @Description Device endpoint; the bearer token travels in the jwt body field
// @Tags security-alerts
// @Accept json
// @Produce json
// @Param request body CreateSecurityAlertRequest true "Alert data"
// @Success 201 {object} domain.SecurityAlert
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/security-alert [post]
func (h *SecurityAlertHandler) CreateAlert(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CreateSecurityAlertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	identity, err := h.verifier.Verify(c.Request.Context(), domain.Credential{
		Kind:  domain.DeviceCredential,
		Token: req.JWT,
	})
	if err != nil {
		h.logger.Warn("Device token verification failed", requestFields(c, map[string]interface{}{
			"error": err.Error(),
			"ip":    c.ClientIP(),
		}))
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	alert := &domain.SecurityAlert{
		BikeID:         req.BikeID,
		UserID:         identity.ID,
		DeviceID:       req.DeviceID,
		AlertType:      domain.SecurityAlertType(req.AlertType),
		Severity:       domain.AlertSeverity(req.Severity),
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		SensorData:     req.SensorData,
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
		serviceError(c, err, "Failed to create security alert")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary List security alerts
// @Tags security-alerts
// @Produce json
// @Success 200 {array} domain.SecurityAlert
// @Router /api/security-alerts [get]
func (h *SecurityAlertHandler) GetAlerts(c *gin.Context) {
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
		serviceError(c, err, "Failed to get security alerts")
		return
	}

	c.JSON(http.StatusOK, alerts)
}

// @Summary Resolve a security alert
// @Description Re-resolving an already resolved alert re-stamps the resolver and time
// @Tags security-alerts
// @Produce json
// @Param id path int true "Alert ID"
// @Success 200 {object} domain.SecurityAlert
// @Failure 404 {object} errorResponse
// @Router /api/security-alerts/{id}/resolve [put]
func (h *SecurityAlertHandler) ResolveAlert(c *gin.Context) {
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

	alert, err := h.alertService.ResolveAlert(c.Request.Context(), identity.ID, alertID, identity.ID)
	if err != nil {
		serviceError(c, err, "Security alert not found")
		return
	}

	c.JSON(http.StatusOK, alert)
}
