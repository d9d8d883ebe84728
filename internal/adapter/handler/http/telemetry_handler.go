package http

import (
	"net/http"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"
	"github.com/bikeguard/backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

type TelemetryHandler struct {
	telemetryService *services.TelemetryService
	verifier         ports.CredentialVerifier
	logger           ports.LoggerPort
	metrics          ports.MetricsPort
}

func NewTelemetryHandler(
	telemetryService *services.TelemetryService,
	verifier ports.CredentialVerifier,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *TelemetryHandler {
	return &TelemetryHandler{
		telemetryService: telemetryService,
		verifier:         verifier,
		logger:           logger,
		metrics:          metrics,
	}
}

type SensorDataRequest struct {
	JWT            string   `json:"jwt" binding:"required"`
	DeviceID       string   `json:"device_id" binding:"required" example:"esp32-0042"`
	BikeID         *int64   `json:"bike_id"`
	Speed          *float64 `json:"speed"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
	GyroscopeX     *float64 `json:"gyroscope_x"`
	GyroscopeY     *float64 `json:"gyroscope_y"`
	GyroscopeZ     *float64 `json:"gyroscope_z"`
	AccelerometerX *float64 `json:"accelerometer_x"`
	AccelerometerY *float64 `json:"accelerometer_y"`
	AccelerometerZ *float64 `json:"accelerometer_z"`
	GPSAccuracy    *float64 `json:"gps_accuracy"`
	SignalStrength *float64 `json:"signal_strength"`
	BatteryLevel   *float64 `json:"battery_level"`
}

// @Summary Live telemetry snapshot
// @Description Always returns a fully populated snapshot; missing sources are simulated
// @Tags telemetry
// @Produce json
// @Success 200 {object} domain.LiveData
// @Router /api/live-data [get]
func (h *TelemetryHandler) GetLiveData(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	live := h.telemetryService.GetLiveData(c.Request.Context(), identity.ID)

	c.JSON(http.StatusOK, live)
}

// @Summary Dashboard statistics
// @Tags telemetry
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Router /api/dashboard-stats [get]
func (h *TelemetryHandler) GetDashboardStats(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	stats, err := h.telemetryService.GetDashboardStats(c.Request.Context(), identity.ID)
	if err != nil {
		serviceError(c, err, "Failed to get dashboard stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Ingest a sensor reading
// @Description Device endpoint; the bearer token travels in the jwt body field
// @Tags telemetry
// @Accept json
// @Produce json
// @Param request body SensorDataRequest true "Sensor reading"
// @Success 201 {object} domain.SensorReading
// @Failure 400 {object} errorResponse
// @Failure 401 {object} errorResponse
// @Router /api/sensor-data [post]
func (h *TelemetryHandler) IngestSensorData(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req SensorDataRequest
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

	reading := &domain.SensorReading{
		DeviceID:       req.DeviceID,
		UserID:         identity.ID,
		BikeID:         req.BikeID,
		Speed:          req.Speed,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		GyroscopeX:     req.GyroscopeX,
		GyroscopeY:     req.GyroscopeY,
		GyroscopeZ:     req.GyroscopeZ,
		AccelerometerX: req.AccelerometerX,
		AccelerometerY: req.AccelerometerY,
		AccelerometerZ: req.AccelerometerZ,
		GPSAccuracy:    req.GPSAccuracy,
		SignalStrength: req.SignalStrength,
		BatteryLevel:   req.BatteryLevel,
	}

	created, err := h.telemetryService.IngestReading(c.Request.Context(), reading)
	if err != nil {
		serviceError(c, err, "Failed to store sensor reading")
		return
	}

	c.JSON(http.StatusCreated, created)
}
