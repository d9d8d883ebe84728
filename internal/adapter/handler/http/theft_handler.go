package http

import (
	"net/http"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"
	"github.com/bikeguard/backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

type TheftReportHandler struct {
	reportService *services.TheftReportService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

func NewTheftReportHandler(
	reportService *services.TheftReportService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *TheftReportHandler {
	return &TheftReportHandler{
		reportService: reportService,
		logger:        logger,
		metrics:       metrics,
	}
}

type CreateTheftReportRequest struct {
	BikeID             int64    `json:"bike_id" binding:"required" example:"1"`
	TheftDate          string   `json:"theft_date" binding:"required" example:"2024-06-01"`
	TheftLocation      string   `json:"theft_location" binding:"required" example:"5th Ave & E 23rd St"`
	TheftLatitude      *float64 `json:"theft_latitude" example:"40.7411"`
	TheftLongitude     *float64 `json:"theft_longitude" example:"-73.9897"`
	Description        *string  `json:"description"`
	PoliceReportNumber *string  `json:"police_report_number"`
}

type UpdateTheftStatusRequest struct {
	Status string `json:"status" binding:"required" example:"recovered"`
}

// @Summary File a theft report
// @Tags theft-reports
// @Accept json
// @Produce json
// @Param request body CreateTheftReportRequest true "Report data"
// @Success 201 {object} domain.TheftReport
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/theft-reports [post]
func (h *TheftReportHandler) CreateReport(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateTheftReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	report := &domain.TheftReport{
		BikeID:             req.BikeID,
		UserID:             identity.ID,
		TheftDate:          req.TheftDate,
		TheftLocation:      req.TheftLocation,
		TheftLatitude:      req.TheftLatitude,
		TheftLongitude:     req.TheftLongitude,
		Description:        req.Description,
		PoliceReportNumber: req.PoliceReportNumber,
		Status:             domain.TheftReported,
	}

	created, err := h.reportService.CreateReport(c.Request.Context(), report)
	if err != nil {
		serviceError(c, err, "Bike not found")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary List theft reports
// @Tags theft-reports
// @Produce json
// @Success 200 {array} domain.TheftReport
// @Router /api/theft-reports [get]
func (h *TheftReportHandler) GetReports(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	reports, err := h.reportService.GetReportsByUserID(c.Request.Context(), identity.ID)
	if err != nil {
		serviceError(c, err, "Failed to get theft reports")
		return
	}

	c.JSON(http.StatusOK, reports)
}

// @Summary Update theft report status
// @Description Setting status to recovered stamps recovered_at; any other status clears it
// @Tags theft-reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param request body UpdateTheftStatusRequest true "New status"
// @Success 200 {object} domain.TheftReport
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/theft-reports/{id} [put]
func (h *TheftReportHandler) UpdateStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	reportID, err := pathID(c, "id")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var req UpdateTheftStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.reportService.UpdateStatus(c.Request.Context(), identity.ID, reportID, req.Status)
	if err != nil {
		serviceError(c, err, "Theft report not found")
		return
	}

	c.JSON(http.StatusOK, report)
}
