package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"
	"github.com/bikeguard/backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

type BikeHandler struct {
	bikeService *services.BikeService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

func NewBikeHandler(
	bikeService *services.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BikeHandler {
	return &BikeHandler{
		bikeService: bikeService,
		logger:      logger,
		metrics:     metrics,
	}
}

type CreateBikeRequest struct {
	BikeName       string   `json:"bike_name" binding:"required" example:"Commuter"`
	Model          string   `json:"model" binding:"required" example:"Allez Sprint"`
	Brand          *string  `json:"brand" example:"Specialized"`
	SerialNumber   *string  `json:"serial_number" example:"WSBC602..."`
	LicensePlate   *string  `json:"license_plate" example:"BK-1234"`
	Color          *string  `json:"color" example:"red"`
	Year           *int     `json:"year" example:"2023"`
	EstimatedValue *float64 `json:"estimated_value" example:"1500"`
	BikePhotoURL   *string  `json:"bike_photo_url"`
	IsPrimary      *bool    `json:"is_primary" example:"true"`
}

type SetStolenRequest struct {
	IsStolen *bool `json:"is_stolen" binding:"required" example:"true"`
}

// @Summary Create a bike
// @Tags bikes
// @Accept json
// @Produce json
// @Param request body CreateBikeRequest true "Bike data"
// @Success 201 {object} domain.Bike
// @Failure 400 {object} errorResponse
// @Router /api/bikes [post]
func (h *BikeHandler) CreateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	bike := &domain.Bike{
		UserID:         identity.ID,
		BikeName:       req.BikeName,
		Model:          req.Model,
		Brand:          req.Brand,
		SerialNumber:   req.SerialNumber,
		LicensePlate:   req.LicensePlate,
		Color:          req.Color,
		Year:           req.Year,
		EstimatedValue: req.EstimatedValue,
		BikePhotoURL:   req.BikePhotoURL,
	}
	if req.IsPrimary != nil {
		bike.IsPrimary = *req.IsPrimary
	}

	created, err := h.bikeService.CreateBike(c.Request.Context(), bike)
	if err != nil {
		serviceError(c, err, "Failed to create bike")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary List bikes
// @Tags bikes
// @Produce json
// @Success 200 {array} domain.Bike
// @Router /api/bikes [get]
func (h *BikeHandler) GetBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bikes, err := h.bikeService.GetBikesByUserID(c.Request.Context(), identity.ID)
	if err != nil {
		serviceError(c, err, "Failed to get bikes")
		return
	}

	c.JSON(http.StatusOK, bikes)
}

// @Summary Get a bike
// @Tags bikes
// @Produce json
// @Param id path int true "Bike ID"
// @Success 200 {object} domain.Bike
// @Failure 404 {object} errorResponse
// @Router /api/bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bikeID, err := pathID(c, "id")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	bike, err := h.bikeService.GetBikeByID(c.Request.Context(), identity.ID, bikeID)
	if err != nil {
		serviceError(c, err, "Bike not found")
		return
	}

	c.JSON(http.StatusOK, bike)
}

// @Summary Update a bike
// @Tags bikes
// @Accept json
// @Produce json
// @Param id path int true "Bike ID"
// @Param request body domain.BikePatch true "Fields to update"
// @Success 200 {object} domain.Bike
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/bikes/{id} [put]
func (h *BikeHandler) UpdateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bikeID, err := pathID(c, "id")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	var patch domain.BikePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	bike, err := h.bikeService.UpdateBike(c.Request.Context(), identity.ID, bikeID, &patch)
	if err != nil {
		serviceError(c, err, "Bike not found")
		return
	}

	c.JSON(http.StatusOK, bike)
}

// @Summary Flag a bike stolen or recovered
// @Tags bikes
// @Accept json
// @Produce json
// @Param id path int true "Bike ID"
// @Param request body SetStolenRequest true "Stolen flag"
// @Success 200 {object} domain.Bike
// @Failure 404 {object} errorResponse
// @Router /api/bikes/{id}/stolen [put]
func (h *BikeHandler) SetStolen(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bikeID, err := pathID(c, "id")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	var req SetStolenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	bike, err := h.bikeService.SetStolen(c.Request.Context(), identity.ID, bikeID, *req.IsStolen)
	if err != nil {
		serviceError(c, err, "Bike not found")
		return
	}

	c.JSON(http.StatusOK, bike)
}

// @Summary Delete a bike
// @Tags bikes
// @Produce json
// @Param id path int true "Bike ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /api/bikes/{id} [delete]
func (h *BikeHandler) DeleteBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	bikeID, err := pathID(c, "id")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid bike ID")
		return
	}

	if err := h.bikeService.DeleteBike(c.Request.Context(), identity.ID, bikeID); err != nil {
		serviceError(c, err, "Bike not found")
		return
	}

	c.JSON(http.StatusOK, successResponse{Success: true})
}

func pathID(c *gin.Context, name string) (int64, error) {
	return strconv.ParseInt(c.Param(name), 10, 64)
}
