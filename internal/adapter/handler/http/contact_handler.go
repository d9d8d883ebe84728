package http

import (
	"net/http"
	"time"

	"github.com/bikeguard/backend/internal/core/domain"
	"github.com/bikeguard/backend/internal/core/ports"
	"github.com/bikeguard/backend/internal/core/services"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactService *services.ContactService
	logger         ports.LoggerPort
	metrics        ports.MetricsPort
}

func NewContactHandler(
	contactService *services.ContactService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		logger:         logger,
		metrics:        metrics,
	}
}

type CreateContactRequest struct {
	ContactName string `json:"contact_name" binding:"required" example:"Jamie Rivera"`
	PhoneNumber string `json:"phone_number" binding:"required" example:"+1-555-0142"`
	Email       string `json:"email" binding:"required,email" example:"jamie@example.com"`
	IsPrimary   *bool  `json:"is_primary" example:"true"`
}

// @Summary Create an emergency contact
// @Tags emergency-contacts
// @Accept json
// @Produce json
// @Param request body CreateContactRequest true "Contact data"
// @Success 201 {object} domain.EmergencyContact
// @Failure 400 {object} errorResponse
// @Router /api/emergency-contacts [post]
func (h *ContactHandler) CreateContact(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	contact := &domain.EmergencyContact{
		UserID:      identity.ID,
		ContactName: req.ContactName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}
	if req.IsPrimary != nil {
		contact.IsPrimary = *req.IsPrimary
	}

	created, err := h.contactService.CreateContact(c.Request.Context(), contact)
	if err != nil {
		serviceError(c, err, "Failed to create contact")
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary List emergency contacts
// @Tags emergency-contacts
// @Produce json
// @Success 200 {array} domain.EmergencyContact
// @Router /api/emergency-contacts [get]
func (h *ContactHandler) GetContacts(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contacts, err := h.contactService.GetContactsByUserID(c.Request.Context(), identity.ID)
	if err != nil {
		serviceError(c, err, "Failed to get contacts")
		return
	}

	c.JSON(http.StatusOK, contacts)
}

// @Summary Update an emergency contact
// @Tags emergency-contacts
// @Accept json
// @Produce json
// @Param id path int true "Contact ID"
// @Param request body domain.EmergencyContactPatch true "Fields to update"
// @Success 200 {object} domain.EmergencyContact
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/emergency-contacts/{id} [put]
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contactID, err := pathID(c, "id")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	var patch domain.EmergencyContactPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	contact, err := h.contactService.UpdateContact(c.Request.Context(), identity.ID, contactID, &patch)
	if err != nil {
		serviceError(c, err, "Contact not found")
		return
	}

	c.JSON(http.StatusOK, contact)
}

// @Summary Delete an emergency contact
// @Tags emergency-contacts
// @Produce json
// @Param id path int true "Contact ID"
// @Success 200 {object} successResponse
// @Failure 404 {object} errorResponse
// @Router /api/emergency-contacts/{id} [delete]
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	identity, exists := getAuthPayload(c)
	if !exists {
		newErrorResponse(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	contactID, err := pathID(c, "id")
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid contact ID")
		return
	}

	if err := h.contactService.DeleteContact(c.Request.Context(), identity.ID, contactID); err != nil {
		serviceError(c, err, "Contact not found")
		return
	}

	c.JSON(http.StatusOK, successResponse{Success: true})
}
