package handlers

import (
	"net/http"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReminderHandler handles HTTP requests for reminders
type ReminderHandler struct {
	service service.ReminderServiceInterface
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(service service.ReminderServiceInterface) *ReminderHandler {
	return &ReminderHandler{service: service}
}

// Create handles POST /reminders
// @Summary Schedule a reminder
// @Tags reminders
// @Accept json
// @Produce json
// @Param reminder body service.CreateReminderRequest true "Reminder"
// @Success 201 {object} service.ReminderResponse "Created reminder"
// @Failure 400 {object} map[string]interface{} "Missing title or scheduled_at"
// @Security BearerAuth
// @Router /reminders [post]
func (h *ReminderHandler) Create(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	reminder, err := h.service.Create(principal, &req)
	if err != nil {
		respondError(c, err, "Failed to create reminder")
		return
	}

	c.JSON(http.StatusCreated, reminder)
}

// List handles GET /reminders
// @Summary List the caller's reminders
// @Tags reminders
// @Produce json
// @Success 200 {object} service.ReminderListResponse "Reminders"
// @Security BearerAuth
// @Router /reminders [get]
func (h *ReminderHandler) List(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.List(principal)
	if err != nil {
		respondError(c, err, "Failed to get reminders")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Pending handles GET /reminders/pending
// @Summary List due, unsent reminders
// @Description Lists the caller's active reminders whose scheduled time has
// @Description passed and that have not been marked sent.
// @Tags reminders
// @Produce json
// @Success 200 {object} service.ReminderListResponse "Pending reminders"
// @Security BearerAuth
// @Router /reminders/pending [get]
func (h *ReminderHandler) Pending(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.ListPending(principal)
	if err != nil {
		respondError(c, err, "Failed to get pending reminders")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkSent handles POST /reminders/:id/mark-sent
// @Summary Mark a reminder as sent
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID (UUID)"
// @Success 200 {object} service.MessageResponse "Reminder marked as sent"
// @Failure 400 {object} map[string]interface{} "Invalid reminder ID"
// @Failure 404 {object} map[string]interface{} "Reminder not found"
// @Security BearerAuth
// @Router /reminders/{id}/mark-sent [post]
func (h *ReminderHandler) MarkSent(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder ID: invalid UUID format"})
		return
	}

	resp, err := h.service.MarkSent(principal, id)
	if err != nil {
		respondError(c, err, "Failed to mark reminder as sent")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /reminders/:id
// @Summary Delete a reminder
// @Tags reminders
// @Produce json
// @Param id path string true "Reminder ID (UUID)"
// @Success 200 {object} map[string]interface{} "Reminder deleted"
// @Failure 400 {object} map[string]interface{} "Invalid reminder ID"
// @Failure 404 {object} map[string]interface{} "Reminder not found"
// @Security BearerAuth
// @Router /reminders/{id} [delete]
func (h *ReminderHandler) Delete(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reminder ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(principal, id); err != nil {
		respondError(c, err, "Failed to delete reminder")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder deleted successfully"})
}
