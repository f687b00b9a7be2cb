package handlers

import (
	"net/http"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/repository"
	"medcheck-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChecklistHandler handles HTTP requests for checklist entries
type ChecklistHandler struct {
	service service.ChecklistServiceInterface
}

// NewChecklistHandler creates a new checklist handler
func NewChecklistHandler(service service.ChecklistServiceInterface) *ChecklistHandler {
	return &ChecklistHandler{service: service}
}

// Create handles POST /checklist
// @Summary Record a checklist entry
// @Description Records a ten-point safety check. The entry is stamped with
// @Description the caller's username and organization.
// @Tags checklist
// @Accept json
// @Produce json
// @Param entry body service.ChecklistEntryRequest true "Checklist entry"
// @Success 201 {object} service.ChecklistEntryResponse "Created entry"
// @Failure 400 {object} map[string]interface{} "Invalid entry"
// @Security BearerAuth
// @Router /checklist [post]
func (h *ChecklistHandler) Create(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.ChecklistEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	entry, err := h.service.Create(principal, &req)
	if err != nil {
		respondError(c, err, "Failed to create checklist entry")
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// List handles GET /checklist
// @Summary List checklist entries
// @Description Lists the organization's entries, newest first, with optional
// @Description area and date filters.
// @Tags checklist
// @Produce json
// @Param area query string false "Filter by clinical area"
// @Param start_date query string false "Entries at or after this date"
// @Param end_date query string false "Entries at or before this date"
// @Param limit query int false "Page size (default 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} service.ChecklistListResponse "Entries"
// @Security BearerAuth
// @Router /checklist [get]
func (h *ChecklistHandler) List(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	filter := repository.ChecklistFilter{
		Area:      c.Query("area"),
		StartDate: queryDate(c, "start_date"),
		EndDate:   queryDate(c, "end_date"),
		Limit:     queryInt(c, "limit", 100),
		Offset:    queryInt(c, "offset", 0),
	}

	resp, err := h.service.List(principal.OrganizationID, filter)
	if err != nil {
		respondError(c, err, "Failed to list checklist entries")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /checklist/:id
// @Summary Get a single checklist entry
// @Tags checklist
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Success 200 {object} service.ChecklistEntryResponse "Entry"
// @Failure 400 {object} map[string]interface{} "Invalid entry ID"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Security BearerAuth
// @Router /checklist/{id} [get]
func (h *ChecklistHandler) Get(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID: invalid UUID format"})
		return
	}

	entry, err := h.service.GetByID(principal.OrganizationID, id)
	if err != nil {
		respondError(c, err, "Failed to get checklist entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Update handles PUT /checklist/:id
// @Summary Update a checklist entry
// @Tags checklist
// @Accept json
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Param entry body service.ChecklistEntryRequest true "Updated entry"
// @Success 200 {object} service.ChecklistEntryResponse "Updated entry"
// @Failure 400 {object} map[string]interface{} "Invalid entry"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Security BearerAuth
// @Router /checklist/{id} [put]
func (h *ChecklistHandler) Update(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID: invalid UUID format"})
		return
	}

	var req service.ChecklistEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	entry, err := h.service.Update(principal.OrganizationID, id, &req)
	if err != nil {
		respondError(c, err, "Failed to update checklist entry")
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /checklist/:id
// @Summary Delete a checklist entry
// @Description Removes an entry. Admin only.
// @Tags checklist
// @Produce json
// @Param id path string true "Entry ID (UUID)"
// @Success 200 {object} map[string]interface{} "Entry deleted"
// @Failure 400 {object} map[string]interface{} "Invalid entry ID"
// @Failure 403 {object} map[string]interface{} "Admin required"
// @Failure 404 {object} map[string]interface{} "Entry not found"
// @Security BearerAuth
// @Router /checklist/{id} [delete]
func (h *ChecklistHandler) Delete(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(principal.OrganizationID, id); err != nil {
		respondError(c, err, "Failed to delete checklist entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Checklist entry deleted successfully"})
}
