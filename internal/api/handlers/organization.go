package handlers

import (
	"net/http"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// OrganizationHandler handles HTTP requests for organizations
type OrganizationHandler struct {
	service service.OrganizationServiceInterface
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(service service.OrganizationServiceInterface) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

// Register handles POST /organizations/register
// @Summary Register a new organization
// @Description Creates an organization with its first admin user. The tenant
// @Description starts on the free plan with a 30-day trial.
// @Tags organizations
// @Accept json
// @Produce json
// @Param registration body service.RegisterOrganizationRequest true "Registration data"
// @Success 201 {object} service.RegisterOrganizationResponse "Organization registered"
// @Failure 400 {object} map[string]interface{} "Invalid registration data"
// @Failure 409 {object} map[string]interface{} "Slug, username or email already taken"
// @Router /organizations/register [post]
func (h *OrganizationHandler) Register(c *gin.Context) {
	var req service.RegisterOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Register(&req)
	if err != nil {
		respondError(c, err, "Failed to register organization")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// List handles GET /organizations/list
// @Summary List all organizations
// @Description Lists every organization with usage counters. Super admin only.
// @Tags organizations
// @Produce json
// @Success 200 {object} service.OrganizationListResponse "Organizations"
// @Failure 403 {object} map[string]interface{} "Super admin required"
// @Security BearerAuth
// @Router /organizations/list [get]
func (h *OrganizationHandler) List(c *gin.Context) {
	resp, err := h.service.ListAll()
	if err != nil {
		respondError(c, err, "Failed to list organizations")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Get handles GET /organizations/:id
// @Summary Get organization details
// @Description Regular users may only see their own organization
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.OrganizationResponse "Organization"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 403 {object} map[string]interface{} "Not a member of this organization"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id} [get]
func (h *OrganizationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	resp, err := h.service.GetByID(principal, id)
	if err != nil {
		respondError(c, err, "Failed to get organization")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateUser handles POST /users
// @Summary Create a user in the caller's organization
// @Description Admin only. Fails when the organization's user limit is reached.
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} service.CreateUserResponse "User created"
// @Failure 400 {object} map[string]interface{} "Invalid user data"
// @Failure 403 {object} map[string]interface{} "Admin required or user limit reached"
// @Failure 409 {object} map[string]interface{} "Username or email already taken"
// @Security BearerAuth
// @Router /users [post]
func (h *OrganizationHandler) CreateUser(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.CreateUser(principal, &req)
	if err != nil {
		respondError(c, err, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ToggleActive handles POST /organizations/:id/toggle-active
// @Summary Toggle an organization's active status
// @Description Flips the active flag. Super admin only.
// @Tags organizations
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Success 200 {object} service.ToggleActiveResponse "New status"
// @Failure 400 {object} map[string]interface{} "Invalid organization ID"
// @Failure 403 {object} map[string]interface{} "Super admin required"
// @Failure 404 {object} map[string]interface{} "Organization not found"
// @Security BearerAuth
// @Router /organizations/{id}/toggle-active [post]
func (h *OrganizationHandler) ToggleActive(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID: invalid UUID format"})
		return
	}

	resp, err := h.service.ToggleActive(id)
	if err != nil {
		respondError(c, err, "Failed to toggle organization status")
		return
	}

	c.JSON(http.StatusOK, resp)
}
