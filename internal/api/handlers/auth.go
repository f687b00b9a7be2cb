package handlers

import (
	"net/http"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service service.AuthServiceInterface
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service service.AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

type verifyTokenRequest struct {
	Token string `json:"token"`
}

// Login handles POST /auth/login
// @Summary Log in with username and password
// @Description Authenticates a user and returns a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse "Successfully authenticated"
// @Failure 400 {object} map[string]interface{} "Missing credentials"
// @Failure 401 {object} map[string]interface{} "Invalid credentials or inactive account"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Login(&req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /auth/me
// @Summary Get the authenticated user's profile
// @Tags auth
// @Produce json
// @Success 200 {object} service.UserResponse "Current user"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := h.service.CurrentUser(principal.ID)
	if err != nil {
		respondError(c, err, "Failed to get user info")
		return
	}

	c.JSON(http.StatusOK, user)
}

// Verify handles POST /auth/verify
// @Summary Verify a bearer token
// @Description Checks a token and returns its claims. An invalid token yields
// @Description a 200 response with valid set to false.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body handlers.verifyTokenRequest true "Token to verify"
// @Success 200 {object} service.VerifyTokenResponse "Verification result"
// @Failure 400 {object} map[string]interface{} "Missing token"
// @Router /auth/verify [post]
func (h *AuthHandler) Verify(c *gin.Context) {
	var req verifyTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false, "error": "Token is required"})
		return
	}

	c.JSON(http.StatusOK, h.service.VerifyToken(req.Token))
}
