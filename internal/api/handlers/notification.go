package handlers

import (
	"net/http"

	"medcheck-backend/internal/auth"
	"medcheck-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler handles HTTP requests for web push subscriptions
type NotificationHandler struct {
	service service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(service service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// Subscribe handles POST /notifications/subscribe
// @Summary Register a push subscription
// @Description Stores the browser's push subscription for the caller.
// @Description Re-subscribing with the same endpoint refreshes the keys.
// @Tags notifications
// @Accept json
// @Produce json
// @Param subscription body service.SubscribeRequest true "Push subscription"
// @Success 201 {object} service.MessageResponse "Subscription saved"
// @Failure 400 {object} map[string]interface{} "Missing endpoint or keys"
// @Security BearerAuth
// @Router /notifications/subscribe [post]
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Subscribe(principal, &req)
	if err != nil {
		respondError(c, err, "Failed to save subscription")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Unsubscribe handles DELETE /notifications/unsubscribe
// @Summary Remove a push subscription
// @Tags notifications
// @Accept json
// @Produce json
// @Param subscription body service.UnsubscribeRequest true "Endpoint to remove"
// @Success 200 {object} service.MessageResponse "Subscription removed"
// @Failure 400 {object} map[string]interface{} "Missing endpoint"
// @Failure 404 {object} map[string]interface{} "Subscription not found"
// @Security BearerAuth
// @Router /notifications/unsubscribe [delete]
func (h *NotificationHandler) Unsubscribe(c *gin.Context) {
	principal, ok := auth.CurrentPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req service.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Unsubscribe(principal, &req)
	if err != nil {
		respondError(c, err, "Failed to remove subscription")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VAPIDPublicKey handles GET /notifications/vapid-public-key
// @Summary Get the server's public VAPID key
// @Tags notifications
// @Produce json
// @Success 200 {object} service.VAPIDPublicKeyResponse "Public key"
// @Router /notifications/vapid-public-key [get]
func (h *NotificationHandler) VAPIDPublicKey(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.VAPIDPublicKey())
}
