package handlers

import (
	"net/http"

	"volunteer-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// NotificationHandler manages push subscriptions
type NotificationHandler struct {
	notificationService service.NotificationServiceInterface
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService service.NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// UnsubscribeRequest names the subscription endpoint to drop
type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint"`
}

// GetConfig handles GET /notifications/config
// @Summary Notification mode and VAPID public key
// @Tags notifications
// @Produce json
// @Success 200 {object} service.NotificationConfig
// @Security BearerAuth
// @Router /api/v1/notifications/config [get]
func (h *NotificationHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.notificationService.Config())
}

// Subscribe handles POST /notifications/subscriptions
// @Summary Register a browser push subscription
// @Description In simulated mode nothing is stored and mode is reported as simulated
// @Tags notifications
// @Accept json
// @Produce json
// @Param subscription body service.SubscriptionRequest true "PushSubscription JSON"
// @Success 200 {object} service.NotificationConfig
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notifications/subscriptions [post]
func (h *NotificationHandler) Subscribe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.SubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}
	cfg, err := h.notificationService.Subscribe(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// Unsubscribe handles DELETE /notifications/subscriptions
// @Summary Remove a push subscription
// @Tags notifications
// @Accept json
// @Param endpoint query string false "Subscription endpoint"
// @Param request body UnsubscribeRequest false "Subscription endpoint"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/notifications/subscriptions [delete]
func (h *NotificationHandler) Unsubscribe(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	endpoint := c.Query("endpoint")
	if endpoint == "" {
		var req UnsubscribeRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			endpoint = req.Endpoint
		}
	}
	if endpoint == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "endpoint is required"})
		return
	}
	if err := h.notificationService.Unsubscribe(c, actor, endpoint); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SendTest handles POST /notifications/test
// @Summary Send a test notification to the caller
// @Tags notifications
// @Produce json
// @Success 200 {object} service.TestNotificationResponse
// @Security BearerAuth
// @Router /api/v1/notifications/test [post]
func (h *NotificationHandler) SendTest(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	resp, err := h.notificationService.SendTest(c, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
