package handlers

import (
	"net/http"

	"volunteer-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EventTypeHandler handles HTTP requests for event types
type EventTypeHandler struct {
	eventTypeService service.EventTypeServiceInterface
}

// NewEventTypeHandler creates a new event type handler
func NewEventTypeHandler(eventTypeService service.EventTypeServiceInterface) *EventTypeHandler {
	return &EventTypeHandler{eventTypeService: eventTypeService}
}

// ListEventTypes handles GET /event-types
// @Summary List event types
// @Tags event-types
// @Produce json
// @Success 200 {array} models.EventType
// @Security BearerAuth
// @Router /api/v1/event-types [get]
func (h *EventTypeHandler) ListEventTypes(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	eventTypes, err := h.eventTypeService.List(c, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eventTypes)
}

// CreateEventType handles POST /event-types
// @Summary Create an event type
// @Tags event-types
// @Accept json
// @Produce json
// @Param eventType body service.EventTypeRequest true "Event type"
// @Success 201 {object} models.EventType
// @Failure 400 {object} ErrorResponse "Unknown color"
// @Security BearerAuth
// @Router /api/v1/event-types [post]
func (h *EventTypeHandler) CreateEventType(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.EventTypeRequest
	if !bindJSON(c, &req) {
		return
	}
	eventType, err := h.eventTypeService.Create(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, eventType)
}

// DeleteEventType handles DELETE /event-types/:id
// @Summary Remove an event type
// @Tags event-types
// @Param id path string true "Event type ID"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/event-types/{id} [delete]
func (h *EventTypeHandler) DeleteEventType(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.eventTypeService.Remove(c, actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
