package handlers

import (
	"net/http"

	"volunteer-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler exposes the AI draft generator
type ScheduleHandler struct {
	generator service.ScheduleGeneratorInterface
}

// NewScheduleHandler creates a new schedule handler
func NewScheduleHandler(generator service.ScheduleGeneratorInterface) *ScheduleHandler {
	return &ScheduleHandler{generator: generator}
}

// GenerateSchedule handles POST /schedule/generate
// @Summary Draft services for a date range
// @Description Returns unsaved drafts. Names the model invents are dropped.
// @Tags schedule
// @Accept json
// @Produce json
// @Param request body service.GenerateRequest true "Date range and instructions"
// @Success 200 {array} models.ServiceEvent
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse "Generation failed, retry is possible"
// @Security BearerAuth
// @Router /api/v1/schedule/generate [post]
func (h *ScheduleHandler) GenerateSchedule(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.GenerateRequest
	if !bindJSON(c, &req) {
		return
	}
	drafts, err := h.generator.Generate(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, drafts)
}
