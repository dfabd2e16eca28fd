package handlers

import (
	"net/http"

	"volunteer-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MinistryHandler handles HTTP requests for ministries
type MinistryHandler struct {
	ministryService service.MinistryServiceInterface
}

// NewMinistryHandler creates a new ministry handler
func NewMinistryHandler(ministryService service.MinistryServiceInterface) *MinistryHandler {
	return &MinistryHandler{ministryService: ministryService}
}

// ListMinistries handles GET /ministries
// @Summary List ministries
// @Tags ministries
// @Produce json
// @Success 200 {array} models.Ministry
// @Security BearerAuth
// @Router /api/v1/ministries [get]
func (h *MinistryHandler) ListMinistries(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	ministries, err := h.ministryService.List(c, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ministries)
}

// CreateMinistry handles POST /ministries
// @Summary Create a ministry
// @Tags ministries
// @Accept json
// @Produce json
// @Param ministry body service.MinistryRequest true "Ministry"
// @Success 201 {object} models.Ministry
// @Failure 400 {object} ErrorResponse "Unknown icon"
// @Failure 409 {object} ErrorResponse "Name already used, ignoring case"
// @Security BearerAuth
// @Router /api/v1/ministries [post]
func (h *MinistryHandler) CreateMinistry(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.MinistryRequest
	if !bindJSON(c, &req) {
		return
	}
	ministry, err := h.ministryService.Create(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ministry)
}

// DeleteMinistry handles DELETE /ministries/:name
// @Summary Remove a ministry
// @Description Volunteers keep the role name; removing a missing ministry succeeds
// @Tags ministries
// @Param name path string true "Ministry name"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/ministries/{name} [delete]
func (h *MinistryHandler) DeleteMinistry(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.ministryService.Remove(c, actor, c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
