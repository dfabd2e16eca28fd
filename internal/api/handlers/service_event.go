package handlers

import (
	"net/http"
	"strconv"

	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ServiceEventHandler handles HTTP requests for services and their assignments
type ServiceEventHandler struct {
	serviceEventService service.ServiceEventServiceInterface
}

// NewServiceEventHandler creates a new service event handler
func NewServiceEventHandler(serviceEventService service.ServiceEventServiceInterface) *ServiceEventHandler {
	return &ServiceEventHandler{serviceEventService: serviceEventService}
}

// AssignmentStatusRequest carries a volunteer's response to an assignment
type AssignmentStatusRequest struct {
	Status models.AssignmentStatus `json:"status" binding:"required" example:"confirmed"`
}

// ListServices handles GET /services
// @Summary List services
// @Description Services ordered by date, optionally limited to [from, to]
// @Tags services
// @Produce json
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Success 200 {array} models.ServiceEvent
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/services [get]
func (h *ServiceEventHandler) ListServices(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	services, err := h.serviceEventService.List(c, actor, c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// CreateService handles POST /services
// @Summary Create a service
// @Description Newly assigned volunteers are notified
// @Tags services
// @Accept json
// @Produce json
// @Param service body service.ServiceEventRequest true "Service"
// @Success 201 {object} models.ServiceEvent
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/services [post]
func (h *ServiceEventHandler) CreateService(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.ServiceEventRequest
	if !bindJSON(c, &req) {
		return
	}
	svc, err := h.serviceEventService.Create(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// CreateRecurringServices handles POST /services/recurring
// @Summary Create services from a recurrence rule
// @Tags services
// @Accept json
// @Produce json
// @Param recurrence body service.RecurringRequest true "Recurrence"
// @Success 201 {array} models.ServiceEvent
// @Failure 400 {object} ErrorResponse "Invalid rule or too many occurrences"
// @Security BearerAuth
// @Router /api/v1/services/recurring [post]
func (h *ServiceEventHandler) CreateRecurringServices(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.RecurringRequest
	if !bindJSON(c, &req) {
		return
	}
	services, err := h.serviceEventService.CreateRecurring(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, services)
}

// UpdateService handles PUT /services/:id
// @Summary Replace a service
// @Description Updating a missing service succeeds without effect
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param service body service.ServiceEventRequest true "Service"
// @Success 200 {object} models.ServiceEvent
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/services/{id} [put]
func (h *ServiceEventHandler) UpdateService(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.ServiceEventRequest
	if !bindJSON(c, &req) {
		return
	}
	svc, err := h.serviceEventService.Update(c, actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteService handles DELETE /services/:id
// @Summary Remove a service
// @Tags services
// @Param id path string true "Service ID"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/services/{id} [delete]
func (h *ServiceEventHandler) DeleteService(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.serviceEventService.Remove(c, actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddAssignment handles POST /services/:id/assignments
// @Summary Assign a volunteer to a role
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param assignment body service.AssignmentRequest true "Assignment"
// @Success 200 {object} models.ServiceEvent
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/services/{id}/assignments [post]
func (h *ServiceEventHandler) AddAssignment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.AssignmentRequest
	if !bindJSON(c, &req) {
		return
	}
	svc, err := h.serviceEventService.AddAssignment(c, actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// AssignTeam handles POST /services/:id/team-assignments
// @Summary Assign every member of a team to a role
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param assignment body service.TeamAssignmentRequest true "Team assignment"
// @Success 200 {object} models.ServiceEvent
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/services/{id}/team-assignments [post]
func (h *ServiceEventHandler) AssignTeam(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.TeamAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}
	svc, err := h.serviceEventService.AssignTeam(c, actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// RemoveAssignment handles DELETE /services/:id/assignments/:index
// @Summary Remove the assignment at a position
// @Tags services
// @Produce json
// @Param id path string true "Service ID"
// @Param index path int true "Assignment position"
// @Success 200 {object} models.ServiceEvent
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/services/{id}/assignments/{index} [delete]
func (h *ServiceEventHandler) RemoveAssignment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	svc, err := h.serviceEventService.RemoveAssignment(c, actor, id, index)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// RespondToAssignment handles PUT /services/:id/assignments/:index/status
// @Summary Confirm or decline an assignment
// @Description Only the assigned volunteer may respond
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param index path int true "Assignment position"
// @Param status body AssignmentStatusRequest true "Response"
// @Success 200 {object} models.ServiceEvent
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/services/{id}/assignments/{index}/status [put]
func (h *ServiceEventHandler) RespondToAssignment(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	index, ok := indexParam(c)
	if !ok {
		return
	}
	var req AssignmentStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	svc, err := h.serviceEventService.RespondToAssignment(c, actor, id, index, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// EligibleVolunteers handles GET /services/eligible-volunteers
// @Summary Volunteers who can serve a role
// @Description Volunteers holding the role, excluding those unavailable on date
// @Tags services
// @Produce json
// @Param role query string true "Role (ministry name)"
// @Param date query string false "Service date (YYYY-MM-DD)"
// @Success 200 {array} models.Volunteer
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/services/eligible-volunteers [get]
func (h *ServiceEventHandler) EligibleVolunteers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	role := c.Query("role")
	if role == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "role query parameter is required"})
		return
	}
	volunteers, err := h.serviceEventService.EligibleVolunteers(c, actor, role, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, volunteers)
}

func indexParam(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid index: must be a non-negative integer"})
		return 0, false
	}
	return index, true
}
