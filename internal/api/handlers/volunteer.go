package handlers

import (
	"net/http"

	"volunteer-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// VolunteerHandler handles HTTP requests for the volunteer roster
type VolunteerHandler struct {
	volunteerService service.VolunteerServiceInterface
}

// NewVolunteerHandler creates a new volunteer handler
func NewVolunteerHandler(volunteerService service.VolunteerServiceInterface) *VolunteerHandler {
	return &VolunteerHandler{volunteerService: volunteerService}
}

// ListVolunteers handles GET /volunteers
// @Summary List volunteers
// @Tags volunteers
// @Produce json
// @Success 200 {array} models.Volunteer
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/volunteers [get]
func (h *VolunteerHandler) ListVolunteers(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	volunteers, err := h.volunteerService.List(c, actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, volunteers)
}

// CreateVolunteer handles POST /volunteers
// @Summary Add a volunteer
// @Description Roles are ministry names and may reference ministries that do not exist
// @Tags volunteers
// @Accept json
// @Produce json
// @Param volunteer body service.VolunteerRequest true "Volunteer"
// @Success 201 {object} models.Volunteer
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/volunteers [post]
func (h *VolunteerHandler) CreateVolunteer(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req service.VolunteerRequest
	if !bindJSON(c, &req) {
		return
	}
	volunteer, err := h.volunteerService.Create(c, actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, volunteer)
}

// UpdateVolunteer handles PUT /volunteers/:id
// @Summary Update a volunteer
// @Description Admins may update anyone; a volunteer may update their own entry
// @Tags volunteers
// @Accept json
// @Produce json
// @Param id path string true "Volunteer ID"
// @Param volunteer body service.VolunteerRequest true "Volunteer"
// @Success 200 {object} models.Volunteer
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/volunteers/{id} [put]
func (h *VolunteerHandler) UpdateVolunteer(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req service.VolunteerRequest
	if !bindJSON(c, &req) {
		return
	}
	volunteer, err := h.volunteerService.Update(c, actor, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, volunteer)
}

// DeleteVolunteer handles DELETE /volunteers/:id
// @Summary Remove a volunteer
// @Description Assignments referencing the volunteer are left in place
// @Tags volunteers
// @Param id path string true "Volunteer ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/volunteers/{id} [delete]
func (h *VolunteerHandler) DeleteVolunteer(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	if err := h.volunteerService.Remove(c, actor, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
