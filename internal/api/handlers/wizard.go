package handlers

import (
	"net/http"

	"volunteer-scheduler-backend/internal/database/models"
	"volunteer-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// WizardHandler tracks onboarding wizard progress
type WizardHandler struct {
	wizardService service.WizardServiceInterface
}

// NewWizardHandler creates a new wizard handler
func NewWizardHandler(wizardService service.WizardServiceInterface) *WizardHandler {
	return &WizardHandler{wizardService: wizardService}
}

// WizardStepRequest sets the wizard to an explicit step
type WizardStepRequest struct {
	Step *int `json:"step" binding:"required" example:"2"`
}

// GetWizard handles GET /wizard/:scope
// @Summary Current wizard step
// @Tags wizard
// @Produce json
// @Param scope path string true "organization or user"
// @Success 200 {object} service.WizardState
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/wizard/{scope} [get]
func (h *WizardHandler) GetWizard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	state, err := h.wizardService.Get(c, actor, models.WizardScope(c.Param("scope")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// AdvanceWizard handles POST /wizard/:scope/advance
// @Summary Move to the next step
// @Description Does nothing once the terminal step is reached
// @Tags wizard
// @Produce json
// @Param scope path string true "organization or user"
// @Success 200 {object} service.WizardState
// @Security BearerAuth
// @Router /api/v1/wizard/{scope}/advance [post]
func (h *WizardHandler) AdvanceWizard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	state, err := h.wizardService.Advance(c, actor, models.WizardScope(c.Param("scope")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// SetWizardStep handles PUT /wizard/:scope
// @Summary Jump to a step
// @Tags wizard
// @Accept json
// @Produce json
// @Param scope path string true "organization or user"
// @Param step body WizardStepRequest true "Step"
// @Success 200 {object} service.WizardState
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/wizard/{scope} [put]
func (h *WizardHandler) SetWizardStep(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req WizardStepRequest
	if !bindJSON(c, &req) {
		return
	}
	state, err := h.wizardService.SetStep(c, actor, models.WizardScope(c.Param("scope")), *req.Step)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

// ResetWizard handles DELETE /wizard/:scope
// @Summary Forget wizard progress
// @Tags wizard
// @Param scope path string true "organization or user"
// @Success 204
// @Security BearerAuth
// @Router /api/v1/wizard/{scope} [delete]
func (h *WizardHandler) ResetWizard(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.wizardService.Reset(c, actor, models.WizardScope(c.Param("scope"))); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
