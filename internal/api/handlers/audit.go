package handlers

import (
	"net/http"
	"strconv"

	"volunteer-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuditHandler lists the organization audit log
type AuditHandler struct {
	auditService service.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService service.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListAuditLog handles GET /audit-logs
// @Summary Recent changes in the organization
// @Tags audit
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(50)
// @Success 200 {object} service.AuditLogListResponse
// @Failure 403 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/v1/audit-logs [get]
func (h *AuditHandler) ListAuditLog(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "50"))

	resp, err := h.auditService.List(c, actor, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
