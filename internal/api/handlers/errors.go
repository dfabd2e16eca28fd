package handlers

import (
	"net/http"

	"volunteer-scheduler-backend/internal/auth"
	apperrors "volunteer-scheduler-backend/internal/errors"
	"volunteer-scheduler-backend/internal/logger"
	"volunteer-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error     string `json:"error" example:"Not found"`
	Details   string `json:"details,omitempty" example:"service not found"`
	Retryable bool   `json:"retryable,omitempty"`
}

// StatusForError maps the application error taxonomy to an HTTP status.
// Generation errors are checked first because they may wrap a
// configuration error.
func StatusForError(err error) int {
	switch {
	case apperrors.IsGeneration(err):
		return http.StatusBadGateway
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsAuthentication(err):
		return http.StatusUnauthorized
	case apperrors.IsAuthorization(err):
		return http.StatusForbidden
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err):
		return http.StatusConflict
	case apperrors.IsConfiguration(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

var errorTitles = map[int]string{
	http.StatusBadRequest:          "Invalid request",
	http.StatusUnauthorized:        "Authentication failed",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Not found",
	http.StatusConflict:            "Already exists",
	http.StatusBadGateway:          "Schedule generation failed",
	http.StatusServiceUnavailable:  "Service not configured",
	http.StatusInternalServerError: "Backend error",
}

// respondError writes err as {"error", "details"} with the mapped status
func respondError(c *gin.Context, err error) {
	status := StatusForError(err)
	resp := ErrorResponse{Error: errorTitles[status], Details: err.Error()}
	if apperrors.IsGeneration(err) {
		resp.Retryable = true
	}
	if status >= http.StatusInternalServerError {
		logger.WithContext(c).WithField("status", status).Errorf("Request failed: %v", err)
	}
	c.JSON(status, resp)
}

// currentActor reads the authenticated caller; it writes 401 when absent
func currentActor(c *gin.Context) (service.Actor, bool) {
	claims, ok := auth.GetAuthClaims(c)
	if !ok {
		respondError(c, apperrors.ErrMissingClaims)
		return service.Actor{}, false
	}
	return service.ActorFromClaims(claims), true
}

// uuidParam parses a path parameter as UUID; it writes 400 when invalid
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name + ": invalid UUID format"})
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body", Details: err.Error()})
		return false
	}
	return true
}
