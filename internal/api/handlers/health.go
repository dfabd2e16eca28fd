package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
var Version = "1.0.0"

const dbPingTimeout = 2 * time.Second

var errNoDatabase = errors.New("database not configured")

// HealthHandler reports process, database and notification state.
type HealthHandler struct {
	db               *gorm.DB
	notificationMode string
}

// NewHealthHandler takes the notification mode as reported by the
// notification service ("push" or "simulated").
func NewHealthHandler(db *gorm.DB, notificationMode string) *HealthHandler {
	return &HealthHandler{db: db, notificationMode: notificationMode}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// Health
// @Summary Health check
// @Description Overall health including database connectivity and notification mode
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	dbErr := h.pingDatabase(c)

	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   Version,
		Services: map[string]string{
			"database":      describe(dbErr, "healthy"),
			"notifications": h.notificationMode,
		},
	}
	if dbErr != nil {
		resp.Status = "unhealthy"
	}
	c.JSON(statusFor(dbErr), resp)
}

// Ready
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	dbErr := h.pingDatabase(c)
	c.JSON(statusFor(dbErr), gin.H{
		"ready":     dbErr == nil,
		"timestamp": time.Now().UTC(),
		"services":  gin.H{"database": describe(dbErr, "ready")},
	})
}

// Live
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true, "timestamp": time.Now().UTC()})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return errNoDatabase
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}

func describe(err error, ok string) string {
	if err != nil {
		return "error: " + err.Error()
	}
	return ok
}

func statusFor(err error) int {
	if err != nil {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
