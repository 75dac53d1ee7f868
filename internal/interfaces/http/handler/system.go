package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemHandler handles health and readiness endpoints
type SystemHandler struct {
	BaseHandler
	db      *gorm.DB
	service string
	version string
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *gorm.DB, service, version string) *SystemHandler {
	return &SystemHandler{db: db, service: service, version: version}
}

// RegisterRoutes registers the health route under the API group
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", h.Health)
}

// Health reports service liveness and database connectivity
func (h *SystemHandler) Health(c *gin.Context) {
	status := "ok"
	dbStatus := "ok"

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			status = "degraded"
			dbStatus = "unreachable"
		}
	}

	httpStatus := http.StatusOK
	if status != "ok" {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, gin.H{
		"status":   status,
		"service":  h.service,
		"version":  h.version,
		"database": dbStatus,
		"time":     time.Now().UTC().Format(time.RFC3339),
	})
}
