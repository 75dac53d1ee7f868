package handler

import (
	personnelapp "github.com/carbyfah/backend/internal/application/personnel"
	"github.com/gin-gonic/gin"
)

// DashboardHandler handles the summary-counters endpoint
type DashboardHandler struct {
	BaseHandler
	dashboardService *personnelapp.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(dashboardService *personnelapp.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// RegisterRoutes registers the dashboard route
func (h *DashboardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/personal/dashboard", h.GetSummary)
}

// GetSummary returns the active-personnel and vigente counters
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
