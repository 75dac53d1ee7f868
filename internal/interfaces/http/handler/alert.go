package handler

import (
	personnelapp "github.com/carbyfah/backend/internal/application/personnel"
	"github.com/gin-gonic/gin"
)

// AlertHandler handles expiration-alert endpoints
type AlertHandler struct {
	BaseHandler
	alertService *personnelapp.AlertService
}

// NewAlertHandler creates a new AlertHandler
func NewAlertHandler(alertService *personnelapp.AlertService) *AlertHandler {
	return &AlertHandler{alertService: alertService}
}

// RegisterRoutes registers the expiration-alert routes
func (h *AlertHandler) RegisterRoutes(rg *gin.RouterGroup) {
	alertas := rg.Group("/personal/alertas-vencimiento")
	{
		alertas.GET("/listado", h.List)
		alertas.GET("/conteo", h.Count)
	}
}

// List returns assignments and role grants expiring inside the window,
// most urgent first.
func (h *AlertHandler) List(c *gin.Context) {
	alerts, err := h.alertService.ListExpiring(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"ventana_dias": h.alertService.WindowDays(),
		"alertas":      alerts,
	})
}

// Count returns the number of pending expiration alerts
func (h *AlertHandler) Count(c *gin.Context) {
	count, err := h.alertService.CountExpiring(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"total": count})
}
