package handler

import (
	"fmt"
	"net/http"
	"time"

	orgapp "github.com/carbyfah/backend/internal/application/organization"
	"github.com/gin-gonic/gin"
)

// OrganigramHandler handles organigram read and export endpoints
type OrganigramHandler struct {
	BaseHandler
	organigramService *orgapp.OrganigramService
}

// NewOrganigramHandler creates a new OrganigramHandler
func NewOrganigramHandler(organigramService *orgapp.OrganigramService) *OrganigramHandler {
	return &OrganigramHandler{organigramService: organigramService}
}

// RegisterRoutes registers the organigram routes
func (h *OrganigramHandler) RegisterRoutes(rg *gin.RouterGroup) {
	organigrama := rg.Group("/organizacion/organigrama")
	{
		organigrama.GET("", h.GetTree)
		organigrama.GET("/exportar/pdf", h.ExportPDF)
		organigrama.GET("/:id", h.GetUnit)
	}
}

// GetTree returns the full organizational tree with assigned personnel
func (h *OrganigramHandler) GetTree(c *gin.Context) {
	tree, err := h.organigramService.GetTree(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tree)
}

// GetUnit returns the organigram entry of a single unit
func (h *OrganigramHandler) GetUnit(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	row, err := h.organigramService.GetUnit(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, row)
}

// ExportPDF renders the organigram as a downloadable PDF
func (h *OrganigramHandler) ExportPDF(c *gin.Context) {
	pdf, err := h.organigramService.ExportPDF(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	fileName := fmt.Sprintf("organigrama_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
