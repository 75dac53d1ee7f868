package handler

import (
	personnelapp "github.com/carbyfah/backend/internal/application/personnel"
	"github.com/gin-gonic/gin"
)

// CareerHandler handles career-history endpoints
type CareerHandler struct {
	BaseHandler
	careerService *personnelapp.CareerService
}

// NewCareerHandler creates a new CareerHandler
func NewCareerHandler(careerService *personnelapp.CareerService) *CareerHandler {
	return &CareerHandler{careerService: careerService}
}

// RegisterRoutes registers the career-history routes
func (h *CareerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	historial := rg.Group("/personal/historial-cargos")
	{
		historial.GET("/por-perfil/:perfilId", h.GetCareer)
	}
}

// GetCareer returns the position history of a profile together with
// the reconstructed transitions, promotions flagged.
func (h *CareerHandler) GetCareer(c *gin.Context) {
	profileID, err := pathUUID(c, "perfilId")
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	career, err := h.careerService.GetCareer(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, career)
}
