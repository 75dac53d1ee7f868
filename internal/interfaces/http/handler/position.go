package handler

import (
	orgapp "github.com/carbyfah/backend/internal/application/organization"
	"github.com/carbyfah/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PositionHandler handles position (cargo) endpoints
type PositionHandler struct {
	BaseHandler
	positionService *orgapp.PositionService
}

// NewPositionHandler creates a new PositionHandler
func NewPositionHandler(positionService *orgapp.PositionService) *PositionHandler {
	return &PositionHandler{positionService: positionService}
}

// RegisterRoutes registers the position routes
func (h *PositionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cargos := rg.Group("/organizacion/cargos")
	{
		cargos.GET("/:id", h.GetByID)
		cargos.GET("/por-unidad/:unidadId", h.ListByUnit)
		cargos.POST("", middleware.RequireWrite(), h.Create)
		cargos.PUT("/:id", middleware.RequireWrite(), h.Update)
		cargos.POST("/:id/desactivar", middleware.RequireWrite(), h.Deactivate)
		cargos.DELETE("/:id", middleware.RequireWrite(), h.Delete)
	}
}

// Create registers a new position inside a unit
func (h *PositionHandler) Create(c *gin.Context) {
	var req orgapp.CreatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = actorID(c)

	position, err := h.positionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, position)
}

// GetByID retrieves a position by ID
func (h *PositionHandler) GetByID(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid position ID format")
		return
	}

	position, err := h.positionService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, position)
}

// ListByUnit retrieves the positions of a unit
func (h *PositionHandler) ListByUnit(c *gin.Context) {
	unitID, err := pathUUID(c, "unidadId")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	positions, err := h.positionService.ListByUnit(c.Request.Context(), unitID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, positions)
}

// Update modifies a position
func (h *PositionHandler) Update(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid position ID format")
		return
	}

	var req orgapp.UpdatePositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	position, err := h.positionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, position)
}

// Deactivate marks a position inactive
func (h *PositionHandler) Deactivate(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid position ID format")
		return
	}

	if err := h.positionService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete soft-deletes a position
func (h *PositionHandler) Delete(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid position ID format")
		return
	}

	deletedBy, err := mustActorID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.positionService.Delete(c.Request.Context(), id, deletedBy); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
