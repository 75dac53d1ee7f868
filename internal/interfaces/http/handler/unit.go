package handler

import (
	"strconv"

	orgapp "github.com/carbyfah/backend/internal/application/organization"
	"github.com/carbyfah/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// UnitHandler handles organizational-unit endpoints
type UnitHandler struct {
	BaseHandler
	unitService *orgapp.UnitService
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(unitService *orgapp.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// RegisterRoutes registers the organizational-unit routes
func (h *UnitHandler) RegisterRoutes(rg *gin.RouterGroup) {
	unidades := rg.Group("/organizacion/estructura-militar")
	{
		unidades.GET("", h.List)
		unidades.GET("/:id", h.GetByID)
		unidades.GET("/:id/hijas", h.GetChildren)
		unidades.GET("/:id/jerarquia", h.GetHierarchyPath)
		unidades.POST("", middleware.RequireWrite(), h.Create)
		unidades.PUT("/:id", middleware.RequireWrite(), h.Update)
		unidades.POST("/:id/desactivar", middleware.RequireWrite(), h.Deactivate)
		unidades.POST("/:id/reactivar", middleware.RequireWrite(), h.Reactivate)
		unidades.DELETE("/:id", middleware.RequireWrite(), h.Delete)
	}
}

// Create registers a new unit in the tree
func (h *UnitHandler) Create(c *gin.Context) {
	var req orgapp.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = actorID(c)

	unit, err := h.unitService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, unit)
}

// GetByID retrieves a unit by ID
func (h *UnitHandler) GetByID(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	unit, err := h.unitService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, unit)
}

// List retrieves units, optionally only the operational ones
func (h *UnitHandler) List(c *gin.Context) {
	onlyOperational, _ := strconv.ParseBool(c.DefaultQuery("solo_operativas", "false"))

	units, err := h.unitService.List(c.Request.Context(), onlyOperational)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, units)
}

// GetChildren retrieves the direct children of a unit
func (h *UnitHandler) GetChildren(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	children, err := h.unitService.GetChildren(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, children)
}

// GetHierarchyPath retrieves the root-first command chain of a unit
func (h *UnitHandler) GetHierarchyPath(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	path, err := h.unitService.GetHierarchyPath(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, path)
}

// Update modifies a unit, including reparenting with cycle guard
func (h *UnitHandler) Update(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	var req orgapp.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	unit, err := h.unitService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, unit)
}

// Deactivate schedules or applies a unit deactivation
func (h *UnitHandler) Deactivate(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	// Body is optional; absence deactivates immediately.
	var req orgapp.DeactivateUnitRequest
	_ = c.ShouldBindJSON(&req)
	req.UpdatedBy = actorID(c)

	unit, err := h.unitService.Deactivate(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, unit)
}

// Reactivate clears a unit's deactivation
func (h *UnitHandler) Reactivate(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	unit, err := h.unitService.Reactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, unit)
}

// Delete soft-deletes a unit without children
func (h *UnitHandler) Delete(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	deletedBy, err := mustActorID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.unitService.Delete(c.Request.Context(), id, deletedBy); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
