package handler

import (
	orgapp "github.com/carbyfah/backend/internal/application/organization"
	"github.com/carbyfah/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// FunctionalRoleHandler handles functional-role catalog endpoints
type FunctionalRoleHandler struct {
	BaseHandler
	roleService *orgapp.FunctionalRoleService
}

// NewFunctionalRoleHandler creates a new FunctionalRoleHandler
func NewFunctionalRoleHandler(roleService *orgapp.FunctionalRoleService) *FunctionalRoleHandler {
	return &FunctionalRoleHandler{roleService: roleService}
}

// RegisterRoutes registers the functional-role routes
func (h *FunctionalRoleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	roles := rg.Group("/organizacion/roles-funcionales")
	{
		roles.GET("", h.List)
		roles.GET("/:id", h.GetByID)
		roles.POST("", middleware.RequireAdmin(), h.Create)
		roles.PUT("/:id", middleware.RequireAdmin(), h.Update)
		roles.POST("/:id/desactivar", middleware.RequireAdmin(), h.Deactivate)
		roles.DELETE("/:id", middleware.RequireAdmin(), h.Delete)
	}
}

// Create registers a new functional role
func (h *FunctionalRoleHandler) Create(c *gin.Context) {
	var req orgapp.CreateFunctionalRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = actorID(c)

	role, err := h.roleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, role)
}

// GetByID retrieves a functional role by ID
func (h *FunctionalRoleHandler) GetByID(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role ID format")
		return
	}

	role, err := h.roleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, role)
}

// List retrieves functional roles ordered by authority
func (h *FunctionalRoleHandler) List(c *gin.Context) {
	roles, err := h.roleService.List(c.Request.Context(), onlyActive(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, roles)
}

// Update modifies a functional role
func (h *FunctionalRoleHandler) Update(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role ID format")
		return
	}

	var req orgapp.UpdateFunctionalRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	role, err := h.roleService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, role)
}

// Deactivate marks a functional role inactive
func (h *FunctionalRoleHandler) Deactivate(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role ID format")
		return
	}

	if err := h.roleService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete soft-deletes a functional role
func (h *FunctionalRoleHandler) Delete(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role ID format")
		return
	}

	deletedBy, err := mustActorID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.roleService.Delete(c.Request.Context(), id, deletedBy); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
