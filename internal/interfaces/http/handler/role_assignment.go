package handler

import (
	personnelapp "github.com/carbyfah/backend/internal/application/personnel"
	"github.com/carbyfah/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// RoleAssignmentHandler handles functional-role grant endpoints
type RoleAssignmentHandler struct {
	BaseHandler
	roleService *personnelapp.RoleService
}

// NewRoleAssignmentHandler creates a new RoleAssignmentHandler
func NewRoleAssignmentHandler(roleService *personnelapp.RoleService) *RoleAssignmentHandler {
	return &RoleAssignmentHandler{roleService: roleService}
}

// RegisterRoutes registers the role-grant routes
func (h *RoleAssignmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	roles := rg.Group("/personal/asignacion-roles")
	{
		roles.GET("/:id", h.GetByID)
		roles.GET("/por-perfil/:perfilId", h.ListByProfile)
		roles.GET("/por-vencer/listado", h.ListExpiring)
		roles.POST("", middleware.RequireWrite(), h.Grant)
		roles.POST("/:id/revocar", middleware.RequireWrite(), h.Revoke)
		roles.POST("/:id/renovar", middleware.RequireWrite(), h.Renew)
		roles.POST("/:id/hacer-permanente", middleware.RequireWrite(), h.MakePermanent)
		roles.POST("/:id/extender", middleware.RequireWrite(), h.Extend)
		roles.DELETE("/:id", middleware.RequireWrite(), h.Delete)
	}
}

// Grant gives a profile a functional role, permanent or dated
func (h *RoleAssignmentHandler) Grant(c *gin.Context) {
	var req personnelapp.GrantRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = actorID(c)

	grant, err := h.roleService.Grant(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, grant)
}

// GetByID retrieves a role grant with its derived state
func (h *RoleAssignmentHandler) GetByID(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role grant ID format")
		return
	}

	grant, err := h.roleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, grant)
}

// ListByProfile retrieves every role grant of a profile, revoked included
func (h *RoleAssignmentHandler) ListByProfile(c *gin.Context) {
	profileID, err := pathUUID(c, "perfilId")
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	grants, err := h.roleService.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, grants)
}

// ListExpiring lists role grants expiring within the alert window
func (h *RoleAssignmentHandler) ListExpiring(c *gin.Context) {
	alerts, err := h.roleService.ListExpiring(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, alerts)
}

// Revoke ends a role grant at a date
func (h *RoleAssignmentHandler) Revoke(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role grant ID format")
		return
	}

	var req personnelapp.RevokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	grant, err := h.roleService.Revoke(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, grant)
}

// Renew extends a role grant by whole months
func (h *RoleAssignmentHandler) Renew(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role grant ID format")
		return
	}

	var req personnelapp.RenewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	grant, err := h.roleService.Renew(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, grant)
}

// MakePermanent clears a role grant's expiration
func (h *RoleAssignmentHandler) MakePermanent(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role grant ID format")
		return
	}

	grant, err := h.roleService.MakePermanent(c.Request.Context(), id, actorID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, grant)
}

// Extend pushes a role grant's expiration to an explicit date
func (h *RoleAssignmentHandler) Extend(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role grant ID format")
		return
	}

	var req personnelapp.ExtendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	grant, err := h.roleService.Extend(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, grant)
}

// Delete soft-deletes a role grant
func (h *RoleAssignmentHandler) Delete(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid role grant ID format")
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
