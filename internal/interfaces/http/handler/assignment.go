package handler

import (
	personnelapp "github.com/carbyfah/backend/internal/application/personnel"
	"github.com/carbyfah/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles position-assignment lifecycle endpoints
type AssignmentHandler struct {
	BaseHandler
	assignmentService *personnelapp.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler
func NewAssignmentHandler(assignmentService *personnelapp.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// RegisterRoutes registers the assignment routes
func (h *AssignmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	asignaciones := rg.Group("/personal/asignaciones")
	{
		asignaciones.GET("/:id", h.GetByID)
		asignaciones.GET("/por-perfil/:perfilId", h.ListByProfile)
		asignaciones.GET("/por-unidad/:unidadId", h.ListByUnit)
		asignaciones.POST("", middleware.RequireWrite(), h.Assign)
		asignaciones.POST("/:id/finalizar", middleware.RequireWrite(), h.Finalize)
		asignaciones.POST("/:id/extender", middleware.RequireWrite(), h.Extend)
		asignaciones.DELETE("/:id", middleware.RequireWrite(), h.Delete)
	}
}

// Assign places a profile in a position, rejecting date overlaps
func (h *AssignmentHandler) Assign(c *gin.Context) {
	var req personnelapp.AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = actorID(c)

	assignment, err := h.assignmentService.Assign(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, assignment)
}

// GetByID retrieves an assignment with its derived state
func (h *AssignmentHandler) GetByID(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid assignment ID format")
		return
	}

	assignment, err := h.assignmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignment)
}

// ListByProfile retrieves the active assignments of a profile
func (h *AssignmentHandler) ListByProfile(c *gin.Context) {
	profileID, err := pathUUID(c, "perfilId")
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	assignments, err := h.assignmentService.ListByProfile(c.Request.Context(), profileID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignments)
}

// ListByUnit retrieves the assignments held within a unit
func (h *AssignmentHandler) ListByUnit(c *gin.Context) {
	unitID, err := pathUUID(c, "unidadId")
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	assignments, err := h.assignmentService.ListByUnit(c.Request.Context(), unitID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignments)
}

// Finalize closes an assignment at a date and completes the career entry
func (h *AssignmentHandler) Finalize(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid assignment ID format")
		return
	}

	var req personnelapp.FinalizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	assignment, err := h.assignmentService.Finalize(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignment)
}

// Extend pushes a vigente assignment's end date further out
func (h *AssignmentHandler) Extend(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid assignment ID format")
		return
	}

	var req personnelapp.ExtendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	assignment, err := h.assignmentService.Extend(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, assignment)
}

// Delete soft-deletes an assignment
func (h *AssignmentHandler) Delete(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid assignment ID format")
		return
	}

	deletedBy, err := mustActorID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.assignmentService.Delete(c.Request.Context(), id, deletedBy); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
