package handler

import (
	personnelapp "github.com/carbyfah/backend/internal/application/personnel"
	"github.com/carbyfah/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ProfileHandler handles military-profile endpoints
type ProfileHandler struct {
	BaseHandler
	profileService *personnelapp.ProfileService
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(profileService *personnelapp.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// RegisterRoutes registers the profile routes
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	perfiles := rg.Group("/personal/perfiles")
	{
		perfiles.GET("", h.List)
		perfiles.GET("/:id", h.GetByID)
		perfiles.GET("/por-numero-servicio/:numero", h.GetByServiceNumber)
		perfiles.POST("", middleware.RequireWrite(), h.Create)
		perfiles.PUT("/:id", middleware.RequireWrite(), h.Update)
		perfiles.POST("/:id/cambiar-grado", middleware.RequireWrite(), h.ChangeGrade)
		perfiles.POST("/:id/cambiar-situacion", middleware.RequireWrite(), h.ChangeServiceStatus)
		perfiles.POST("/:id/desactivar", middleware.RequireWrite(), h.Deactivate)
		perfiles.DELETE("/:id", middleware.RequireWrite(), h.Delete)
	}
}

// Create registers a new military profile
func (h *ProfileHandler) Create(c *gin.Context) {
	var req personnelapp.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = actorID(c)

	profile, err := h.profileService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, profile)
}

// GetByID retrieves a profile by ID
func (h *ProfileHandler) GetByID(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	profile, err := h.profileService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// GetByServiceNumber retrieves a profile by its service number
func (h *ProfileHandler) GetByServiceNumber(c *gin.Context) {
	profile, err := h.profileService.GetByServiceNumber(c.Request.Context(), c.Param("numero"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// List retrieves profiles with pagination and accent-insensitive search
func (h *ProfileHandler) List(c *gin.Context) {
	var filter personnelapp.ProfileListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.profileService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Update modifies a profile's identity fields
func (h *ProfileHandler) Update(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	var req personnelapp.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	profile, err := h.profileService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// ChangeGrade records a grade change on the profile
func (h *ProfileHandler) ChangeGrade(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	var req personnelapp.ChangeGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	profile, err := h.profileService.ChangeGrade(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// ChangeServiceStatus moves the profile to another service situation
func (h *ProfileHandler) ChangeServiceStatus(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	var req personnelapp.ChangeServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	profile, err := h.profileService.ChangeServiceStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, profile)
}

// Deactivate marks a profile inactive
func (h *ProfileHandler) Deactivate(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	if err := h.profileService.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Delete soft-deletes a profile
func (h *ProfileHandler) Delete(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid profile ID format")
		return
	}

	deletedBy, err := mustActorID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), id, deletedBy); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
