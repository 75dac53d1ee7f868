package handler

import (
	"strconv"

	catalogapp "github.com/carbyfah/backend/internal/application/catalog"
	"github.com/carbyfah/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// CatalogHandler handles the three reference catalogs: structure
// types, grades and service statuses.
type CatalogHandler struct {
	BaseHandler
	structureTypes  *catalogapp.StructureTypeService
	grades          *catalogapp.GradeService
	serviceStatuses *catalogapp.ServiceStatusService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(
	structureTypes *catalogapp.StructureTypeService,
	grades *catalogapp.GradeService,
	serviceStatuses *catalogapp.ServiceStatusService,
) *CatalogHandler {
	return &CatalogHandler{
		structureTypes:  structureTypes,
		grades:          grades,
		serviceStatuses: serviceStatuses,
	}
}

// RegisterRoutes registers the catalog routes. Catalog mutations are
// admin-only; listings are open to any authenticated account.
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	catalogos := rg.Group("/catalogos")

	tipos := catalogos.Group("/tipos-estructura")
	{
		tipos.GET("", h.ListStructureTypes)
		tipos.GET("/:id", h.GetStructureType)
		tipos.POST("", middleware.RequireAdmin(), h.CreateStructureType)
		tipos.PUT("/:id", middleware.RequireAdmin(), h.UpdateStructureType)
		tipos.POST("/:id/desactivar", middleware.RequireAdmin(), h.DeactivateStructureType)
		tipos.DELETE("/:id", middleware.RequireAdmin(), h.DeleteStructureType)
	}

	grados := catalogos.Group("/grados")
	{
		grados.GET("", h.ListGrades)
		grados.GET("/:id", h.GetGrade)
		grados.POST("", middleware.RequireAdmin(), h.CreateGrade)
		grados.PUT("/:id", middleware.RequireAdmin(), h.UpdateGrade)
		grados.POST("/:id/desactivar", middleware.RequireAdmin(), h.DeactivateGrade)
		grados.DELETE("/:id", middleware.RequireAdmin(), h.DeleteGrade)
	}

	situaciones := catalogos.Group("/situaciones-servicio")
	{
		situaciones.GET("", h.ListServiceStatuses)
		situaciones.GET("/:id", h.GetServiceStatus)
		situaciones.POST("", middleware.RequireAdmin(), h.CreateServiceStatus)
		situaciones.PUT("/:id", middleware.RequireAdmin(), h.UpdateServiceStatus)
		situaciones.DELETE("/:id", middleware.RequireAdmin(), h.DeleteServiceStatus)
	}
}

// onlyActive reads the solo_activos query flag
func onlyActive(c *gin.Context) bool {
	v, _ := strconv.ParseBool(c.DefaultQuery("solo_activos", "false"))
	return v
}

// CreateStructureType creates a structure type
func (h *CatalogHandler) CreateStructureType(c *gin.Context) {
	var req catalogapp.CreateStructureTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = actorID(c)

	result, err := h.structureTypes.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// GetStructureType retrieves a structure type by ID
func (h *CatalogHandler) GetStructureType(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid structure type ID format")
		return
	}

	result, err := h.structureTypes.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListStructureTypes lists structure types
func (h *CatalogHandler) ListStructureTypes(c *gin.Context) {
	result, err := h.structureTypes.List(c.Request.Context(), onlyActive(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateStructureType modifies a structure type
func (h *CatalogHandler) UpdateStructureType(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid structure type ID format")
		return
	}

	var req catalogapp.UpdateStructureTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	result, err := h.structureTypes.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeactivateStructureType marks a structure type inactive
func (h *CatalogHandler) DeactivateStructureType(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid structure type ID format")
		return
	}

	if err := h.structureTypes.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// DeleteStructureType soft-deletes a structure type
func (h *CatalogHandler) DeleteStructureType(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid structure type ID format")
		return
	}

	deletedBy, err := mustActorID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.structureTypes.Delete(c.Request.Context(), id, deletedBy); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateGrade creates a military grade
func (h *CatalogHandler) CreateGrade(c *gin.Context) {
	var req catalogapp.CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = actorID(c)

	result, err := h.grades.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// GetGrade retrieves a grade by ID
func (h *CatalogHandler) GetGrade(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid grade ID format")
		return
	}

	result, err := h.grades.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListGrades lists grades ordered by rank
func (h *CatalogHandler) ListGrades(c *gin.Context) {
	result, err := h.grades.List(c.Request.Context(), onlyActive(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateGrade modifies a grade
func (h *CatalogHandler) UpdateGrade(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid grade ID format")
		return
	}

	var req catalogapp.UpdateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	result, err := h.grades.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeactivateGrade marks a grade inactive
func (h *CatalogHandler) DeactivateGrade(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid grade ID format")
		return
	}

	if err := h.grades.Deactivate(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// DeleteGrade soft-deletes a grade
func (h *CatalogHandler) DeleteGrade(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid grade ID format")
		return
	}

	deletedBy, err := mustActorID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.grades.Delete(c.Request.Context(), id, deletedBy); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateServiceStatus creates a service status
func (h *CatalogHandler) CreateServiceStatus(c *gin.Context) {
	var req catalogapp.CreateServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.CreatedBy = actorID(c)

	result, err := h.serviceStatuses.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// GetServiceStatus retrieves a service status by ID
func (h *CatalogHandler) GetServiceStatus(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid service status ID format")
		return
	}

	result, err := h.serviceStatuses.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListServiceStatuses lists service statuses
func (h *CatalogHandler) ListServiceStatuses(c *gin.Context) {
	result, err := h.serviceStatuses.List(c.Request.Context(), onlyActive(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// UpdateServiceStatus modifies a service status
func (h *CatalogHandler) UpdateServiceStatus(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid service status ID format")
		return
	}

	var req catalogapp.UpdateServiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}
	req.UpdatedBy = actorID(c)

	result, err := h.serviceStatuses.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DeleteServiceStatus soft-deletes a service status
func (h *CatalogHandler) DeleteServiceStatus(c *gin.Context) {
	id, err := pathUUID(c, "id")
	if err != nil {
		h.BadRequest(c, "Invalid service status ID format")
		return
	}

	deletedBy, err := mustActorID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.serviceStatuses.Delete(c.Request.Context(), id, deletedBy); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
