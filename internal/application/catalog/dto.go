package catalog

import (
	"time"

	"github.com/carbyfah/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// CreateStructureTypeRequest carries a structure-type creation request
type CreateStructureTypeRequest struct {
	Code        string     `json:"codigo" binding:"required"`
	Name        string     `json:"nombre" binding:"required"`
	Description string     `json:"descripcion"`
	CreatedBy   *uuid.UUID `json:"-"`
}

// UpdateStructureTypeRequest carries a structure-type update request
type UpdateStructureTypeRequest struct {
	Name        string     `json:"nombre" binding:"required"`
	Description string     `json:"descripcion"`
	UpdatedBy   *uuid.UUID `json:"-"`
}

// StructureTypeResponse is the wire form of a structure type
type StructureTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"codigo"`
	Name        string    `json:"nombre"`
	Description string    `json:"descripcion,omitempty"`
	Active      bool      `json:"activo"`
	Version     int       `json:"version"`
	CreatedAt   time.Time `json:"fecha_creacion"`
	UpdatedAt   time.Time `json:"fecha_actualizacion"`
}

// ToStructureTypeResponse converts a domain structure type
func ToStructureTypeResponse(st *catalog.StructureType) *StructureTypeResponse {
	return &StructureTypeResponse{
		ID:          st.ID,
		Code:        st.Code,
		Name:        st.Name,
		Description: st.Description,
		Active:      st.Active,
		Version:     st.Version,
		CreatedAt:   st.CreatedAt,
		UpdatedAt:   st.UpdatedAt,
	}
}

// CreateGradeRequest carries a grade creation request
type CreateGradeRequest struct {
	Code         string     `json:"codigo" binding:"required"`
	Name         string     `json:"nombre" binding:"required"`
	Abbreviation string     `json:"abreviatura" binding:"required"`
	Order        int        `json:"orden"`
	CreatedBy    *uuid.UUID `json:"-"`
}

// UpdateGradeRequest carries a grade update request
type UpdateGradeRequest struct {
	Name         string     `json:"nombre" binding:"required"`
	Abbreviation string     `json:"abreviatura" binding:"required"`
	Order        int        `json:"orden"`
	UpdatedBy    *uuid.UUID `json:"-"`
}

// GradeResponse is the wire form of a grade
type GradeResponse struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"codigo"`
	Name         string    `json:"nombre"`
	Abbreviation string    `json:"abreviatura"`
	Order        int       `json:"orden"`
	Active       bool      `json:"activo"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"fecha_creacion"`
	UpdatedAt    time.Time `json:"fecha_actualizacion"`
}

// ToGradeResponse converts a domain grade
func ToGradeResponse(g *catalog.Grade) *GradeResponse {
	return &GradeResponse{
		ID:           g.ID,
		Code:         g.Code,
		Name:         g.Name,
		Abbreviation: g.Abbreviation,
		Order:        g.Order,
		Active:       g.Active,
		Version:      g.Version,
		CreatedAt:    g.CreatedAt,
		UpdatedAt:    g.UpdatedAt,
	}
}

// CreateServiceStatusRequest carries a service-status creation request
type CreateServiceStatusRequest struct {
	Code      string     `json:"codigo" binding:"required"`
	Name      string     `json:"nombre" binding:"required"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdateServiceStatusRequest carries a service-status update request
type UpdateServiceStatusRequest struct {
	Name      string     `json:"nombre" binding:"required"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// ServiceStatusResponse is the wire form of a service status
type ServiceStatusResponse struct {
	ID        uuid.UUID `json:"id"`
	Code      string    `json:"codigo"`
	Name      string    `json:"nombre"`
	Active    bool      `json:"activo"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"fecha_creacion"`
	UpdatedAt time.Time `json:"fecha_actualizacion"`
}

// ToServiceStatusResponse converts a domain service status
func ToServiceStatusResponse(s *catalog.ServiceStatus) *ServiceStatusResponse {
	return &ServiceStatusResponse{
		ID:        s.ID,
		Code:      s.Code,
		Name:      s.Name,
		Active:    s.Active,
		Version:   s.Version,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
