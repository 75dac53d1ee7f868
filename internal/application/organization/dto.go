package organization

import (
	"time"

	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/google/uuid"
)

// CreateUnitRequest carries a unit creation request
type CreateUnitRequest struct {
	Code            string     `json:"codigo" binding:"required"`
	Name            string     `json:"nombre" binding:"required"`
	StructureTypeID uuid.UUID  `json:"tipo_estructura_id" binding:"required"`
	ParentID        *uuid.UUID `json:"unidad_padre_id"`
	HorizontalOrder int        `json:"orden_horizontal"`
	Capacity        int        `json:"capacidad"`
	CreatedBy       *uuid.UUID `json:"-"`
}

// UpdateUnitRequest carries a unit update request
type UpdateUnitRequest struct {
	Name            string     `json:"nombre" binding:"required"`
	ParentID        *uuid.UUID `json:"unidad_padre_id"`
	HorizontalOrder int        `json:"orden_horizontal"`
	Capacity        int        `json:"capacidad"`
	UpdatedBy       *uuid.UUID `json:"-"`
}

// DeactivateUnitRequest schedules or applies a unit deactivation
type DeactivateUnitRequest struct {
	At        *time.Time `json:"fecha_desactivacion"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// UnitResponse is the wire form of an organizational unit
type UnitResponse struct {
	ID              uuid.UUID  `json:"id"`
	Code            string     `json:"codigo"`
	Name            string     `json:"nombre"`
	StructureTypeID uuid.UUID  `json:"tipo_estructura_id"`
	ParentID        *uuid.UUID `json:"unidad_padre_id"`
	Level           int        `json:"nivel_jerarquico"`
	HorizontalOrder int        `json:"orden_horizontal"`
	Capacity        int        `json:"capacidad"`
	ActivatedAt     time.Time  `json:"fecha_activacion"`
	DeactivatedAt   *time.Time `json:"fecha_desactivacion,omitempty"`
	Active          bool       `json:"activo"`
	Version         int        `json:"version"`
}

// ToUnitResponse converts a domain unit
func ToUnitResponse(u *organization.OrganizationalUnit) *UnitResponse {
	return &UnitResponse{
		ID:              u.ID,
		Code:            u.Code,
		Name:            u.Name,
		StructureTypeID: u.StructureTypeID,
		ParentID:        u.ParentID,
		Level:           u.Level,
		HorizontalOrder: u.HorizontalOrder,
		Capacity:        u.Capacity,
		ActivatedAt:     u.ActivatedAt,
		DeactivatedAt:   u.DeactivatedAt,
		Active:          u.Active,
		Version:         u.Version,
	}
}

// HierarchyPathResponse is the root-first command chain of a unit
type HierarchyPathResponse struct {
	UnitID uuid.UUID `json:"unidad_id"`
	Path   []string  `json:"ruta"`
}

// CreatePositionRequest carries a position creation request
type CreatePositionRequest struct {
	UnitID    uuid.UUID  `json:"unidad_id" binding:"required"`
	Code      string     `json:"codigo" binding:"required"`
	Name      string     `json:"nombre" binding:"required"`
	Level     int        `json:"nivel_jerarquico" binding:"required"`
	IsCommand bool       `json:"es_comando"`
	CreatedBy *uuid.UUID `json:"-"`
}

// UpdatePositionRequest carries a position update request
type UpdatePositionRequest struct {
	Name      string     `json:"nombre" binding:"required"`
	Level     int        `json:"nivel_jerarquico" binding:"required"`
	IsCommand bool       `json:"es_comando"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// PositionResponse is the wire form of a position
type PositionResponse struct {
	ID        uuid.UUID `json:"id"`
	UnitID    uuid.UUID `json:"unidad_id"`
	Code      string    `json:"codigo"`
	Name      string    `json:"nombre"`
	Level     int       `json:"nivel_jerarquico"`
	IsCommand bool      `json:"es_comando"`
	Active    bool      `json:"activo"`
	Version   int       `json:"version"`
}

// ToPositionResponse converts a domain position
func ToPositionResponse(p *organization.Position) *PositionResponse {
	return &PositionResponse{
		ID:        p.ID,
		UnitID:    p.UnitID,
		Code:      p.Code,
		Name:      p.Name,
		Level:     p.Level,
		IsCommand: p.IsCommand,
		Active:    p.Active,
		Version:   p.Version,
	}
}

// CreateFunctionalRoleRequest carries a functional-role creation request
type CreateFunctionalRoleRequest struct {
	Code           string     `json:"codigo" binding:"required"`
	Name           string     `json:"nombre" binding:"required"`
	AuthorityLevel int        `json:"nivel_autoridad" binding:"required"`
	CreatedBy      *uuid.UUID `json:"-"`
}

// UpdateFunctionalRoleRequest carries a functional-role update request
type UpdateFunctionalRoleRequest struct {
	Name           string     `json:"nombre" binding:"required"`
	AuthorityLevel int        `json:"nivel_autoridad" binding:"required"`
	UpdatedBy      *uuid.UUID `json:"-"`
}

// FunctionalRoleResponse is the wire form of a functional role
type FunctionalRoleResponse struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"codigo"`
	Name           string    `json:"nombre"`
	AuthorityLevel int       `json:"nivel_autoridad"`
	Active         bool      `json:"activo"`
	Version        int       `json:"version"`
}

// ToFunctionalRoleResponse converts a domain functional role
func ToFunctionalRoleResponse(r *organization.FunctionalRole) *FunctionalRoleResponse {
	return &FunctionalRoleResponse{
		ID:             r.ID,
		Code:           r.Code,
		Name:           r.Name,
		AuthorityLevel: r.AuthorityLevel,
		Active:         r.Active,
		Version:        r.Version,
	}
}
