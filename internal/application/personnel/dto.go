package personnel

import (
	"time"

	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CreateProfileRequest carries a profile creation request
type CreateProfileRequest struct {
	ServiceNumber   string     `json:"numero_servicio" binding:"required"`
	FirstName       string     `json:"nombres" binding:"required"`
	LastName        string     `json:"apellidos" binding:"required"`
	DocumentID      string     `json:"identidad"`
	BirthDate       *time.Time `json:"fecha_nacimiento"`
	GradeID         uuid.UUID  `json:"grado_id" binding:"required"`
	ServiceStatusID uuid.UUID  `json:"situacion_servicio_id" binding:"required"`
	CreatedBy       *uuid.UUID `json:"-"`
}

// UpdateProfileRequest carries a profile identity update
type UpdateProfileRequest struct {
	FirstName  string     `json:"nombres" binding:"required"`
	LastName   string     `json:"apellidos" binding:"required"`
	DocumentID string     `json:"identidad"`
	BirthDate  *time.Time `json:"fecha_nacimiento"`
	UpdatedBy  *uuid.UUID `json:"-"`
}

// ChangeGradeRequest records a grade change
type ChangeGradeRequest struct {
	GradeID   uuid.UUID  `json:"grado_id" binding:"required"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// ChangeServiceStatusRequest records a service-situation change
type ChangeServiceStatusRequest struct {
	ServiceStatusID uuid.UUID  `json:"situacion_servicio_id" binding:"required"`
	UpdatedBy       *uuid.UUID `json:"-"`
}

// ProfileListFilter carries listing options for profiles
type ProfileListFilter struct {
	Page     int    `form:"pagina"`
	PageSize int    `form:"tamano_pagina"`
	Search   string `form:"buscar"`
}

// ProfileResponse is the wire form of a military profile
type ProfileResponse struct {
	ID              uuid.UUID  `json:"id"`
	ServiceNumber   string     `json:"numero_servicio"`
	FirstName       string     `json:"nombres"`
	LastName        string     `json:"apellidos"`
	FullName        string     `json:"nombre_completo"`
	DocumentID      string     `json:"identidad,omitempty"`
	BirthDate       *time.Time `json:"fecha_nacimiento,omitempty"`
	GradeID         uuid.UUID  `json:"grado_id"`
	ServiceStatusID uuid.UUID  `json:"situacion_servicio_id"`
	Active          bool       `json:"activo"`
	Version         int        `json:"version"`
	CreatedAt       time.Time  `json:"fecha_creacion"`
	UpdatedAt       time.Time  `json:"fecha_actualizacion"`
}

// ToProfileResponse converts a domain profile
func ToProfileResponse(p *personnel.MilitaryProfile) *ProfileResponse {
	return &ProfileResponse{
		ID:              p.ID,
		ServiceNumber:   p.ServiceNumber,
		FirstName:       p.FirstName,
		LastName:        p.LastName,
		FullName:        p.FullName(),
		DocumentID:      p.DocumentID,
		BirthDate:       p.BirthDate,
		GradeID:         p.GradeID,
		ServiceStatusID: p.ServiceStatusID,
		Active:          p.Active,
		Version:         p.Version,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// AssignRequest carries an assignment creation request
type AssignRequest struct {
	ProfileID  uuid.UUID  `json:"perfil_id" binding:"required"`
	UnitID     uuid.UUID  `json:"unidad_id" binding:"required"`
	PositionID uuid.UUID  `json:"cargo_id" binding:"required"`
	StartDate  time.Time  `json:"fecha_inicio" binding:"required"`
	EndDate    *time.Time `json:"fecha_fin"`
	CreatedBy  *uuid.UUID `json:"-"`
}

// FinalizeRequest closes an assignment at a date
type FinalizeRequest struct {
	EndDate   time.Time  `json:"fecha_fin" binding:"required"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// ExtendRequest pushes an expiration further out
type ExtendRequest struct {
	NewEnd    time.Time  `json:"nueva_fecha_fin" binding:"required"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// AssignmentResponse is the wire form of a current assignment. Estado is
// derived at read time and carries the remaining days when finite.
type AssignmentResponse struct {
	ID         uuid.UUID            `json:"id"`
	ProfileID  uuid.UUID            `json:"perfil_id"`
	UnitID     uuid.UUID            `json:"unidad_id"`
	PositionID uuid.UUID            `json:"cargo_id"`
	StartDate  time.Time            `json:"fecha_inicio"`
	EndDate    *time.Time           `json:"fecha_fin,omitempty"`
	Status     personnel.StatusInfo `json:"estado"`
	Duration   string               `json:"tiempo_en_cargo"`
	Active     bool                 `json:"activo"`
	Version    int                  `json:"version"`
}

// ToAssignmentResponse converts a domain assignment, deriving its state
// at the given instant.
func ToAssignmentResponse(a *personnel.CurrentAssignment, now time.Time, alertWindowDays int) *AssignmentResponse {
	return &AssignmentResponse{
		ID:         a.ID,
		ProfileID:  a.ProfileID,
		UnitID:     a.UnitID,
		PositionID: a.PositionID,
		StartDate:  a.StartDate,
		EndDate:    a.EndDate,
		Status:     a.Status(now, alertWindowDays),
		Duration:   shared.ElapsedBetween(a.StartDate, a.EndDate, now).Format(),
		Active:     a.Active,
		Version:    a.Version,
	}
}

// GrantRoleRequest carries a role-grant creation request
type GrantRoleRequest struct {
	ProfileID uuid.UUID  `json:"perfil_id" binding:"required"`
	RoleID    uuid.UUID  `json:"rol_id" binding:"required"`
	StartDate time.Time  `json:"fecha_inicio" binding:"required"`
	ExpiresAt *time.Time `json:"fecha_expiracion"`
	CreatedBy *uuid.UUID `json:"-"`
}

// RevokeRequest ends a role grant at a date
type RevokeRequest struct {
	At        time.Time  `json:"fecha_revocacion" binding:"required"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// RenewRequest extends a role grant by months
type RenewRequest struct {
	Months    int        `json:"meses" binding:"required"`
	UpdatedBy *uuid.UUID `json:"-"`
}

// RoleAssignmentResponse is the wire form of a role grant
type RoleAssignmentResponse struct {
	ID        uuid.UUID            `json:"id"`
	ProfileID uuid.UUID            `json:"perfil_id"`
	RoleID    uuid.UUID            `json:"rol_id"`
	StartDate time.Time            `json:"fecha_inicio"`
	ExpiresAt *time.Time           `json:"fecha_expiracion,omitempty"`
	Status    personnel.StatusInfo `json:"estado"`
	Active    bool                 `json:"activo"`
	Version   int                  `json:"version"`
}

// ToRoleAssignmentResponse converts a domain role grant
func ToRoleAssignmentResponse(r *personnel.RoleAssignment, now time.Time, alertWindowDays int) *RoleAssignmentResponse {
	return &RoleAssignmentResponse{
		ID:        r.ID,
		ProfileID: r.ProfileID,
		RoleID:    r.RoleID,
		StartDate: r.StartDate,
		ExpiresAt: r.ExpiresAt,
		Status:    r.Status(now, alertWindowDays),
		Active:    r.Active,
		Version:   r.Version,
	}
}

// CareerEntryResponse is one position held over a period
type CareerEntryResponse struct {
	ID            uuid.UUID  `json:"id"`
	UnitID        uuid.UUID  `json:"unidad_id"`
	PositionID    uuid.UUID  `json:"cargo_id"`
	PositionName  string     `json:"cargo"`
	PositionLevel int        `json:"nivel_jerarquico"`
	StartDate     time.Time  `json:"fecha_inicio"`
	EndDate       *time.Time `json:"fecha_fin,omitempty"`
	Duration      string     `json:"duracion"`
}

// CareerMoveResponse is one reconstructed transition between positions
type CareerMoveResponse struct {
	FromPosition string    `json:"cargo_anterior"`
	ToPosition   string    `json:"cargo_nuevo"`
	Date         time.Time `json:"fecha"`
	IsPromotion  bool      `json:"es_ascenso"`
}

// CareerResponse is the full reconstructed career of a profile
type CareerResponse struct {
	ProfileID uuid.UUID             `json:"perfil_id"`
	Entries   []CareerEntryResponse `json:"historial"`
	Moves     []CareerMoveResponse  `json:"trayectoria"`
}

// DashboardResponse carries the summary counters
type DashboardResponse struct {
	ActiveProfiles     int64 `json:"personal_activo"`
	VigenteAssignments int64 `json:"asignaciones_vigentes"`
	VigenteRoles       int64 `json:"roles_vigentes"`
	PendingAlerts      int   `json:"alertas_pendientes"`
}
