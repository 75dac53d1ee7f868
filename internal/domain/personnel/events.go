package personnel

import (
	"github.com/carbyfah/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeAssignment     = "CurrentAssignment"
	AggregateTypeRoleAssignment = "RoleAssignment"
)

// Assignment and role-grant event types
const (
	EventTypeAssignmentCreated   = "AssignmentCreated"
	EventTypeAssignmentExtended  = "AssignmentExtended"
	EventTypeAssignmentFinalized = "AssignmentFinalized"
	EventTypeRoleGranted         = "RoleGranted"
	EventTypeRoleExtended        = "RoleExtended"
	EventTypeRoleRevoked         = "RoleRevoked"
	EventTypeRoleRenewed         = "RoleRenewed"
	EventTypeRoleMadePermanent   = "RoleMadePermanent"
)

// AssignmentEvent is the shared payload for assignment lifecycle events
type AssignmentEvent struct {
	shared.BaseDomainEvent
	ProfileID string `json:"profile_id"`
	UnitID    string `json:"unit_id"`
}

func newAssignmentEvent(eventType string, a *CurrentAssignment) *AssignmentEvent {
	return &AssignmentEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeAssignment, a.ID),
		ProfileID:       a.ProfileID.String(),
		UnitID:          a.UnitID.String(),
	}
}

// NewAssignmentCreatedEvent is raised when an assignment is created
func NewAssignmentCreatedEvent(a *CurrentAssignment) *AssignmentEvent {
	return newAssignmentEvent(EventTypeAssignmentCreated, a)
}

// NewAssignmentExtendedEvent is raised when an assignment is extended
func NewAssignmentExtendedEvent(a *CurrentAssignment) *AssignmentEvent {
	return newAssignmentEvent(EventTypeAssignmentExtended, a)
}

// NewAssignmentFinalizedEvent is raised when an assignment is closed
func NewAssignmentFinalizedEvent(a *CurrentAssignment) *AssignmentEvent {
	return newAssignmentEvent(EventTypeAssignmentFinalized, a)
}

// RoleAssignmentEvent is the shared payload for role-grant events
type RoleAssignmentEvent struct {
	shared.BaseDomainEvent
	ProfileID string `json:"profile_id"`
	RoleID    string `json:"role_id"`
}

func newRoleAssignmentEvent(eventType string, r *RoleAssignment) *RoleAssignmentEvent {
	return &RoleAssignmentEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(eventType, AggregateTypeRoleAssignment, r.ID),
		ProfileID:       r.ProfileID.String(),
		RoleID:          r.RoleID.String(),
	}
}

// NewRoleGrantedEvent is raised when a role is granted
func NewRoleGrantedEvent(r *RoleAssignment) *RoleAssignmentEvent {
	return newRoleAssignmentEvent(EventTypeRoleGranted, r)
}

// NewRoleExtendedEvent is raised when a grant is extended
func NewRoleExtendedEvent(r *RoleAssignment) *RoleAssignmentEvent {
	return newRoleAssignmentEvent(EventTypeRoleExtended, r)
}

// NewRoleRevokedEvent is raised when a grant is revoked
func NewRoleRevokedEvent(r *RoleAssignment) *RoleAssignmentEvent {
	return newRoleAssignmentEvent(EventTypeRoleRevoked, r)
}

// NewRoleRenewedEvent is raised when a grant is renewed
func NewRoleRenewedEvent(r *RoleAssignment) *RoleAssignmentEvent {
	return newRoleAssignmentEvent(EventTypeRoleRenewed, r)
}

// NewRoleMadePermanentEvent is raised when a grant loses its expiration
func NewRoleMadePermanentEvent(r *RoleAssignment) *RoleAssignmentEvent {
	return newRoleAssignmentEvent(EventTypeRoleMadePermanent, r)
}
