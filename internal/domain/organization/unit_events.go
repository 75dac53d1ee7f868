package organization

import (
	"github.com/carbyfah/backend/internal/domain/shared"
)

// Aggregate type constant for OrganizationalUnit
const AggregateTypeUnit = "OrganizationalUnit"

// Unit domain event types
const (
	EventTypeUnitCreated     = "UnitCreated"
	EventTypeUnitUpdated     = "UnitUpdated"
	EventTypeUnitDeactivated = "UnitDeactivated"
)

// UnitCreatedEvent is raised when a new unit is created
type UnitCreatedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
	Name string `json:"name"`
}

// NewUnitCreatedEvent creates a new UnitCreatedEvent
func NewUnitCreatedEvent(u *OrganizationalUnit) *UnitCreatedEvent {
	return &UnitCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUnitCreated, AggregateTypeUnit, u.ID),
		Code:            u.Code,
		Name:            u.Name,
	}
}

// UnitUpdatedEvent is raised when a unit is updated
type UnitUpdatedEvent struct {
	shared.BaseDomainEvent
	Name string `json:"name"`
}

// NewUnitUpdatedEvent creates a new UnitUpdatedEvent
func NewUnitUpdatedEvent(u *OrganizationalUnit) *UnitUpdatedEvent {
	return &UnitUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUnitUpdated, AggregateTypeUnit, u.ID),
		Name:            u.Name,
	}
}

// UnitDeactivatedEvent is raised when a unit is deactivated or scheduled
// for deactivation
type UnitDeactivatedEvent struct {
	shared.BaseDomainEvent
	Code string `json:"code"`
}

// NewUnitDeactivatedEvent creates a new UnitDeactivatedEvent
func NewUnitDeactivatedEvent(u *OrganizationalUnit) *UnitDeactivatedEvent {
	return &UnitDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUnitDeactivated, AggregateTypeUnit, u.ID),
		Code:            u.Code,
	}
}
