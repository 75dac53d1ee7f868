package organization

import (
	"strings"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OrganizationalUnit is a node of the command tree (estructura militar).
// Units form a forest through ParentID; Level is the depth within the
// command chain (lower numbers carry higher authority) and
// HorizontalOrder fixes sibling ordering on the organigram.
type OrganizationalUnit struct {
	shared.AuditedAggregateRoot
	Code            string
	Name            string
	StructureTypeID uuid.UUID
	ParentID        *uuid.UUID
	Level           int
	HorizontalOrder int
	Capacity        int
	ActivatedAt     time.Time
	DeactivatedAt   *time.Time
	Active          bool
}

// NewOrganizationalUnit creates a root-level unit
func NewOrganizationalUnit(code, name string, structureTypeID uuid.UUID) (*OrganizationalUnit, error) {
	if err := validateUnitCode(code); err != nil {
		return nil, err
	}
	if err := validateUnitName(name); err != nil {
		return nil, err
	}
	if structureTypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_STRUCTURE_TYPE", "Structure type is required")
	}

	unit := &OrganizationalUnit{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Code:                 strings.ToUpper(strings.TrimSpace(code)),
		Name:                 strings.TrimSpace(name),
		StructureTypeID:      structureTypeID,
		Level:                1,
		ActivatedAt:          time.Now(),
		Active:               true,
	}

	unit.AddDomainEvent(NewUnitCreatedEvent(unit))

	return unit, nil
}

// SetParent places the unit under parent, deriving the hierarchy level
// from the parent chain. A nil parent makes the unit a root.
func (u *OrganizationalUnit) SetParent(parent *OrganizationalUnit) error {
	if parent == nil {
		u.ParentID = nil
		u.Level = 1
	} else {
		if parent.ID == u.ID {
			return shared.NewDomainError("INVALID_PARENT", "Unit cannot be its own parent")
		}
		parentID := parent.ID
		u.ParentID = &parentID
		u.Level = parent.Level + 1
	}

	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// Update updates the display fields
func (u *OrganizationalUnit) Update(name string, horizontalOrder, capacity int) error {
	if err := validateUnitName(name); err != nil {
		return err
	}
	if capacity < 0 {
		return shared.NewDomainError("INVALID_CAPACITY", "Capacity cannot be negative")
	}

	u.Name = strings.TrimSpace(name)
	u.HorizontalOrder = horizontalOrder
	u.Capacity = capacity
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUnitUpdatedEvent(u))

	return nil
}

// ScheduleDeactivation sets the date from which the unit stops being
// operational. The date may lie in the future.
func (u *OrganizationalUnit) ScheduleDeactivation(at time.Time) error {
	if at.Before(u.ActivatedAt) {
		return shared.NewDomainError("INVALID_DEACTIVATION", "Deactivation cannot precede activation")
	}
	u.DeactivatedAt = &at
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUnitDeactivatedEvent(u))

	return nil
}

// Reactivate clears the deactivation date and restores the active flag
func (u *OrganizationalUnit) Reactivate() {
	u.DeactivatedAt = nil
	u.Active = true
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// Deactivate clears the active flag immediately
func (u *OrganizationalUnit) Deactivate() error {
	if !u.Active {
		return shared.NewDomainError("ALREADY_INACTIVE", "Unit is already inactive")
	}
	u.Active = false
	now := time.Now()
	if u.DeactivatedAt == nil {
		u.DeactivatedAt = &now
	}
	u.UpdatedAt = now
	u.IncrementVersion()

	u.AddDomainEvent(NewUnitDeactivatedEvent(u))

	return nil
}

// IsOperational reports whether the unit counts as active at the given
// instant: active flag set and no deactivation date in the past.
func (u *OrganizationalUnit) IsOperational(now time.Time) bool {
	if !u.Active {
		return false
	}
	return u.DeactivatedAt == nil || u.DeactivatedAt.After(now)
}

// IsRoot reports whether the unit has no parent
func (u *OrganizationalUnit) IsRoot() bool {
	return u.ParentID == nil
}

func validateUnitCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_UNIT_CODE", "Unit code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_UNIT_CODE", "Unit code cannot exceed 50 characters")
	}
	return nil
}

func validateUnitName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_UNIT_NAME", "Unit name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_UNIT_NAME", "Unit name cannot exceed 200 characters")
	}
	return nil
}

// TableName returns the database table name
func (OrganizationalUnit) TableName() string {
	return "estructura_militar"
}
