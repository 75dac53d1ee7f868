package personnel

import (
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ErrAssignmentConflict is returned when a proposed validity range
// overlaps another active record for the same profile.
var ErrAssignmentConflict = shared.NewDomainError("ASSIGNMENT_CONFLICT", "Profile already has an active record in the proposed period")

// HasDateConflict reports whether the candidate range overlaps any
// other active assignment of the same profile. excludeID skips the
// record being modified. Boundaries are inclusive: a range touching an
// existing one on the same date conflicts.
func HasDateConflict(existing []*CurrentAssignment, candidate shared.DateRange, excludeID uuid.UUID) bool {
	for _, a := range existing {
		if a.ID == excludeID || !a.Active {
			continue
		}
		if a.Range().Overlaps(candidate) {
			return true
		}
	}
	return false
}

// HasRoleConflict is the role-grant variant, scoped to one
// (profile, role) pair: overlapping grants of distinct roles are fine.
func HasRoleConflict(existing []*RoleAssignment, roleID uuid.UUID, candidate shared.DateRange, excludeID uuid.UUID) bool {
	for _, r := range existing {
		if r.ID == excludeID || !r.Active || r.RoleID != roleID {
			continue
		}
		if r.Range().Overlaps(candidate) {
			return true
		}
	}
	return false
}
