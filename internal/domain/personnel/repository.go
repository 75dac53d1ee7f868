package personnel

import (
	"context"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProfileRepository defines persistence for military profiles
type ProfileRepository interface {
	Save(ctx context.Context, profile *MilitaryProfile) error
	FindByID(ctx context.Context, id uuid.UUID) (*MilitaryProfile, error)
	FindByServiceNumber(ctx context.Context, serviceNumber string) (*MilitaryProfile, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*MilitaryProfile, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	CountActive(ctx context.Context) (int64, error)
	ExistsByServiceNumber(ctx context.Context, serviceNumber string) (bool, error)
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// AssignmentRepository defines persistence for current assignments
type AssignmentRepository interface {
	Save(ctx context.Context, assignment *CurrentAssignment) error
	FindByID(ctx context.Context, id uuid.UUID) (*CurrentAssignment, error)
	// FindActiveByProfile returns all active records of a profile,
	// whatever their dates; the caller runs the overlap check.
	FindActiveByProfile(ctx context.Context, profileID uuid.UUID) ([]*CurrentAssignment, error)
	FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*CurrentAssignment, error)
	// FindExpiringWithin returns active records with an end date inside
	// (now, now+days].
	FindExpiringWithin(ctx context.Context, now time.Time, days int) ([]*CurrentAssignment, error)
	CountVigentes(ctx context.Context, now time.Time) (int64, error)
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// RoleAssignmentRepository defines persistence for role grants
type RoleAssignmentRepository interface {
	Save(ctx context.Context, grant *RoleAssignment) error
	FindByID(ctx context.Context, id uuid.UUID) (*RoleAssignment, error)
	FindActiveByProfile(ctx context.Context, profileID uuid.UUID) ([]*RoleAssignment, error)
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*RoleAssignment, error)
	FindExpiringWithin(ctx context.Context, now time.Time, days int) ([]*RoleAssignment, error)
	CountVigentes(ctx context.Context, now time.Time) (int64, error)
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// CareerHistoryRepository defines persistence for career history
type CareerHistoryRepository interface {
	Save(ctx context.Context, entry *CareerHistoryEntry) error
	FindByID(ctx context.Context, id uuid.UUID) (*CareerHistoryEntry, error)
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*CareerHistoryEntry, error)
	FindOpenByProfile(ctx context.Context, profileID uuid.UUID) (*CareerHistoryEntry, error)
}
