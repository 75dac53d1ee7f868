package organization

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UnitRepository defines persistence for organizational units
type UnitRepository interface {
	Save(ctx context.Context, unit *OrganizationalUnit) error
	FindByID(ctx context.Context, id uuid.UUID) (*OrganizationalUnit, error)
	FindByCode(ctx context.Context, code string) (*OrganizationalUnit, error)
	// FindOperational returns units with the active flag set and no
	// deactivation date at or before the given instant, ordered by
	// hierarchy level then horizontal order.
	FindOperational(ctx context.Context, now time.Time) ([]*OrganizationalUnit, error)
	FindAll(ctx context.Context) ([]*OrganizationalUnit, error)
	FindChildren(ctx context.Context, parentID uuid.UUID) ([]*OrganizationalUnit, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	HasChildren(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// PositionRepository defines persistence for positions
type PositionRepository interface {
	Save(ctx context.Context, position *Position) error
	FindByID(ctx context.Context, id uuid.UUID) (*Position, error)
	FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*Position, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Position, error)
	ExistsByCode(ctx context.Context, unitID uuid.UUID, code string) (bool, error)
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// FunctionalRoleRepository defines persistence for functional roles
type FunctionalRoleRepository interface {
	Save(ctx context.Context, role *FunctionalRole) error
	FindByID(ctx context.Context, id uuid.UUID) (*FunctionalRole, error)
	FindAll(ctx context.Context, onlyActive bool) ([]*FunctionalRole, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}
