package catalog

import (
	"context"

	"github.com/google/uuid"
)

// StructureTypeRepository defines persistence for structure types
type StructureTypeRepository interface {
	Save(ctx context.Context, st *StructureType) error
	FindByID(ctx context.Context, id uuid.UUID) (*StructureType, error)
	FindByCode(ctx context.Context, code string) (*StructureType, error)
	FindAll(ctx context.Context, onlyActive bool) ([]*StructureType, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// GradeRepository defines persistence for grades
type GradeRepository interface {
	Save(ctx context.Context, g *Grade) error
	FindByID(ctx context.Context, id uuid.UUID) (*Grade, error)
	FindByCode(ctx context.Context, code string) (*Grade, error)
	FindAll(ctx context.Context, onlyActive bool) ([]*Grade, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}

// ServiceStatusRepository defines persistence for service statuses
type ServiceStatusRepository interface {
	Save(ctx context.Context, s *ServiceStatus) error
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceStatus, error)
	FindAll(ctx context.Context, onlyActive bool) ([]*ServiceStatus, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}
