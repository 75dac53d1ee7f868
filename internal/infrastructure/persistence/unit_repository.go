package persistence

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUnitRepository implements organization.UnitRepository
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

func (r *GormUnitRepository) Save(ctx context.Context, unit *organization.OrganizationalUnit) error {
	return saveVersioned(ctx, r.db, unit, unit.ID, unit.Version)
}

func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.OrganizationalUnit, error) {
	var unit organization.OrganizationalUnit
	if err := notDeleted(r.db.WithContext(ctx)).First(&unit, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

func (r *GormUnitRepository) FindByCode(ctx context.Context, code string) (*organization.OrganizationalUnit, error) {
	var unit organization.OrganizationalUnit
	if err := notDeleted(r.db.WithContext(ctx)).
		First(&unit, "code = ?", strings.ToUpper(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &unit, nil
}

// FindOperational returns units active at the given instant, ordered
// for tree reconstruction.
func (r *GormUnitRepository) FindOperational(ctx context.Context, now time.Time) ([]*organization.OrganizationalUnit, error) {
	var units []*organization.OrganizationalUnit
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("active = true AND (deactivated_at IS NULL OR deactivated_at > ?)", now).
		Order("level ASC, horizontal_order ASC, code ASC").
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *GormUnitRepository) FindAll(ctx context.Context) ([]*organization.OrganizationalUnit, error) {
	var units []*organization.OrganizationalUnit
	if err := notDeleted(r.db.WithContext(ctx)).
		Order("level ASC, horizontal_order ASC, code ASC").
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *GormUnitRepository) FindChildren(ctx context.Context, parentID uuid.UUID) ([]*organization.OrganizationalUnit, error) {
	var units []*organization.OrganizationalUnit
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("parent_id = ?", parentID).
		Order("horizontal_order ASC, code ASC").
		Find(&units).Error; err != nil {
		return nil, err
	}
	return units, nil
}

func (r *GormUnitRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := notDeleted(r.db.WithContext(ctx)).
		Model(&organization.OrganizationalUnit{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormUnitRepository) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := notDeleted(r.db.WithContext(ctx)).
		Model(&organization.OrganizationalUnit{}).
		Where("parent_id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormUnitRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return softDelete(ctx, r.db, &organization.OrganizationalUnit{}, id, deletedBy)
}

var _ organization.UnitRepository = (*GormUnitRepository)(nil)

// GormPositionRepository implements organization.PositionRepository
type GormPositionRepository struct {
	db *gorm.DB
}

// NewGormPositionRepository creates a new GormPositionRepository
func NewGormPositionRepository(db *gorm.DB) *GormPositionRepository {
	return &GormPositionRepository{db: db}
}

func (r *GormPositionRepository) Save(ctx context.Context, position *organization.Position) error {
	return saveVersioned(ctx, r.db, position, position.ID, position.Version)
}

func (r *GormPositionRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.Position, error) {
	var position organization.Position
	if err := notDeleted(r.db.WithContext(ctx)).First(&position, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &position, nil
}

func (r *GormPositionRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*organization.Position, error) {
	var positions []*organization.Position
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("unit_id = ?", unitID).
		Order("level ASC, code ASC").
		Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *GormPositionRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*organization.Position, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var positions []*organization.Position
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("id IN ?", ids).
		Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

func (r *GormPositionRepository) ExistsByCode(ctx context.Context, unitID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := notDeleted(r.db.WithContext(ctx)).
		Model(&organization.Position{}).
		Where("unit_id = ? AND code = ?", unitID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormPositionRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return softDelete(ctx, r.db, &organization.Position{}, id, deletedBy)
}

var _ organization.PositionRepository = (*GormPositionRepository)(nil)

// GormFunctionalRoleRepository implements organization.FunctionalRoleRepository
type GormFunctionalRoleRepository struct {
	db *gorm.DB
}

// NewGormFunctionalRoleRepository creates a new GormFunctionalRoleRepository
func NewGormFunctionalRoleRepository(db *gorm.DB) *GormFunctionalRoleRepository {
	return &GormFunctionalRoleRepository{db: db}
}

func (r *GormFunctionalRoleRepository) Save(ctx context.Context, role *organization.FunctionalRole) error {
	return saveVersioned(ctx, r.db, role, role.ID, role.Version)
}

func (r *GormFunctionalRoleRepository) FindByID(ctx context.Context, id uuid.UUID) (*organization.FunctionalRole, error) {
	var role organization.FunctionalRole
	if err := notDeleted(r.db.WithContext(ctx)).First(&role, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &role, nil
}

func (r *GormFunctionalRoleRepository) FindAll(ctx context.Context, onlyActive bool) ([]*organization.FunctionalRole, error) {
	var roles []*organization.FunctionalRole
	query := notDeleted(r.db.WithContext(ctx)).Order("authority_level ASC, code ASC")
	if onlyActive {
		query = query.Where("active = true")
	}
	if err := query.Find(&roles).Error; err != nil {
		return nil, err
	}
	return roles, nil
}

func (r *GormFunctionalRoleRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := notDeleted(r.db.WithContext(ctx)).
		Model(&organization.FunctionalRole{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormFunctionalRoleRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return softDelete(ctx, r.db, &organization.FunctionalRole{}, id, deletedBy)
}

var _ organization.FunctionalRoleRepository = (*GormFunctionalRoleRepository)(nil)
