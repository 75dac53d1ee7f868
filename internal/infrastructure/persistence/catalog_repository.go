package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/carbyfah/backend/internal/domain/catalog"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormStructureTypeRepository implements catalog.StructureTypeRepository
type GormStructureTypeRepository struct {
	db *gorm.DB
}

// NewGormStructureTypeRepository creates a new GormStructureTypeRepository
func NewGormStructureTypeRepository(db *gorm.DB) *GormStructureTypeRepository {
	return &GormStructureTypeRepository{db: db}
}

func (r *GormStructureTypeRepository) Save(ctx context.Context, st *catalog.StructureType) error {
	return saveVersioned(ctx, r.db, st, st.ID, st.Version)
}

func (r *GormStructureTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.StructureType, error) {
	var st catalog.StructureType
	if err := notDeleted(r.db.WithContext(ctx)).First(&st, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *GormStructureTypeRepository) FindByCode(ctx context.Context, code string) (*catalog.StructureType, error) {
	var st catalog.StructureType
	if err := notDeleted(r.db.WithContext(ctx)).
		First(&st, "code = ?", strings.ToUpper(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *GormStructureTypeRepository) FindAll(ctx context.Context, onlyActive bool) ([]*catalog.StructureType, error) {
	var types []*catalog.StructureType
	query := notDeleted(r.db.WithContext(ctx)).Order("code ASC")
	if onlyActive {
		query = query.Where("active = true")
	}
	if err := query.Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

func (r *GormStructureTypeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := notDeleted(r.db.WithContext(ctx)).
		Model(&catalog.StructureType{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormStructureTypeRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return softDelete(ctx, r.db, &catalog.StructureType{}, id, deletedBy)
}

var _ catalog.StructureTypeRepository = (*GormStructureTypeRepository)(nil)

// GormGradeRepository implements catalog.GradeRepository
type GormGradeRepository struct {
	db *gorm.DB
}

// NewGormGradeRepository creates a new GormGradeRepository
func NewGormGradeRepository(db *gorm.DB) *GormGradeRepository {
	return &GormGradeRepository{db: db}
}

func (r *GormGradeRepository) Save(ctx context.Context, g *catalog.Grade) error {
	return saveVersioned(ctx, r.db, g, g.ID, g.Version)
}

func (r *GormGradeRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Grade, error) {
	var grade catalog.Grade
	if err := notDeleted(r.db.WithContext(ctx)).First(&grade, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &grade, nil
}

func (r *GormGradeRepository) FindByCode(ctx context.Context, code string) (*catalog.Grade, error) {
	var grade catalog.Grade
	if err := notDeleted(r.db.WithContext(ctx)).
		First(&grade, "code = ?", strings.ToUpper(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &grade, nil
}

// FindAll returns grades in rank order, highest authority first
func (r *GormGradeRepository) FindAll(ctx context.Context, onlyActive bool) ([]*catalog.Grade, error) {
	var grades []*catalog.Grade
	query := notDeleted(r.db.WithContext(ctx)).Order("rank_order ASC")
	if onlyActive {
		query = query.Where("active = true")
	}
	if err := query.Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

func (r *GormGradeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := notDeleted(r.db.WithContext(ctx)).
		Model(&catalog.Grade{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormGradeRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return softDelete(ctx, r.db, &catalog.Grade{}, id, deletedBy)
}

var _ catalog.GradeRepository = (*GormGradeRepository)(nil)

// GormServiceStatusRepository implements catalog.ServiceStatusRepository
type GormServiceStatusRepository struct {
	db *gorm.DB
}

// NewGormServiceStatusRepository creates a new GormServiceStatusRepository
func NewGormServiceStatusRepository(db *gorm.DB) *GormServiceStatusRepository {
	return &GormServiceStatusRepository{db: db}
}

func (r *GormServiceStatusRepository) Save(ctx context.Context, s *catalog.ServiceStatus) error {
	return saveVersioned(ctx, r.db, s, s.ID, s.Version)
}

func (r *GormServiceStatusRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.ServiceStatus, error) {
	var status catalog.ServiceStatus
	if err := notDeleted(r.db.WithContext(ctx)).First(&status, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (r *GormServiceStatusRepository) FindAll(ctx context.Context, onlyActive bool) ([]*catalog.ServiceStatus, error) {
	var statuses []*catalog.ServiceStatus
	query := notDeleted(r.db.WithContext(ctx)).Order("code ASC")
	if onlyActive {
		query = query.Where("active = true")
	}
	if err := query.Find(&statuses).Error; err != nil {
		return nil, err
	}
	return statuses, nil
}

func (r *GormServiceStatusRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := notDeleted(r.db.WithContext(ctx)).
		Model(&catalog.ServiceStatus{}).
		Where("code = ?", strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormServiceStatusRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return softDelete(ctx, r.db, &catalog.ServiceStatus{}, id, deletedBy)
}

var _ catalog.ServiceStatusRepository = (*GormServiceStatusRepository)(nil)
