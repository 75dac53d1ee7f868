package persistence

import (
	"context"
	"errors"

	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProfileRepository implements personnel.ProfileRepository
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

func (r *GormProfileRepository) Save(ctx context.Context, profile *personnel.MilitaryProfile) error {
	return saveVersioned(ctx, r.db, profile, profile.ID, profile.Version)
}

func (r *GormProfileRepository) FindByID(ctx context.Context, id uuid.UUID) (*personnel.MilitaryProfile, error) {
	var profile personnel.MilitaryProfile
	if err := notDeleted(r.db.WithContext(ctx)).First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *GormProfileRepository) FindByServiceNumber(ctx context.Context, serviceNumber string) (*personnel.MilitaryProfile, error) {
	var profile personnel.MilitaryProfile
	if err := notDeleted(r.db.WithContext(ctx)).
		First(&profile, "service_number = ?", serviceNumber).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *GormProfileRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*personnel.MilitaryProfile, error) {
	var profiles []*personnel.MilitaryProfile
	query := r.searchScope(notDeleted(r.db.WithContext(ctx)), filter)
	if err := applyFilter(query, filter).Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *GormProfileRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.searchScope(notDeleted(r.db.WithContext(ctx)).Model(&personnel.MilitaryProfile{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormProfileRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	if err := notDeleted(r.db.WithContext(ctx)).
		Model(&personnel.MilitaryProfile{}).
		Where("active = true").
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormProfileRepository) ExistsByServiceNumber(ctx context.Context, serviceNumber string) (bool, error) {
	var count int64
	if err := notDeleted(r.db.WithContext(ctx)).
		Model(&personnel.MilitaryProfile{}).
		Where("service_number = ?", serviceNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormProfileRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return softDelete(ctx, r.db, &personnel.MilitaryProfile{}, id, deletedBy)
}

// searchScope matches the search term against names and service number.
// The term arrives already lowercased and accent-folded; unaccent on the
// stored side keeps "Pérez" findable as "perez". Requires the Postgres
// unaccent extension.
func (r *GormProfileRepository) searchScope(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search == "" {
		return query
	}
	pattern := "%" + filter.Search + "%"
	return query.Where(
		"unaccent(lower(first_name || ' ' || last_name)) LIKE ? OR lower(service_number) LIKE ? OR document_id LIKE ?",
		pattern, pattern, pattern,
	)
}

var _ personnel.ProfileRepository = (*GormProfileRepository)(nil)
