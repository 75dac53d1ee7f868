package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAssignmentRepository implements personnel.AssignmentRepository
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GormAssignmentRepository
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

func (r *GormAssignmentRepository) Save(ctx context.Context, assignment *personnel.CurrentAssignment) error {
	return saveVersioned(ctx, r.db, assignment, assignment.ID, assignment.Version)
}

func (r *GormAssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*personnel.CurrentAssignment, error) {
	var assignment personnel.CurrentAssignment
	if err := notDeleted(r.db.WithContext(ctx)).First(&assignment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

// FindActiveByProfile returns every active record of the profile
// regardless of dates. The overlap check runs in the application layer
// against the full set.
func (r *GormAssignmentRepository) FindActiveByProfile(ctx context.Context, profileID uuid.UUID) ([]*personnel.CurrentAssignment, error) {
	var assignments []*personnel.CurrentAssignment
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("profile_id = ? AND active = true", profileID).
		Order("start_date DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *GormAssignmentRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) ([]*personnel.CurrentAssignment, error) {
	var assignments []*personnel.CurrentAssignment
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("unit_id = ? AND active = true", unitID).
		Order("start_date DESC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// FindExpiringWithin returns active records whose end date falls inside
// (now, now+days]. Open-ended records never expire and are excluded.
func (r *GormAssignmentRepository) FindExpiringWithin(ctx context.Context, now time.Time, days int) ([]*personnel.CurrentAssignment, error) {
	limit := now.AddDate(0, 0, days)
	var assignments []*personnel.CurrentAssignment
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("active = true AND end_date IS NOT NULL AND end_date > ? AND end_date <= ?", now, limit).
		Order("end_date ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// CountVigentes counts active records in force at the instant: started,
// and either open-ended or not yet past their end date.
func (r *GormAssignmentRepository) CountVigentes(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	if err := notDeleted(r.db.WithContext(ctx)).
		Model(&personnel.CurrentAssignment{}).
		Where("active = true AND start_date <= ? AND (end_date IS NULL OR end_date >= ?)", now, now).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormAssignmentRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return softDelete(ctx, r.db, &personnel.CurrentAssignment{}, id, deletedBy)
}

var _ personnel.AssignmentRepository = (*GormAssignmentRepository)(nil)

// GormRoleAssignmentRepository implements personnel.RoleAssignmentRepository
type GormRoleAssignmentRepository struct {
	db *gorm.DB
}

// NewGormRoleAssignmentRepository creates a new GormRoleAssignmentRepository
func NewGormRoleAssignmentRepository(db *gorm.DB) *GormRoleAssignmentRepository {
	return &GormRoleAssignmentRepository{db: db}
}

func (r *GormRoleAssignmentRepository) Save(ctx context.Context, grant *personnel.RoleAssignment) error {
	return saveVersioned(ctx, r.db, grant, grant.ID, grant.Version)
}

func (r *GormRoleAssignmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*personnel.RoleAssignment, error) {
	var grant personnel.RoleAssignment
	if err := notDeleted(r.db.WithContext(ctx)).First(&grant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &grant, nil
}

func (r *GormRoleAssignmentRepository) FindActiveByProfile(ctx context.Context, profileID uuid.UUID) ([]*personnel.RoleAssignment, error) {
	var grants []*personnel.RoleAssignment
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("profile_id = ? AND active = true", profileID).
		Order("start_date DESC").
		Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

// FindByProfile returns the full grant history including revoked rows
func (r *GormRoleAssignmentRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*personnel.RoleAssignment, error) {
	var grants []*personnel.RoleAssignment
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("profile_id = ?", profileID).
		Order("start_date DESC").
		Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

func (r *GormRoleAssignmentRepository) FindExpiringWithin(ctx context.Context, now time.Time, days int) ([]*personnel.RoleAssignment, error) {
	limit := now.AddDate(0, 0, days)
	var grants []*personnel.RoleAssignment
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("active = true AND expires_at IS NOT NULL AND expires_at > ? AND expires_at <= ?", now, limit).
		Order("expires_at ASC").
		Find(&grants).Error; err != nil {
		return nil, err
	}
	return grants, nil
}

func (r *GormRoleAssignmentRepository) CountVigentes(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	if err := notDeleted(r.db.WithContext(ctx)).
		Model(&personnel.RoleAssignment{}).
		Where("active = true AND start_date <= ? AND (expires_at IS NULL OR expires_at >= ?)", now, now).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRoleAssignmentRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return softDelete(ctx, r.db, &personnel.RoleAssignment{}, id, deletedBy)
}

var _ personnel.RoleAssignmentRepository = (*GormRoleAssignmentRepository)(nil)

// GormCareerHistoryRepository implements personnel.CareerHistoryRepository
type GormCareerHistoryRepository struct {
	db *gorm.DB
}

// NewGormCareerHistoryRepository creates a new GormCareerHistoryRepository
func NewGormCareerHistoryRepository(db *gorm.DB) *GormCareerHistoryRepository {
	return &GormCareerHistoryRepository{db: db}
}

func (r *GormCareerHistoryRepository) Save(ctx context.Context, entry *personnel.CareerHistoryEntry) error {
	return saveVersioned(ctx, r.db, entry, entry.ID, entry.Version)
}

func (r *GormCareerHistoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*personnel.CareerHistoryEntry, error) {
	var entry personnel.CareerHistoryEntry
	if err := notDeleted(r.db.WithContext(ctx)).First(&entry, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *GormCareerHistoryRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*personnel.CareerHistoryEntry, error) {
	var entries []*personnel.CareerHistoryEntry
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("profile_id = ?", profileID).
		Order("start_date ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// FindOpenByProfile returns the single entry without an end date. At
// most one exists per profile because a new entry closes the previous
// one first.
func (r *GormCareerHistoryRepository) FindOpenByProfile(ctx context.Context, profileID uuid.UUID) (*personnel.CareerHistoryEntry, error) {
	var entry personnel.CareerHistoryEntry
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("profile_id = ? AND end_date IS NULL", profileID).
		Order("start_date DESC").
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &entry, nil
}

var _ personnel.CareerHistoryRepository = (*GormCareerHistoryRepository)(nil)
