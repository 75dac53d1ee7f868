package persistence

import (
	"context"
	"strings"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// saveVersioned persists an aggregate with optimistic locking. Domain
// mutations increment the in-memory version before the save reaches
// here, so an update only lands when the stored version is still below
// the incoming one. A row that exists at an equal-or-newer version was
// changed by someone else: the caller gets ErrConcurrencyConflict and
// must reload.
func saveVersioned(ctx context.Context, db *gorm.DB, entity any, id uuid.UUID, version int) error {
	result := db.WithContext(ctx).
		Model(entity).
		Where("id = ? AND version < ?", id, version).
		Select("*").
		Omit("created_at").
		Updates(entity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.WithContext(ctx).Model(entity).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return shared.ErrConcurrencyConflict
	}

	return db.WithContext(ctx).Create(entity).Error
}

// softDelete marks a row deleted without removing it, recording the
// acting user. Already-deleted rows read as not found.
func softDelete(ctx context.Context, db *gorm.DB, model any, id, deletedBy uuid.UUID) error {
	result := db.WithContext(ctx).
		Model(model).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(map[string]any{
			"deleted_at": gorm.Expr("now()"),
			"deleted_by": deletedBy,
			"version":    gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// notDeleted scopes a query to rows that have not been soft-deleted
func notDeleted(db *gorm.DB) *gorm.DB {
	return db.Where("deleted_at IS NULL")
}

// applyFilter applies search-independent filter options: pagination and
// ordering. The order column is taken verbatim, so callers must pass
// known column names only.
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	if filter.OrderBy != "" {
		dir := "ASC"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "DESC"
		}
		query = query.Order(filter.OrderBy + " " + dir)
	}
	return query
}
