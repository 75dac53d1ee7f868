package persistence

import (
	"context"
	"errors"

	"github.com/carbyfah/backend/internal/domain/archive"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDocumentRepository implements archive.DocumentRepository
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

func (r *GormDocumentRepository) Save(ctx context.Context, document *archive.Document) error {
	return saveVersioned(ctx, r.db, document, document.ID, document.Version)
}

func (r *GormDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*archive.Document, error) {
	var document archive.Document
	if err := notDeleted(r.db.WithContext(ctx)).First(&document, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &document, nil
}

func (r *GormDocumentRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*archive.Document, error) {
	var documents []*archive.Document
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("profile_id = ?", profileID).
		Order("uploaded_at DESC").
		Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *GormDocumentRepository) FindByProfileAndKind(ctx context.Context, profileID uuid.UUID, kind archive.DocumentKind) ([]*archive.Document, error) {
	var documents []*archive.Document
	if err := notDeleted(r.db.WithContext(ctx)).
		Where("profile_id = ? AND kind = ?", profileID, kind).
		Order("uploaded_at DESC").
		Find(&documents).Error; err != nil {
		return nil, err
	}
	return documents, nil
}

func (r *GormDocumentRepository) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	return softDelete(ctx, r.db, &archive.Document{}, id, deletedBy)
}

var _ archive.DocumentRepository = (*GormDocumentRepository)(nil)
