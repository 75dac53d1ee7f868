package archive

import (
	"context"

	"github.com/google/uuid"
)

// DocumentRepository defines persistence for document metadata
type DocumentRepository interface {
	Save(ctx context.Context, document *Document) error
	FindByID(ctx context.Context, id uuid.UUID) (*Document, error)
	FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*Document, error)
	FindByProfileAndKind(ctx context.Context, profileID uuid.UUID, kind DocumentKind) ([]*Document, error)
	Delete(ctx context.Context, id, deletedBy uuid.UUID) error
}
