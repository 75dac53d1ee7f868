package archive

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/carbyfah/backend/internal/domain/archive"
	"github.com/carbyfah/backend/internal/domain/personnel"
	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ObjectStorage stores and retrieves document bytes. Keys are opaque to
// callers; PresignDownload returns a time-limited URL so file bytes
// never pass through the API.
type ObjectStorage interface {
	Upload(ctx context.Context, key, contentType string, size int64, content io.Reader) error
	PresignDownload(ctx context.Context, key string, expiry time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// DocumentService handles the digital-file lifecycle
type DocumentService struct {
	documentRepo  archive.DocumentRepository
	profileRepo   personnel.ProfileRepository
	storage       ObjectStorage
	presignExpiry time.Duration
	logger        *zap.Logger
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(
	documentRepo archive.DocumentRepository,
	profileRepo personnel.ProfileRepository,
	storage ObjectStorage,
	presignExpiry time.Duration,
	logger *zap.Logger,
) *DocumentService {
	if presignExpiry <= 0 {
		presignExpiry = 15 * time.Minute
	}
	return &DocumentService{
		documentRepo:  documentRepo,
		profileRepo:   profileRepo,
		storage:       storage,
		presignExpiry: presignExpiry,
		logger:        logger,
	}
}

// Upload validates the metadata, streams the bytes to object storage
// and persists the document record. A failed metadata save removes the
// stored object again.
func (s *DocumentService) Upload(ctx context.Context, req UploadDocumentRequest) (*DocumentResponse, error) {
	if _, err := s.profileRepo.FindByID(ctx, req.ProfileID); err != nil {
		return nil, err
	}

	document, err := archive.NewDocument(req.ProfileID, req.Kind, req.FileName, req.ContentType, req.SizeBytes)
	if err != nil {
		return nil, err
	}
	if err := document.SetDescription(req.Description); err != nil {
		return nil, err
	}
	document.CreatedBy = req.CreatedBy

	key := storageKey(document)
	if err := s.storage.Upload(ctx, key, req.ContentType, req.SizeBytes, req.Content); err != nil {
		return nil, fmt.Errorf("uploading document: %w", err)
	}
	if err := document.AttachStorageKey(key); err != nil {
		return nil, err
	}

	if err := s.documentRepo.Save(ctx, document); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("Failed to remove orphaned object", zap.Error(delErr), zap.String("key", key))
		}
		return nil, err
	}

	s.logger.Info("Document uploaded",
		zap.String("perfil_id", req.ProfileID.String()),
		zap.String("tipo", string(req.Kind)),
		zap.Int64("tamano", req.SizeBytes))

	return ToDocumentResponse(document), nil
}

// GetByID retrieves document metadata
func (s *DocumentService) GetByID(ctx context.Context, id uuid.UUID) (*DocumentResponse, error) {
	document, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToDocumentResponse(document), nil
}

// ListByProfile retrieves the documents of a profile, optionally
// filtered by kind.
func (s *DocumentService) ListByProfile(ctx context.Context, profileID uuid.UUID, kind archive.DocumentKind) ([]*DocumentResponse, error) {
	var (
		documents []*archive.Document
		err       error
	)
	if kind != "" {
		documents, err = s.documentRepo.FindByProfileAndKind(ctx, profileID, kind)
	} else {
		documents, err = s.documentRepo.FindByProfile(ctx, profileID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*DocumentResponse, len(documents))
	for i, d := range documents {
		responses[i] = ToDocumentResponse(d)
	}
	return responses, nil
}

// GetDownloadLink returns a presigned URL for the document bytes
func (s *DocumentService) GetDownloadLink(ctx context.Context, id uuid.UUID) (*DownloadLinkResponse, error) {
	document, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if document.StorageKey == "" {
		return nil, shared.NewDomainError("DOCUMENT_NOT_STORED", "Document has no stored content")
	}

	url, err := s.storage.PresignDownload(ctx, document.StorageKey, s.presignExpiry)
	if err != nil {
		return nil, fmt.Errorf("presigning download: %w", err)
	}

	return &DownloadLinkResponse{
		URL:       url,
		ExpiresAt: time.Now().Add(s.presignExpiry),
	}, nil
}

// Delete soft-deletes the metadata and removes the stored object
func (s *DocumentService) Delete(ctx context.Context, id, deletedBy uuid.UUID) error {
	document, err := s.documentRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.documentRepo.Delete(ctx, id, deletedBy); err != nil {
		return err
	}

	if document.StorageKey != "" {
		if err := s.storage.Delete(ctx, document.StorageKey); err != nil {
			s.logger.Error("Failed to delete stored object", zap.Error(err),
				zap.String("key", document.StorageKey))
		}
	}
	return nil
}

// storageKey lays objects out as perfiles/<profile>/<kind>/<document-id><ext>
func storageKey(d *archive.Document) string {
	return fmt.Sprintf("perfiles/%s/%s/%s%s", d.ProfileID, d.Kind, d.ID, d.Extension())
}
