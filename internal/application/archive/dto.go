package archive

import (
	"io"
	"time"

	"github.com/carbyfah/backend/internal/domain/archive"
	"github.com/google/uuid"
)

// UploadDocumentRequest carries an upload. Content is streamed to
// object storage, never buffered whole.
type UploadDocumentRequest struct {
	ProfileID   uuid.UUID
	Kind        archive.DocumentKind
	FileName    string
	ContentType string
	SizeBytes   int64
	Description string
	Content     io.Reader
	CreatedBy   *uuid.UUID
}

// DocumentResponse is the wire form of a document's metadata
type DocumentResponse struct {
	ID          uuid.UUID            `json:"id"`
	ProfileID   uuid.UUID            `json:"perfil_id"`
	Kind        archive.DocumentKind `json:"tipo"`
	FileName    string               `json:"nombre_archivo"`
	ContentType string               `json:"tipo_contenido"`
	SizeBytes   int64                `json:"tamano_bytes"`
	Description string               `json:"descripcion,omitempty"`
	UploadedAt  time.Time            `json:"fecha_subida"`
	Version     int                  `json:"version"`
}

// ToDocumentResponse converts a domain document
func ToDocumentResponse(d *archive.Document) *DocumentResponse {
	return &DocumentResponse{
		ID:          d.ID,
		ProfileID:   d.ProfileID,
		Kind:        d.Kind,
		FileName:    d.FileName,
		ContentType: d.ContentType,
		SizeBytes:   d.SizeBytes,
		Description: d.Description,
		UploadedAt:  d.UploadedAt,
		Version:     d.Version,
	}
}

// DownloadLinkResponse carries a time-limited download URL
type DownloadLinkResponse struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expira_en"`
}
