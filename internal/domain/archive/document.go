package archive

import (
	"path"
	"strings"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// DocumentKind classifies a digital file attached to a profile
type DocumentKind string

const (
	DocumentKindPhoto       DocumentKind = "FOTOGRAFIA"
	DocumentKindIdentity    DocumentKind = "IDENTIDAD"
	DocumentKindAppointment DocumentKind = "NOMBRAMIENTO"
	DocumentKindDiploma     DocumentKind = "DIPLOMA"
	DocumentKindMedical     DocumentKind = "MEDICO"
	DocumentKindOther       DocumentKind = "OTRO"
)

// MaxDocumentSize caps uploads at 20 MiB
const MaxDocumentSize = 20 << 20

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// Document is one stored digital file (archivo digital). The bytes
// themselves live in object storage under StorageKey; the aggregate
// only holds the metadata.
type Document struct {
	shared.AuditedAggregateRoot
	ProfileID   uuid.UUID
	Kind        DocumentKind
	FileName    string
	ContentType string
	SizeBytes   int64
	StorageKey  string
	Description string
	UploadedAt  time.Time
}

// NewDocument creates the metadata record for an upload. The storage
// key is assigned later, once the bytes are persisted.
func NewDocument(profileID uuid.UUID, kind DocumentKind, fileName, contentType string, sizeBytes int64) (*Document, error) {
	if profileID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Profile reference is required")
	}
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	if err := validateFileName(fileName); err != nil {
		return nil, err
	}
	if sizeBytes <= 0 {
		return nil, shared.NewDomainError("INVALID_FILE", "File is empty")
	}
	if sizeBytes > MaxDocumentSize {
		return nil, shared.NewDomainError("FILE_TOO_LARGE", "File exceeds the maximum allowed size")
	}

	return &Document{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		ProfileID:            profileID,
		Kind:                 kind,
		FileName:             strings.TrimSpace(fileName),
		ContentType:          contentType,
		SizeBytes:            sizeBytes,
		UploadedAt:           time.Now(),
	}, nil
}

// AttachStorageKey records where the bytes were stored
func (d *Document) AttachStorageKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key cannot be empty")
	}

	d.StorageKey = key
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// SetDescription sets the free-text description
func (d *Document) SetDescription(description string) error {
	if len(description) > 500 {
		return shared.NewDomainError("INVALID_DESCRIPTION", "Description cannot exceed 500 characters")
	}

	d.Description = strings.TrimSpace(description)
	d.UpdatedAt = time.Now()
	d.IncrementVersion()
	return nil
}

// Extension returns the lowercased file extension, dot included
func (d *Document) Extension() string {
	return strings.ToLower(path.Ext(d.FileName))
}

func validateKind(kind DocumentKind) error {
	switch kind {
	case DocumentKindPhoto, DocumentKindIdentity, DocumentKindAppointment,
		DocumentKindDiploma, DocumentKindMedical, DocumentKindOther:
		return nil
	}
	return shared.NewDomainError("INVALID_DOCUMENT_KIND", "Unknown document kind")
}

func validateFileName(fileName string) error {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if len(fileName) > 255 {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name cannot exceed 255 characters")
	}
	if strings.ContainsAny(fileName, "/\\") {
		return shared.NewDomainError("INVALID_FILE_NAME", "File name cannot contain path separators")
	}
	if !allowedExtensions[strings.ToLower(path.Ext(fileName))] {
		return shared.NewDomainError("UNSUPPORTED_FILE_TYPE", "Only PDF and image files are accepted")
	}
	return nil
}

// TableName returns the database table name
func (Document) TableName() string {
	return "archivos_digitales"
}
