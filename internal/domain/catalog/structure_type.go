package catalog

import (
	"strings"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
)

// StructureType classifies organizational units (comandancia, escuadrón,
// sección, ...). It is reference data consumed by the organization context.
type StructureType struct {
	shared.AuditedAggregateRoot
	Code        string
	Name        string
	Description string
	Active      bool
}

// NewStructureType creates a new structure type
func NewStructureType(code, name string) (*StructureType, error) {
	if err := validateCatalogCode(code); err != nil {
		return nil, err
	}
	if err := validateCatalogName(name); err != nil {
		return nil, err
	}

	return &StructureType{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Code:                 strings.ToUpper(strings.TrimSpace(code)),
		Name:                 strings.TrimSpace(name),
		Active:               true,
	}, nil
}

// Update updates the display fields
func (s *StructureType) Update(name, description string) error {
	if err := validateCatalogName(name); err != nil {
		return err
	}
	s.Name = strings.TrimSpace(name)
	s.Description = description
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Activate marks the structure type as usable
func (s *StructureType) Activate() {
	s.Active = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Deactivate retires the structure type without deleting it
func (s *StructureType) Deactivate() {
	s.Active = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

func validateCatalogCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Code cannot exceed 50 characters")
	}
	return nil
}

func validateCatalogName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

// TableName returns the database table name
func (StructureType) TableName() string {
	return "tipos_estructura_militar"
}
