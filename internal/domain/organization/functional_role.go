package organization

import (
	"strings"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
)

// FunctionalRole is a global, unit-independent duty (rol funcional) a
// profile may hold, such as flight-safety officer or armory custodian.
// AuthorityLevel follows the hierarchy convention: lower is higher.
type FunctionalRole struct {
	shared.AuditedAggregateRoot
	Code           string
	Name           string
	AuthorityLevel int
	Active         bool
}

// NewFunctionalRole creates a new functional role
func NewFunctionalRole(code, name string, authorityLevel int) (*FunctionalRole, error) {
	if err := validateUnitCode(code); err != nil {
		return nil, err
	}
	if err := validateUnitName(name); err != nil {
		return nil, err
	}
	if authorityLevel < 1 {
		return nil, shared.NewDomainError("INVALID_AUTHORITY", "Authority level must be at least 1")
	}

	return &FunctionalRole{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Code:                 strings.ToUpper(strings.TrimSpace(code)),
		Name:                 strings.TrimSpace(name),
		AuthorityLevel:       authorityLevel,
		Active:               true,
	}, nil
}

// Update updates the display fields
func (r *FunctionalRole) Update(name string, authorityLevel int) error {
	if err := validateUnitName(name); err != nil {
		return err
	}
	if authorityLevel < 1 {
		return shared.NewDomainError("INVALID_AUTHORITY", "Authority level must be at least 1")
	}

	r.Name = strings.TrimSpace(name)
	r.AuthorityLevel = authorityLevel
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// Deactivate retires the role without deleting it
func (r *FunctionalRole) Deactivate() {
	r.Active = false
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
}

// TableName returns the database table name
func (FunctionalRole) TableName() string {
	return "roles_funcionales"
}
