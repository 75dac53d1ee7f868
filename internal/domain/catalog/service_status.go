package catalog

import (
	"strings"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
)

// ServiceStatus is a personnel service situation (activo, retiro,
// disponibilidad, ...).
type ServiceStatus struct {
	shared.AuditedAggregateRoot
	Code   string
	Name   string
	Active bool
}

// NewServiceStatus creates a new service status
func NewServiceStatus(code, name string) (*ServiceStatus, error) {
	if err := validateCatalogCode(code); err != nil {
		return nil, err
	}
	if err := validateCatalogName(name); err != nil {
		return nil, err
	}

	return &ServiceStatus{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Code:                 strings.ToUpper(strings.TrimSpace(code)),
		Name:                 strings.TrimSpace(name),
		Active:               true,
	}, nil
}

// Update updates the display name
func (s *ServiceStatus) Update(name string) error {
	if err := validateCatalogName(name); err != nil {
		return err
	}
	s.Name = strings.TrimSpace(name)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Deactivate retires the status without deleting it
func (s *ServiceStatus) Deactivate() {
	s.Active = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// TableName returns the database table name
func (ServiceStatus) TableName() string {
	return "situaciones_servicio"
}
