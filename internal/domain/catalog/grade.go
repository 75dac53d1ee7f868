package catalog

import (
	"strings"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
)

// Grade is a military rank (grado): code, full name, the abbreviation
// shown on the organigram, and a display order where lower numbers mean
// higher rank.
type Grade struct {
	shared.AuditedAggregateRoot
	Code         string
	Name         string
	Abbreviation string
	Order        int `gorm:"column:rank_order"`
	Active       bool
}

// NewGrade creates a new grade
func NewGrade(code, name, abbreviation string, order int) (*Grade, error) {
	if err := validateCatalogCode(code); err != nil {
		return nil, err
	}
	if err := validateCatalogName(name); err != nil {
		return nil, err
	}
	if strings.TrimSpace(abbreviation) == "" {
		return nil, shared.NewDomainError("INVALID_ABBREVIATION", "Abbreviation cannot be empty")
	}
	if order < 0 {
		return nil, shared.NewDomainError("INVALID_ORDER", "Order cannot be negative")
	}

	return &Grade{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		Code:                 strings.ToUpper(strings.TrimSpace(code)),
		Name:                 strings.TrimSpace(name),
		Abbreviation:         strings.TrimSpace(abbreviation),
		Order:                order,
		Active:               true,
	}, nil
}

// Update updates the display fields
func (g *Grade) Update(name, abbreviation string, order int) error {
	if err := validateCatalogName(name); err != nil {
		return err
	}
	if strings.TrimSpace(abbreviation) == "" {
		return shared.NewDomainError("INVALID_ABBREVIATION", "Abbreviation cannot be empty")
	}
	if order < 0 {
		return shared.NewDomainError("INVALID_ORDER", "Order cannot be negative")
	}

	g.Name = strings.TrimSpace(name)
	g.Abbreviation = strings.TrimSpace(abbreviation)
	g.Order = order
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
	return nil
}

// Activate marks the grade as usable
func (g *Grade) Activate() {
	g.Active = true
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// Deactivate retires the grade without deleting it
func (g *Grade) Deactivate() {
	g.Active = false
	g.UpdatedAt = time.Now()
	g.IncrementVersion()
}

// OutranksOrEquals reports whether this grade sits at or above other in
// the rank ordering (lower order = higher rank).
func (g *Grade) OutranksOrEquals(other *Grade) bool {
	return g.Order <= other.Order
}

// TableName returns the database table name
func (Grade) TableName() string {
	return "grados"
}
