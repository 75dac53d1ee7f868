package organization

import (
	"strings"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Position is a post (cargo) belonging to one organizational unit.
// Level mirrors the unit hierarchy convention: lower means higher
// authority. IsCommand flags command posts on single-unit organigrams.
type Position struct {
	shared.AuditedAggregateRoot
	UnitID    uuid.UUID
	Code      string
	Name      string
	Level     int
	IsCommand bool
	Active    bool
}

// NewPosition creates a new position within a unit
func NewPosition(unitID uuid.UUID, code, name string, level int) (*Position, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Position requires an owning unit")
	}
	if err := validateUnitCode(code); err != nil {
		return nil, err
	}
	if err := validateUnitName(name); err != nil {
		return nil, err
	}
	if level < 1 {
		return nil, shared.NewDomainError("INVALID_LEVEL", "Hierarchy level must be at least 1")
	}

	return &Position{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		UnitID:               unitID,
		Code:                 strings.ToUpper(strings.TrimSpace(code)),
		Name:                 strings.TrimSpace(name),
		Level:                level,
		Active:               true,
	}, nil
}

// Update updates the display fields
func (p *Position) Update(name string, level int, isCommand bool) error {
	if err := validateUnitName(name); err != nil {
		return err
	}
	if level < 1 {
		return shared.NewDomainError("INVALID_LEVEL", "Hierarchy level must be at least 1")
	}

	p.Name = strings.TrimSpace(name)
	p.Level = level
	p.IsCommand = isCommand
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// Deactivate retires the position without deleting it
func (p *Position) Deactivate() {
	p.Active = false
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// OutranksOrEquals reports whether this position sits at or above other
// (lower level = higher authority). Used to detect promotions across
// career history entries.
func (p *Position) OutranksOrEquals(other *Position) bool {
	return p.Level <= other.Level
}

// TableName returns the database table name
func (Position) TableName() string {
	return "cargos"
}
