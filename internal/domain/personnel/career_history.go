package personnel

import (
	"sort"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CareerHistoryEntry is one append-only record of a profile holding a
// position in a unit over a period (historial de cargo). PositionLevel
// is denormalized at write time so promotion reconstruction does not
// depend on the position still existing.
type CareerHistoryEntry struct {
	shared.AuditedAggregateRoot
	ProfileID     uuid.UUID
	UnitID        uuid.UUID
	PositionID    uuid.UUID
	PositionName  string
	PositionLevel int
	StartDate     time.Time
	EndDate       *time.Time
}

// NewCareerHistoryEntry creates a history record
func NewCareerHistoryEntry(profileID, unitID, positionID uuid.UUID, positionName string, positionLevel int, startDate time.Time, endDate *time.Time) (*CareerHistoryEntry, error) {
	if profileID == uuid.Nil || unitID == uuid.Nil || positionID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Profile, unit and position are required")
	}
	if positionLevel < 1 {
		return nil, shared.NewDomainError("INVALID_LEVEL", "Position level must be at least 1")
	}
	if _, err := shared.NewDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	return &CareerHistoryEntry{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		ProfileID:            profileID,
		UnitID:               unitID,
		PositionID:           positionID,
		PositionName:         positionName,
		PositionLevel:        positionLevel,
		StartDate:            startDate,
		EndDate:              endDate,
	}, nil
}

// Close sets the end date of an open entry
func (e *CareerHistoryEntry) Close(endDate time.Time) error {
	if e.EndDate != nil {
		return ErrAlreadyFinalized
	}
	if endDate.Before(e.StartDate) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "End date cannot precede start date")
	}
	e.EndDate = &endDate
	e.UpdatedAt = time.Now()
	e.IncrementVersion()
	return nil
}

// CareerMove is a reconstructed transition between two consecutive
// history entries.
type CareerMove struct {
	From        *CareerHistoryEntry `json:"desde"`
	To          *CareerHistoryEntry `json:"hasta"`
	IsPromotion bool                `json:"es_ascenso"`
}

// ReconstructCareer orders the entries by start date and derives the
// moves between consecutive positions. A move to a lower hierarchy
// level (higher authority) counts as a promotion.
func ReconstructCareer(entries []*CareerHistoryEntry) []CareerMove {
	if len(entries) < 2 {
		return nil
	}

	ordered := make([]*CareerHistoryEntry, len(entries))
	copy(ordered, entries)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartDate.Before(ordered[j].StartDate)
	})

	moves := make([]CareerMove, 0, len(ordered)-1)
	for i := 1; i < len(ordered); i++ {
		prev, next := ordered[i-1], ordered[i]
		moves = append(moves, CareerMove{
			From:        prev,
			To:          next,
			IsPromotion: next.PositionLevel < prev.PositionLevel,
		})
	}
	return moves
}

// TableName returns the database table name
func (CareerHistoryEntry) TableName() string {
	return "historial_cargos"
}
