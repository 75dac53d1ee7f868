package personnel

import (
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Lifecycle rejection reasons. Operations return these instead of a
// silent false so callers cannot miss a refused transition.
var (
	ErrNotVigente       = shared.NewDomainError("NOT_VIGENTE", "Record is not currently in force")
	ErrExpirationInPast = shared.NewDomainError("EXPIRATION_IN_PAST", "New expiration date is not after the current one")
	ErrAlreadyFinalized = shared.NewDomainError("ALREADY_FINALIZED", "Record already has an end date")
)

// CurrentAssignment places a profile in one unit and position
// (asignación actual). A nil EndDate means the assignment is open-ended
// and therefore vigente.
type CurrentAssignment struct {
	shared.AuditedAggregateRoot
	ProfileID  uuid.UUID
	UnitID     uuid.UUID
	PositionID uuid.UUID
	StartDate  time.Time
	EndDate    *time.Time
	Active     bool
}

// NewCurrentAssignment creates an assignment starting at startDate.
// endDate may be nil for an open-ended assignment.
func NewCurrentAssignment(profileID, unitID, positionID uuid.UUID, startDate time.Time, endDate *time.Time) (*CurrentAssignment, error) {
	if profileID == uuid.Nil || unitID == uuid.Nil || positionID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Profile, unit and position are required")
	}
	if _, err := shared.NewDateRange(startDate, endDate); err != nil {
		return nil, err
	}

	a := &CurrentAssignment{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		ProfileID:            profileID,
		UnitID:               unitID,
		PositionID:           positionID,
		StartDate:            startDate,
		EndDate:              endDate,
		Active:               true,
	}

	a.AddDomainEvent(NewAssignmentCreatedEvent(a))

	return a, nil
}

// Range returns the validity interval of the assignment
func (a *CurrentAssignment) Range() shared.DateRange {
	return shared.DateRange{Start: a.StartDate, End: a.EndDate}
}

// Status derives the observable state at the given instant
func (a *CurrentAssignment) Status(now time.Time, alertWindowDays int) StatusInfo {
	return DeriveStatus(now, a.Active, a.EndDate, alertWindowDays)
}

// IsVigente reports whether the assignment is in force at the instant
func (a *CurrentAssignment) IsVigente(now time.Time) bool {
	return IsVigente(now, a.Active, a.EndDate)
}

// Extend pushes the end date further out. Only legal while the
// assignment is vigente; a refused extension leaves the record
// untouched.
func (a *CurrentAssignment) Extend(newEnd time.Time, now time.Time) error {
	if !a.IsVigente(now) {
		return ErrNotVigente
	}
	if a.EndDate != nil && !newEnd.After(*a.EndDate) {
		return ErrExpirationInPast
	}
	if newEnd.Before(now) {
		return ErrExpirationInPast
	}

	a.EndDate = &newEnd
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	a.AddDomainEvent(NewAssignmentExtendedEvent(a))

	return nil
}

// Finalize closes the assignment at the given date. The active flag is
// kept: a finalized assignment reads as VENCIDA, not INACTIVA.
func (a *CurrentAssignment) Finalize(endDate time.Time) error {
	if a.EndDate != nil && a.EndDate.Before(endDate) {
		return ErrAlreadyFinalized
	}
	if endDate.Before(a.StartDate) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "End date cannot precede start date")
	}

	a.EndDate = &endDate
	a.UpdatedAt = time.Now()
	a.IncrementVersion()

	a.AddDomainEvent(NewAssignmentFinalizedEvent(a))

	return nil
}

// Deactivate clears the active flag
func (a *CurrentAssignment) Deactivate() {
	a.Active = false
	a.UpdatedAt = time.Now()
	a.IncrementVersion()
}

// TableName returns the database table name
func (CurrentAssignment) TableName() string {
	return "asignaciones_actuales"
}
