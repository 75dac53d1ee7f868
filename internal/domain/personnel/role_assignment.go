package personnel

import (
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// RoleAssignment grants a functional role to a profile (asignación de
// rol). A nil ExpiresAt means the grant is permanent.
type RoleAssignment struct {
	shared.AuditedAggregateRoot
	ProfileID uuid.UUID
	RoleID    uuid.UUID
	StartDate time.Time
	ExpiresAt *time.Time
	Active    bool
}

// NewRoleAssignment creates a role grant starting at startDate.
// expiresAt may be nil for a permanent grant.
func NewRoleAssignment(profileID, roleID uuid.UUID, startDate time.Time, expiresAt *time.Time) (*RoleAssignment, error) {
	if profileID == uuid.Nil || roleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Profile and role are required")
	}
	if _, err := shared.NewDateRange(startDate, expiresAt); err != nil {
		return nil, err
	}

	r := &RoleAssignment{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(),
		ProfileID:            profileID,
		RoleID:               roleID,
		StartDate:            startDate,
		ExpiresAt:            expiresAt,
		Active:               true,
	}

	r.AddDomainEvent(NewRoleGrantedEvent(r))

	return r, nil
}

// Range returns the validity interval of the grant
func (r *RoleAssignment) Range() shared.DateRange {
	return shared.DateRange{Start: r.StartDate, End: r.ExpiresAt}
}

// Status derives the observable state at the given instant
func (r *RoleAssignment) Status(now time.Time, alertWindowDays int) StatusInfo {
	return DeriveStatus(now, r.Active, r.ExpiresAt, alertWindowDays)
}

// IsVigente reports whether the grant is in force at the instant
func (r *RoleAssignment) IsVigente(now time.Time) bool {
	return IsVigente(now, r.Active, r.ExpiresAt)
}

// Extend pushes the expiration further out. Only legal while vigente.
func (r *RoleAssignment) Extend(newExpiration time.Time, now time.Time) error {
	if !r.IsVigente(now) {
		return ErrNotVigente
	}
	if r.ExpiresAt != nil && !newExpiration.After(*r.ExpiresAt) {
		return ErrExpirationInPast
	}
	if newExpiration.Before(now) {
		return ErrExpirationInPast
	}

	r.ExpiresAt = &newExpiration
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewRoleExtendedEvent(r))

	return nil
}

// Revoke ends the grant at the given date and clears the active flag,
// so the record reads as INACTIVA from then on.
func (r *RoleAssignment) Revoke(at time.Time) error {
	if !r.Active {
		return ErrNotVigente
	}
	if at.Before(r.StartDate) {
		return shared.NewDomainError("INVALID_DATE_RANGE", "Revocation cannot precede start date")
	}

	r.ExpiresAt = &at
	r.Active = false
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewRoleRevokedEvent(r))

	return nil
}

// MakePermanent clears the expiration date unconditionally
func (r *RoleAssignment) MakePermanent() {
	r.ExpiresAt = nil
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewRoleMadePermanentEvent(r))
}

// Renew extends the grant by the given number of months, counted from
// the current expiration when one is set, or from now when the grant is
// permanent. Renewing a permanent grant therefore gives it a finite
// expiration months out.
func (r *RoleAssignment) Renew(months int, now time.Time) error {
	if months <= 0 {
		return shared.NewDomainError("INVALID_RENEWAL", "Renewal months must be positive")
	}
	if !r.Active {
		return ErrNotVigente
	}

	base := now
	if r.ExpiresAt != nil {
		base = *r.ExpiresAt
	}
	renewed := base.AddDate(0, months, 0)
	r.ExpiresAt = &renewed
	r.UpdatedAt = time.Now()
	r.IncrementVersion()

	r.AddDomainEvent(NewRoleRenewedEvent(r))

	return nil
}

// TableName returns the database table name
func (RoleAssignment) TableName() string {
	return "asignaciones_roles"
}
