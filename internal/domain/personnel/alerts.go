package personnel

import (
	"time"

	"github.com/google/uuid"
)

// AlertSeverity tags how soon an expiration lands
type AlertSeverity string

const (
	SeverityCritica     AlertSeverity = "CRITICA"
	SeverityAdvertencia AlertSeverity = "ADVERTENCIA"
)

// CriticalWindowDays is the remaining-days cutoff for CRITICA
const CriticalWindowDays = 7

// AlertKind distinguishes which record family produced an alert
type AlertKind string

const (
	AlertKindAssignment AlertKind = "asignacion"
	AlertKindRole       AlertKind = "rol"
)

// ExpiryAlert is one soon-to-expire record on the alert listing
type ExpiryAlert struct {
	RecordID      uuid.UUID     `json:"id"`
	Kind          AlertKind     `json:"tipo"`
	ProfileID     uuid.UUID     `json:"perfil_id"`
	ExpiresAt     time.Time     `json:"fecha_expiracion"`
	DaysRemaining int           `json:"dias_restantes"`
	Severity      AlertSeverity `json:"severidad"`
}

// SeverityFor maps remaining days to a severity tag
func SeverityFor(daysRemaining int) AlertSeverity {
	if daysRemaining <= CriticalWindowDays {
		return SeverityCritica
	}
	return SeverityAdvertencia
}

// CollectAssignmentAlerts scans assignments for vigente records whose
// remaining days fall within the alert window.
func CollectAssignmentAlerts(assignments []*CurrentAssignment, now time.Time, windowDays int) []ExpiryAlert {
	var alerts []ExpiryAlert
	for _, a := range assignments {
		status := a.Status(now, windowDays)
		if status.State != StatePorVencer {
			continue
		}
		alerts = append(alerts, ExpiryAlert{
			RecordID:      a.ID,
			Kind:          AlertKindAssignment,
			ProfileID:     a.ProfileID,
			ExpiresAt:     *a.EndDate,
			DaysRemaining: *status.DaysRemaining,
			Severity:      SeverityFor(*status.DaysRemaining),
		})
	}
	return alerts
}

// CollectRoleAlerts is the role-grant variant of CollectAssignmentAlerts
func CollectRoleAlerts(grants []*RoleAssignment, now time.Time, windowDays int) []ExpiryAlert {
	var alerts []ExpiryAlert
	for _, r := range grants {
		status := r.Status(now, windowDays)
		if status.State != StatePorVencer {
			continue
		}
		alerts = append(alerts, ExpiryAlert{
			RecordID:      r.ID,
			Kind:          AlertKindRole,
			ProfileID:     r.ProfileID,
			ExpiresAt:     *r.ExpiresAt,
			DaysRemaining: *status.DaysRemaining,
			Severity:      SeverityFor(*status.DaysRemaining),
		})
	}
	return alerts
}
