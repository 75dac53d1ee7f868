package personnel

import "time"

// RecordState is the observable state of an assignment or role record.
// State is always derived from the active flag and the expiration date
// at read time; it is never stored.
type RecordState string

const (
	StatePermanente RecordState = "PERMANENTE"
	StateVigente    RecordState = "VIGENTE"
	StatePorVencer  RecordState = "POR_VENCER"
	StateVencida    RecordState = "VENCIDA"
	StateInactiva   RecordState = "INACTIVA"
)

// DefaultAlertWindowDays is the default look-ahead for POR_VENCER
const DefaultAlertWindowDays = 30

// StatusInfo carries the derived state plus the days remaining until
// expiration (nil for permanent records).
type StatusInfo struct {
	State         RecordState `json:"estado"`
	DaysRemaining *int        `json:"dias_restantes,omitempty"`
}

// DeriveStatus computes the record state at the given instant.
//
//	inactive flag          -> INACTIVA, whatever the dates say
//	no expiration          -> PERMANENTE
//	expiration in the past -> VENCIDA
//	within alert window    -> POR_VENCER
//	otherwise              -> VIGENTE
func DeriveStatus(now time.Time, isActive bool, expiration *time.Time, alertWindowDays int) StatusInfo {
	if !isActive {
		return StatusInfo{State: StateInactiva}
	}
	if expiration == nil {
		return StatusInfo{State: StatePermanente}
	}

	days := int(expiration.Sub(now).Hours() / 24)
	if expiration.Before(now) {
		return StatusInfo{State: StateVencida, DaysRemaining: &days}
	}
	if days <= alertWindowDays {
		return StatusInfo{State: StatePorVencer, DaysRemaining: &days}
	}
	return StatusInfo{State: StateVigente, DaysRemaining: &days}
}

// IsVigente reports whether a record with the given flag and expiration
// counts as in force at the given instant (PERMANENTE, VIGENTE and
// POR_VENCER all qualify).
func IsVigente(now time.Time, isActive bool, expiration *time.Time) bool {
	if !isActive {
		return false
	}
	return expiration == nil || !expiration.Before(now)
}
