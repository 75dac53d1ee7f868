package shared

import "time"

// DateRange is a half-open-ended validity interval. A nil End means the
// range extends unbounded into the future.
type DateRange struct {
	Start time.Time
	End   *time.Time
}

// NewDateRange creates a date range. End may be nil for open-ended ranges.
func NewDateRange(start time.Time, end *time.Time) (DateRange, error) {
	if end != nil && end.Before(start) {
		return DateRange{}, NewDomainError("INVALID_DATE_RANGE", "End date cannot precede start date")
	}
	return DateRange{Start: start, End: end}, nil
}

// IsOpenEnded reports whether the range has no end date
func (r DateRange) IsOpenEnded() bool {
	return r.End == nil
}

// Overlaps reports whether two ranges share at least one day. Boundaries
// are inclusive: ranges that merely touch on the same date overlap.
func (r DateRange) Overlaps(other DateRange) bool {
	if r.End != nil && r.End.Before(other.Start) {
		return false
	}
	if other.End != nil && other.End.Before(r.Start) {
		return false
	}
	return true
}

// Contains reports whether the given instant falls within the range
func (r DateRange) Contains(t time.Time) bool {
	if t.Before(r.Start) {
		return false
	}
	return r.End == nil || !r.End.Before(t)
}

// EndsBefore reports whether the range is closed and ends strictly before t
func (r DateRange) EndsBefore(t time.Time) bool {
	return r.End != nil && r.End.Before(t)
}
