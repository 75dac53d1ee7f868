package shared

import (
	"fmt"
	"time"
)

// Elapsed describes the time between a start date and an end date (or now).
type Elapsed struct {
	Days   int
	Months int
	Years  int
}

// ElapsedBetween computes the elapsed calendar time from start to end.
// If end is nil, the reference instant is used instead.
func ElapsedBetween(start time.Time, end *time.Time, reference time.Time) Elapsed {
	until := reference
	if end != nil {
		until = *end
	}
	if until.Before(start) {
		return Elapsed{}
	}

	days := int(until.Sub(start).Hours() / 24)

	years := until.Year() - start.Year()
	months := int(until.Month()) - int(start.Month())
	if until.Day() < start.Day() {
		months--
	}
	if months < 0 {
		years--
		months += 12
	}

	return Elapsed{Days: days, Months: months, Years: years}
}

// Format renders the elapsed time as "N años y M meses". Spans shorter
// than a month are rendered in days.
func (e Elapsed) Format() string {
	switch {
	case e.Years > 0 && e.Months > 0:
		return fmt.Sprintf("%s y %s", pluralize(e.Years, "año", "años"), pluralize(e.Months, "mes", "meses"))
	case e.Years > 0:
		return pluralize(e.Years, "año", "años")
	case e.Months > 0:
		return pluralize(e.Months, "mes", "meses")
	default:
		return pluralize(e.Days, "día", "días")
	}
}

// HumanizeSince buckets the time elapsed since t into a coarse label
// (hoy, ayer, N días, N meses, N años). Used for account staleness.
func HumanizeSince(t time.Time, reference time.Time) string {
	if t.After(reference) {
		return "hoy"
	}

	days := int(reference.Sub(t).Hours() / 24)
	switch {
	case days == 0:
		return "hoy"
	case days == 1:
		return "ayer"
	case days < 30:
		return fmt.Sprintf("hace %s", pluralize(days, "día", "días"))
	case days < 365:
		return fmt.Sprintf("hace %s", pluralize(days/30, "mes", "meses"))
	default:
		return fmt.Sprintf("hace %s", pluralize(days/365, "año", "años"))
	}
}

func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}
