package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestNewDateRange(t *testing.T) {
	t.Run("accepts open-ended range", func(t *testing.T) {
		r, err := NewDateRange(date(2024, 1, 1), nil)
		require.NoError(t, err)
		assert.True(t, r.IsOpenEnded())
	})

	t.Run("accepts single-day range", func(t *testing.T) {
		_, err := NewDateRange(date(2024, 1, 1), datePtr(2024, 1, 1))
		require.NoError(t, err)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		_, err := NewDateRange(date(2024, 6, 1), datePtr(2024, 1, 1))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot precede")
	})
}

func TestDateRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b DateRange
		want bool
	}{
		{
			name: "both open-ended always overlap",
			a:    DateRange{Start: date(2024, 1, 1)},
			b:    DateRange{Start: date(2024, 6, 1)},
			want: true,
		},
		{
			name: "disjoint past and future",
			a:    DateRange{Start: date(2023, 1, 1), End: datePtr(2023, 6, 30)},
			b:    DateRange{Start: date(2024, 1, 1), End: datePtr(2024, 6, 30)},
			want: false,
		},
		{
			name: "adjacent touching dates overlap",
			a:    DateRange{Start: date(2024, 1, 1), End: datePtr(2024, 6, 1)},
			b:    DateRange{Start: date(2024, 6, 1), End: datePtr(2024, 12, 31)},
			want: true,
		},
		{
			name: "closed before open start",
			a:    DateRange{Start: date(2023, 1, 1), End: datePtr(2023, 12, 31)},
			b:    DateRange{Start: date(2024, 1, 1)},
			want: false,
		},
		{
			name: "open range overlaps later closed range",
			a:    DateRange{Start: date(2024, 1, 1)},
			b:    DateRange{Start: date(2024, 6, 1), End: datePtr(2024, 7, 1)},
			want: true,
		},
		{
			name: "contained range",
			a:    DateRange{Start: date(2024, 1, 1), End: datePtr(2024, 12, 31)},
			b:    DateRange{Start: date(2024, 3, 1), End: datePtr(2024, 4, 1)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// overlap is symmetric
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestDateRange_Contains(t *testing.T) {
	r := DateRange{Start: date(2024, 1, 1), End: datePtr(2024, 12, 31)}

	assert.True(t, r.Contains(date(2024, 1, 1)))
	assert.True(t, r.Contains(date(2024, 12, 31)))
	assert.True(t, r.Contains(date(2024, 6, 15)))
	assert.False(t, r.Contains(date(2023, 12, 31)))
	assert.False(t, r.Contains(date(2025, 1, 1)))

	open := DateRange{Start: date(2024, 1, 1)}
	assert.True(t, open.Contains(date(2099, 1, 1)))
}

func TestDateRange_EndsBefore(t *testing.T) {
	closed := DateRange{Start: date(2024, 1, 1), End: datePtr(2024, 6, 1)}
	open := DateRange{Start: date(2024, 1, 1)}

	assert.True(t, closed.EndsBefore(date(2024, 6, 2)))
	assert.False(t, closed.EndsBefore(date(2024, 6, 1)))
	assert.False(t, open.EndsBefore(date(2099, 1, 1)))
}
