package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestElapsedBetween(t *testing.T) {
	now := date(2024, 7, 15)

	t.Run("uses end date when set", func(t *testing.T) {
		e := ElapsedBetween(date(2020, 1, 10), datePtr(2023, 4, 10), now)
		assert.Equal(t, 3, e.Years)
		assert.Equal(t, 3, e.Months)
	})

	t.Run("falls back to reference when open-ended", func(t *testing.T) {
		e := ElapsedBetween(date(2022, 7, 15), nil, now)
		assert.Equal(t, 2, e.Years)
		assert.Equal(t, 0, e.Months)
	})

	t.Run("borrows a month when day of month not reached", func(t *testing.T) {
		e := ElapsedBetween(date(2024, 1, 20), nil, now)
		assert.Equal(t, 0, e.Years)
		assert.Equal(t, 5, e.Months)
	})

	t.Run("zero for future start", func(t *testing.T) {
		e := ElapsedBetween(date(2030, 1, 1), nil, now)
		assert.Equal(t, Elapsed{}, e)
	})
}

func TestElapsed_Format(t *testing.T) {
	assert.Equal(t, "2 años y 3 meses", Elapsed{Years: 2, Months: 3, Days: 820}.Format())
	assert.Equal(t, "1 año y 1 mes", Elapsed{Years: 1, Months: 1}.Format())
	assert.Equal(t, "3 años", Elapsed{Years: 3}.Format())
	assert.Equal(t, "5 meses", Elapsed{Months: 5}.Format())
	assert.Equal(t, "12 días", Elapsed{Days: 12}.Format())
	assert.Equal(t, "0 días", Elapsed{}.Format())
}

func TestHumanizeSince(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "hoy", HumanizeSince(now.Add(-2*time.Hour), now))
	assert.Equal(t, "ayer", HumanizeSince(now.Add(-30*time.Hour), now))
	assert.Equal(t, "hace 5 días", HumanizeSince(now.AddDate(0, 0, -5), now))
	assert.Equal(t, "hace 2 meses", HumanizeSince(now.AddDate(0, -2, -3), now))
	assert.Equal(t, "hace 1 año", HumanizeSince(now.AddDate(-1, -1, 0), now))
	assert.Equal(t, "hoy", HumanizeSince(now.Add(time.Hour), now))
}
