package personnel

import (
	"testing"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(y int, m time.Month, d int) *time.Time {
	t := day(y, m, d)
	return &t
}

func newAssignment(t *testing.T, start time.Time, end *time.Time) *CurrentAssignment {
	t.Helper()
	a, err := NewCurrentAssignment(uuid.New(), uuid.New(), uuid.New(), start, end)
	require.NoError(t, err)
	return a
}

func TestNewCurrentAssignment(t *testing.T) {
	t.Run("open-ended assignment is vigente", func(t *testing.T) {
		a := newAssignment(t, day(2024, 1, 1), nil)
		assert.True(t, a.IsVigente(day(2030, 1, 1)))
		assert.Len(t, a.GetDomainEvents(), 1)
	})

	t.Run("rejects missing references", func(t *testing.T) {
		_, err := NewCurrentAssignment(uuid.Nil, uuid.New(), uuid.New(), day(2024, 1, 1), nil)
		require.Error(t, err)
	})

	t.Run("rejects end before start", func(t *testing.T) {
		_, err := NewCurrentAssignment(uuid.New(), uuid.New(), uuid.New(), day(2024, 6, 1), dayPtr(2024, 1, 1))
		require.Error(t, err)
	})
}

func TestCurrentAssignment_Extend(t *testing.T) {
	now := day(2024, 7, 1)

	t.Run("extends a vigente assignment", func(t *testing.T) {
		a := newAssignment(t, day(2024, 1, 1), dayPtr(2024, 8, 1))
		require.NoError(t, a.Extend(day(2025, 8, 1), now))
		assert.Equal(t, day(2025, 8, 1), *a.EndDate)
	})

	t.Run("expired assignment is rejected and left unchanged", func(t *testing.T) {
		a := newAssignment(t, day(2023, 1, 1), dayPtr(2024, 1, 1))
		versionBefore := a.Version

		err := a.Extend(day(2025, 1, 1), now)
		assert.ErrorIs(t, err, ErrNotVigente)
		assert.Equal(t, day(2024, 1, 1), *a.EndDate)
		assert.Equal(t, versionBefore, a.Version)
	})

	t.Run("inactive assignment is rejected", func(t *testing.T) {
		a := newAssignment(t, day(2024, 1, 1), nil)
		a.Deactivate()
		assert.ErrorIs(t, a.Extend(day(2025, 1, 1), now), ErrNotVigente)
	})

	t.Run("new end not after current end is rejected", func(t *testing.T) {
		a := newAssignment(t, day(2024, 1, 1), dayPtr(2024, 12, 1))
		assert.ErrorIs(t, a.Extend(day(2024, 12, 1), now), ErrExpirationInPast)
		assert.ErrorIs(t, a.Extend(day(2024, 8, 1), now), ErrExpirationInPast)
	})

	t.Run("new end in the past is rejected", func(t *testing.T) {
		a := newAssignment(t, day(2024, 1, 1), nil)
		assert.ErrorIs(t, a.Extend(day(2024, 6, 1), now), ErrExpirationInPast)
	})
}

func TestCurrentAssignment_Finalize(t *testing.T) {
	t.Run("sets end date and keeps active flag", func(t *testing.T) {
		a := newAssignment(t, day(2024, 1, 1), nil)
		require.NoError(t, a.Finalize(day(2024, 7, 1)))

		assert.Equal(t, day(2024, 7, 1), *a.EndDate)
		assert.True(t, a.Active)
		assert.Equal(t, StateVencida, a.Status(day(2024, 8, 1), DefaultAlertWindowDays).State)
	})

	t.Run("cannot finalize before start", func(t *testing.T) {
		a := newAssignment(t, day(2024, 6, 1), nil)
		require.Error(t, a.Finalize(day(2024, 1, 1)))
	})

	t.Run("cannot reopen an earlier end date", func(t *testing.T) {
		a := newAssignment(t, day(2024, 1, 1), dayPtr(2024, 3, 1))
		assert.ErrorIs(t, a.Finalize(day(2024, 9, 1)), ErrAlreadyFinalized)
	})
}

func TestHasDateConflict(t *testing.T) {
	profileID := uuid.New()

	openEnded, err := NewCurrentAssignment(profileID, uuid.New(), uuid.New(), day(2024, 1, 1), nil)
	require.NoError(t, err)

	t.Run("second open-ended assignment conflicts", func(t *testing.T) {
		candidate, err := NewCurrentAssignment(profileID, uuid.New(), uuid.New(), day(2024, 6, 1), nil)
		require.NoError(t, err)

		conflict := HasDateConflict([]*CurrentAssignment{openEnded}, candidate.Range(), candidate.ID)
		assert.True(t, conflict)
	})

	t.Run("range before existing start does not conflict", func(t *testing.T) {
		candidate := shared.DateRange{Start: day(2023, 1, 1), End: dayPtr(2023, 12, 31)}
		assert.False(t, HasDateConflict([]*CurrentAssignment{openEnded}, candidate, uuid.Nil))
	})

	t.Run("inactive records are ignored", func(t *testing.T) {
		openEnded.Deactivate()
		candidate := shared.DateRange{Start: day(2024, 6, 1)}
		assert.False(t, HasDateConflict([]*CurrentAssignment{openEnded}, candidate, uuid.Nil))
		openEnded.Active = true
	})

	t.Run("record being modified is excluded", func(t *testing.T) {
		assert.False(t, HasDateConflict([]*CurrentAssignment{openEnded}, openEnded.Range(), openEnded.ID))
	})
}
