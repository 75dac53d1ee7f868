package personnel

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyEntry(t *testing.T, profileID uuid.UUID, name string, level int, start time.Time, end *time.Time) *CareerHistoryEntry {
	t.Helper()
	e, err := NewCareerHistoryEntry(profileID, uuid.New(), uuid.New(), name, level, start, end)
	require.NoError(t, err)
	return e
}

func TestCareerHistoryEntry_Close(t *testing.T) {
	profileID := uuid.New()

	t.Run("closes an open entry", func(t *testing.T) {
		e := historyEntry(t, profileID, "Jefe de Escuadrón", 4, day(2020, 1, 1), nil)
		require.NoError(t, e.Close(day(2022, 6, 1)))
		assert.Equal(t, day(2022, 6, 1), *e.EndDate)
	})

	t.Run("cannot close twice", func(t *testing.T) {
		e := historyEntry(t, profileID, "Jefe de Escuadrón", 4, day(2020, 1, 1), dayPtr(2022, 6, 1))
		assert.ErrorIs(t, e.Close(day(2023, 1, 1)), ErrAlreadyFinalized)
	})

	t.Run("cannot close before start", func(t *testing.T) {
		e := historyEntry(t, profileID, "Jefe de Escuadrón", 4, day(2020, 1, 1), nil)
		require.Error(t, e.Close(day(2019, 1, 1)))
	})
}

func TestReconstructCareer(t *testing.T) {
	profileID := uuid.New()

	t.Run("promotion is a move to a lower hierarchy level", func(t *testing.T) {
		// Entries deliberately out of order to exercise the sort.
		entries := []*CareerHistoryEntry{
			historyEntry(t, profileID, "Comandante de Grupo", 3, day(2022, 7, 1), nil),
			historyEntry(t, profileID, "Oficial de Operaciones", 5, day(2018, 1, 1), dayPtr(2020, 1, 1)),
			historyEntry(t, profileID, "Jefe de Escuadrón", 4, day(2020, 1, 1), dayPtr(2022, 7, 1)),
		}

		moves := ReconstructCareer(entries)
		require.Len(t, moves, 2)

		assert.Equal(t, "Oficial de Operaciones", moves[0].From.PositionName)
		assert.Equal(t, "Jefe de Escuadrón", moves[0].To.PositionName)
		assert.True(t, moves[0].IsPromotion)

		assert.Equal(t, "Comandante de Grupo", moves[1].To.PositionName)
		assert.True(t, moves[1].IsPromotion)
	})

	t.Run("lateral move is not a promotion", func(t *testing.T) {
		entries := []*CareerHistoryEntry{
			historyEntry(t, profileID, "Jefe S-1", 4, day(2020, 1, 1), dayPtr(2022, 1, 1)),
			historyEntry(t, profileID, "Jefe S-3", 4, day(2022, 1, 1), nil),
		}

		moves := ReconstructCareer(entries)
		require.Len(t, moves, 1)
		assert.False(t, moves[0].IsPromotion)
	})

	t.Run("fewer than two entries yields no moves", func(t *testing.T) {
		assert.Nil(t, ReconstructCareer(nil))
		assert.Nil(t, ReconstructCareer([]*CareerHistoryEntry{
			historyEntry(t, profileID, "Jefe S-1", 4, day(2020, 1, 1), nil),
		}))
	})
}
