package personnel

import (
	"testing"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrant(t *testing.T, start time.Time, expires *time.Time) *RoleAssignment {
	t.Helper()
	r, err := NewRoleAssignment(uuid.New(), uuid.New(), start, expires)
	require.NoError(t, err)
	return r
}

func TestRoleAssignment_Renew(t *testing.T) {
	now := day(2024, 7, 1)

	t.Run("permanent grant gets expiration counted from now", func(t *testing.T) {
		r := newGrant(t, day(2023, 1, 1), nil)
		require.NoError(t, r.Renew(12, now))
		assert.Equal(t, day(2025, 7, 1), *r.ExpiresAt)
	})

	t.Run("dated grant is renewed from its current expiration", func(t *testing.T) {
		r := newGrant(t, day(2024, 1, 1), dayPtr(2024, 10, 1))
		require.NoError(t, r.Renew(12, now))
		assert.Equal(t, day(2025, 10, 1), *r.ExpiresAt)
	})

	t.Run("zero or negative months rejected", func(t *testing.T) {
		r := newGrant(t, day(2024, 1, 1), nil)
		require.Error(t, r.Renew(0, now))
		require.Error(t, r.Renew(-3, now))
	})

	t.Run("inactive grant cannot be renewed", func(t *testing.T) {
		r := newGrant(t, day(2024, 1, 1), dayPtr(2024, 10, 1))
		require.NoError(t, r.Revoke(day(2024, 5, 1)))
		assert.ErrorIs(t, r.Renew(12, now), ErrNotVigente)
	})
}

func TestRoleAssignment_Revoke(t *testing.T) {
	t.Run("sets expiration and deactivates", func(t *testing.T) {
		r := newGrant(t, day(2024, 1, 1), nil)
		require.NoError(t, r.Revoke(day(2024, 6, 1)))

		assert.False(t, r.Active)
		assert.Equal(t, day(2024, 6, 1), *r.ExpiresAt)
		assert.Equal(t, StateInactiva, r.Status(day(2024, 7, 1), DefaultAlertWindowDays).State)
	})

	t.Run("cannot revoke twice", func(t *testing.T) {
		r := newGrant(t, day(2024, 1, 1), nil)
		require.NoError(t, r.Revoke(day(2024, 6, 1)))
		assert.ErrorIs(t, r.Revoke(day(2024, 7, 1)), ErrNotVigente)
	})

	t.Run("cannot revoke before start", func(t *testing.T) {
		r := newGrant(t, day(2024, 6, 1), nil)
		require.Error(t, r.Revoke(day(2024, 1, 1)))
	})
}

func TestRoleAssignment_MakePermanent(t *testing.T) {
	r := newGrant(t, day(2024, 1, 1), dayPtr(2024, 3, 1))
	require.Equal(t, StateVencida, r.Status(day(2024, 6, 1), DefaultAlertWindowDays).State)

	r.MakePermanent()

	assert.Nil(t, r.ExpiresAt)
	assert.Equal(t, StatePermanente, r.Status(day(2024, 6, 1), DefaultAlertWindowDays).State)
}

func TestRoleAssignment_Extend(t *testing.T) {
	now := day(2024, 7, 1)

	t.Run("expired grant rejected unchanged", func(t *testing.T) {
		r := newGrant(t, day(2023, 1, 1), dayPtr(2024, 1, 1))
		err := r.Extend(day(2025, 1, 1), now)
		assert.ErrorIs(t, err, ErrNotVigente)
		assert.Equal(t, day(2024, 1, 1), *r.ExpiresAt)
	})

	t.Run("vigente grant extended", func(t *testing.T) {
		r := newGrant(t, day(2024, 1, 1), dayPtr(2024, 9, 1))
		require.NoError(t, r.Extend(day(2025, 9, 1), now))
		assert.Equal(t, day(2025, 9, 1), *r.ExpiresAt)
	})
}

func TestHasRoleConflict(t *testing.T) {
	profileID := uuid.New()
	roleID := uuid.New()

	existing, err := NewRoleAssignment(profileID, roleID, day(2024, 1, 1), dayPtr(2024, 12, 31))
	require.NoError(t, err)

	t.Run("same role overlapping period conflicts", func(t *testing.T) {
		candidate := shared.DateRange{Start: day(2024, 6, 1)}
		assert.True(t, HasRoleConflict([]*RoleAssignment{existing}, roleID, candidate, uuid.Nil))
	})

	t.Run("different role does not conflict", func(t *testing.T) {
		candidate := shared.DateRange{Start: day(2024, 6, 1)}
		assert.False(t, HasRoleConflict([]*RoleAssignment{existing}, uuid.New(), candidate, uuid.Nil))
	})

	t.Run("disjoint period does not conflict", func(t *testing.T) {
		candidate := shared.DateRange{Start: day(2025, 2, 1)}
		assert.False(t, HasRoleConflict([]*RoleAssignment{existing}, roleID, candidate, uuid.Nil))
	})
}
