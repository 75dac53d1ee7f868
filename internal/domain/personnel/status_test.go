package personnel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2024, 7, 15, 12, 0, 0, 0, time.UTC)
	in := func(d time.Duration) *time.Time {
		t := now.Add(d)
		return &t
	}

	tests := []struct {
		name       string
		isActive   bool
		expiration *time.Time
		wantState  RecordState
		wantDays   *int
	}{
		{"active without expiration is permanent", true, nil, StatePermanente, nil},
		{"expiration yesterday is vencida", true, in(-24 * time.Hour), StateVencida, intPtr(-1)},
		{"expiration in five days is por vencer", true, in(5 * 24 * time.Hour), StatePorVencer, intPtr(5)},
		{"expiration at window edge is por vencer", true, in(30 * 24 * time.Hour), StatePorVencer, intPtr(30)},
		{"expiration beyond window is vigente", true, in(90 * 24 * time.Hour), StateVigente, intPtr(90)},
		{"inactive flag wins over dates", false, in(90 * 24 * time.Hour), StateInactiva, nil},
		{"inactive permanent is still inactiva", false, nil, StateInactiva, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeriveStatus(now, tt.isActive, tt.expiration, DefaultAlertWindowDays)
			assert.Equal(t, tt.wantState, got.State)
			if tt.wantDays == nil {
				assert.Nil(t, got.DaysRemaining)
			} else {
				require.NotNil(t, got.DaysRemaining)
				assert.Equal(t, *tt.wantDays, *got.DaysRemaining)
			}
		})
	}
}

func TestIsVigente(t *testing.T) {
	now := time.Date(2024, 7, 15, 0, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 1, 0)

	assert.True(t, IsVigente(now, true, nil))
	assert.True(t, IsVigente(now, true, &future))
	assert.True(t, IsVigente(now, true, &now))
	assert.False(t, IsVigente(now, true, &past))
	assert.False(t, IsVigente(now, false, nil))
}

func intPtr(n int) *int { return &n }
