package cache

import (
	"context"
	"testing"
	"time"

	"github.com/carbyfah/backend/internal/domain/organization"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() []*organization.OrganigramNode {
	return []*organization.OrganigramNode{
		{
			OrganigramRow: organization.OrganigramRow{
				UnitID: uuid.New(),
				Code:   "COMANDANCIA",
				Name:   "Comandancia General",
				Level:  1,
			},
		},
	}
}

func TestInMemoryOrganigramCache_GetAfterSet(t *testing.T) {
	c := NewInMemoryOrganigramCache(time.Minute)
	ctx := context.Background()

	_, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)

	tree := sampleTree()
	require.NoError(t, c.Set(ctx, tree))

	got, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.True(t, hit)
	require.Len(t, got, 1)
	assert.Equal(t, "COMANDANCIA", got[0].Code)
}

func TestInMemoryOrganigramCache_Invalidate(t *testing.T) {
	c := NewInMemoryOrganigramCache(time.Minute)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleTree()))
	require.NoError(t, c.Invalidate(ctx))

	_, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestInMemoryOrganigramCache_TTLExpiry(t *testing.T) {
	c := NewInMemoryOrganigramCache(time.Nanosecond)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, sampleTree()))
	time.Sleep(time.Millisecond)

	_, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit, "entry past its TTL must read as a miss")
}
