package organization

import (
	"context"
	"testing"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapResolver map[uuid.UUID]*OrganizationalUnit

func (m mapResolver) FindByID(_ context.Context, id uuid.UUID) (*OrganizationalUnit, error) {
	if u, ok := m[id]; ok {
		return u, nil
	}
	return nil, shared.ErrNotFound
}

func newTestUnit(t *testing.T, code string, parent *OrganizationalUnit) *OrganizationalUnit {
	t.Helper()
	unit, err := NewOrganizationalUnit(code, code+" unit", uuid.New())
	require.NoError(t, err)
	if parent != nil {
		require.NoError(t, unit.SetParent(parent))
	}
	return unit
}

func TestHierarchyPath(t *testing.T) {
	ctx := context.Background()

	t.Run("three-level chain returns root-first path", func(t *testing.T) {
		a := newTestUnit(t, "A", nil)
		b := newTestUnit(t, "B", a)
		c := newTestUnit(t, "C", b)
		resolver := mapResolver{a.ID: a, b.ID: b, c.ID: c}

		path, err := HierarchyPath(ctx, resolver, c.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B", "C"}, path)
	})

	t.Run("root unit yields single-element path", func(t *testing.T) {
		a := newTestUnit(t, "A", nil)
		resolver := mapResolver{a.ID: a}

		path, err := HierarchyPath(ctx, resolver, a.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"A"}, path)
	})

	t.Run("unknown unit returns not found", func(t *testing.T) {
		_, err := HierarchyPath(ctx, mapResolver{}, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("cycle in parent chain is detected", func(t *testing.T) {
		a := newTestUnit(t, "A", nil)
		b := newTestUnit(t, "B", a)
		// corrupt the chain: A now claims B as its parent
		bID := b.ID
		a.ParentID = &bID
		resolver := mapResolver{a.ID: a, b.ID: b}

		_, err := HierarchyPath(ctx, resolver, b.ID)
		assert.ErrorIs(t, err, ErrHierarchyCycle)
	})

	t.Run("self-referencing unit is detected", func(t *testing.T) {
		a := newTestUnit(t, "A", nil)
		aID := a.ID
		a.ParentID = &aID
		resolver := mapResolver{a.ID: a}

		_, err := HierarchyPath(ctx, resolver, a.ID)
		assert.ErrorIs(t, err, ErrHierarchyCycle)
	})
}
