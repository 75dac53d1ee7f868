package organization

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree(t *testing.T) {
	hamID := uuid.New()
	s1ID := uuid.New()
	s2ID := uuid.New()

	rows := []OrganigramRow{
		{UnitID: hamID, Code: "HAM", Level: 1, HorizontalOrder: 1},
		{UnitID: s2ID, Code: "S2-HAM", ParentID: &hamID, Level: 2, HorizontalOrder: 2},
		{UnitID: s1ID, Code: "S1-HAM", ParentID: &hamID, Level: 2, HorizontalOrder: 1},
	}

	t.Run("nests children under parent", func(t *testing.T) {
		roots := BuildTree(rows)
		require.Len(t, roots, 1)
		assert.Equal(t, "HAM", roots[0].Code)
		require.Len(t, roots[0].Children, 2)
	})

	t.Run("siblings keep horizontal order", func(t *testing.T) {
		roots := BuildTree(rows)
		assert.Equal(t, "S1-HAM", roots[0].Children[0].Code)
		assert.Equal(t, "S2-HAM", roots[0].Children[1].Code)
	})

	t.Run("orphan rows become roots", func(t *testing.T) {
		missing := uuid.New()
		orphan := OrganigramRow{UnitID: uuid.New(), Code: "LOST", ParentID: &missing, Level: 3}
		roots := BuildTree(append(rows, orphan))
		require.Len(t, roots, 2)
	})

	t.Run("empty input yields no roots", func(t *testing.T) {
		assert.Empty(t, BuildTree(nil))
	})
}

func TestPosition_OutranksOrEquals(t *testing.T) {
	unitID := uuid.New()
	comandante, err := NewPosition(unitID, "CMDT", "Comandante", 1)
	require.NoError(t, err)
	auxiliar, err := NewPosition(unitID, "AUX", "Auxiliar", 4)
	require.NoError(t, err)

	assert.True(t, comandante.OutranksOrEquals(auxiliar))
	assert.False(t, auxiliar.OutranksOrEquals(comandante))
}

func TestNewFunctionalRole(t *testing.T) {
	role, err := NewFunctionalRole("seg-vuelo", "Oficial de Seguridad de Vuelo", 2)
	require.NoError(t, err)
	assert.Equal(t, "SEG-VUELO", role.Code)
	assert.True(t, role.Active)

	_, err = NewFunctionalRole("X", "Role", 0)
	require.Error(t, err)
}
