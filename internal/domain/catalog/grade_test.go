package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrade(t *testing.T) {
	t.Run("creates grade with valid inputs", func(t *testing.T) {
		g, err := NewGrade("cnel", "Coronel", "Cnel.", 3)
		require.NoError(t, err)

		assert.Equal(t, "CNEL", g.Code)
		assert.Equal(t, "Coronel", g.Name)
		assert.Equal(t, "Cnel.", g.Abbreviation)
		assert.Equal(t, 3, g.Order)
		assert.True(t, g.Active)
		assert.Equal(t, 1, g.Version)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		_, err := NewGrade("", "Coronel", "Cnel.", 3)
		require.Error(t, err)
	})

	t.Run("fails with empty abbreviation", func(t *testing.T) {
		_, err := NewGrade("CNEL", "Coronel", " ", 3)
		require.Error(t, err)
	})

	t.Run("fails with negative order", func(t *testing.T) {
		_, err := NewGrade("CNEL", "Coronel", "Cnel.", -1)
		require.Error(t, err)
	})
}

func TestGrade_OutranksOrEquals(t *testing.T) {
	general, _ := NewGrade("GRAL", "General", "Gral.", 1)
	coronel, _ := NewGrade("CNEL", "Coronel", "Cnel.", 3)

	assert.True(t, general.OutranksOrEquals(coronel))
	assert.True(t, general.OutranksOrEquals(general))
	assert.False(t, coronel.OutranksOrEquals(general))
}

func TestGrade_Update(t *testing.T) {
	g, _ := NewGrade("MAY", "Mayor", "My.", 4)

	require.NoError(t, g.Update("Mayor de Aviación", "My. Av.", 5))
	assert.Equal(t, "Mayor de Aviación", g.Name)
	assert.Equal(t, 2, g.Version)

	require.Error(t, g.Update("", "My.", 4))
}

func TestStructureType_Lifecycle(t *testing.T) {
	st, err := NewStructureType("escuadron", "Escuadrón")
	require.NoError(t, err)
	assert.Equal(t, "ESCUADRON", st.Code)

	st.Deactivate()
	assert.False(t, st.Active)
	st.Activate()
	assert.True(t, st.Active)
	assert.Equal(t, 3, st.Version)
}
