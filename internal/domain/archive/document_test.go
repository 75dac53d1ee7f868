package archive

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	profileID := uuid.New()

	t.Run("creates metadata for a valid upload", func(t *testing.T) {
		d, err := NewDocument(profileID, DocumentKindDiploma, "titulo.pdf", "application/pdf", 1024)
		require.NoError(t, err)

		assert.Equal(t, ".pdf", d.Extension())
		assert.Empty(t, d.StorageKey)
	})

	t.Run("rejects unsupported extension", func(t *testing.T) {
		_, err := NewDocument(profileID, DocumentKindOther, "script.exe", "application/octet-stream", 1024)
		require.Error(t, err)
	})

	t.Run("rejects path separators in name", func(t *testing.T) {
		_, err := NewDocument(profileID, DocumentKindOther, "../../etc/passwd.pdf", "application/pdf", 1024)
		require.Error(t, err)
	})

	t.Run("rejects empty and oversized files", func(t *testing.T) {
		_, err := NewDocument(profileID, DocumentKindPhoto, "foto.jpg", "image/jpeg", 0)
		require.Error(t, err)

		_, err = NewDocument(profileID, DocumentKindPhoto, "foto.jpg", "image/jpeg", MaxDocumentSize+1)
		require.Error(t, err)
	})

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, err := NewDocument(profileID, DocumentKind("RECETA"), "doc.pdf", "application/pdf", 1024)
		require.Error(t, err)
	})
}

func TestDocument_AttachStorageKey(t *testing.T) {
	d, err := NewDocument(uuid.New(), DocumentKindPhoto, "foto.png", "image/png", 2048)
	require.NoError(t, err)

	require.Error(t, d.AttachStorageKey("  "))
	require.NoError(t, d.AttachStorageKey("perfiles/abc/foto.png"))
	assert.Equal(t, "perfiles/abc/foto.png", d.StorageKey)
}
