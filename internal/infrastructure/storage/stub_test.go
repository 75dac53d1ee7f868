package storage

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/carbyfah/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStubObjectStorage_UploadAndGet(t *testing.T) {
	s := NewStubObjectStorage()
	ctx := context.Background()

	key := "perfiles/abc/FOTOGRAFIA/doc.jpg"
	err := s.Upload(ctx, key, "image/jpeg", 4, strings.NewReader("data"))
	require.NoError(t, err)

	data, ok := s.Get(key)
	assert.True(t, ok)
	assert.Equal(t, []byte("data"), data)
}

func TestStubObjectStorage_PresignDownload(t *testing.T) {
	s := NewStubObjectStorage()
	ctx := context.Background()

	_, err := s.PresignDownload(ctx, "missing", time.Minute)
	assert.ErrorIs(t, err, shared.ErrNotFound)

	require.NoError(t, s.Upload(ctx, "k", "application/pdf", 1, strings.NewReader("x")))

	url, err := s.PresignDownload(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Contains(t, url, "stub://k")
}

func TestStubObjectStorage_Delete(t *testing.T) {
	s := NewStubObjectStorage()
	ctx := context.Background()

	require.NoError(t, s.Upload(ctx, "k", "application/pdf", 1, strings.NewReader("x")))
	require.NoError(t, s.Delete(ctx, "k"))

	_, ok := s.Get("k")
	assert.False(t, ok)
	assert.Zero(t, s.Len())
}
