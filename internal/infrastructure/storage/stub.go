package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	archiveapp "github.com/carbyfah/backend/internal/application/archive"
	"github.com/carbyfah/backend/internal/domain/shared"
)

var _ archiveapp.ObjectStorage = (*StubObjectStorage)(nil)

// StubObjectStorage keeps objects in memory. Used in development and
// tests when no S3-compatible backend is configured; presigned URLs
// point nowhere and downloads only work through Get.
type StubObjectStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewStubObjectStorage creates an in-memory object store
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{objects: make(map[string][]byte)}
}

func (s *StubObjectStorage) Upload(_ context.Context, key, _ string, _ int64, content io.Reader) error {
	data, err := io.ReadAll(content)
	if err != nil {
		return fmt.Errorf("failed to read upload content: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return nil
}

func (s *StubObjectStorage) PresignDownload(_ context.Context, key string, expiry time.Duration) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.objects[key]; !ok {
		return "", shared.ErrNotFound
	}
	return fmt.Sprintf("stub://%s?expires_in=%ds", key, int(expiry.Seconds())), nil
}

func (s *StubObjectStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// Get returns the stored bytes, for tests
func (s *StubObjectStorage) Get(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[key]
	return data, ok
}

// Len returns the number of stored objects, for tests
func (s *StubObjectStorage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
