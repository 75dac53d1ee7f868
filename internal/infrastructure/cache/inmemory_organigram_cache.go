package cache

import (
	"context"
	"sync"
	"time"

	orgapp "github.com/carbyfah/backend/internal/application/organization"
	"github.com/carbyfah/backend/internal/domain/organization"
)

// InMemoryOrganigramCache is a single-process cache used when Redis is
// not configured, typically in development.
type InMemoryOrganigramCache struct {
	mu        sync.RWMutex
	tree      []*organization.OrganigramNode
	storedAt  time.Time
	ttl       time.Duration
	populated bool
}

// NewInMemoryOrganigramCache creates an in-process organigram cache
func NewInMemoryOrganigramCache(ttl time.Duration) *InMemoryOrganigramCache {
	if ttl <= 0 {
		ttl = defaultOrganigramTTL
	}
	return &InMemoryOrganigramCache{ttl: ttl}
}

func (c *InMemoryOrganigramCache) Get(_ context.Context) ([]*organization.OrganigramNode, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.populated || time.Since(c.storedAt) > c.ttl {
		return nil, false, nil
	}
	return c.tree, true, nil
}

func (c *InMemoryOrganigramCache) Set(_ context.Context, tree []*organization.OrganigramNode) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tree = tree
	c.storedAt = time.Now()
	c.populated = true
	return nil
}

func (c *InMemoryOrganigramCache) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tree = nil
	c.populated = false
	return nil
}

var _ orgapp.OrganigramCache = (*InMemoryOrganigramCache)(nil)
