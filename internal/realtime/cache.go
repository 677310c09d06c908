package realtime

import (
	"sync"

	"friendgraph/internal/relationship"
)

// Cache holds one session's view of the three relationship sets. It is
// owned by a single synchronizer and always rebuilt wholesale from a store
// snapshot, never patched incrementally.
type Cache struct {
	mu   sync.RWMutex
	snap *relationship.Snapshot
}

func NewCache() *Cache {
	return &Cache{}
}

// Replace swaps the cached snapshot. The old content is discarded.
func (c *Cache) Replace(snap *relationship.Snapshot) {
	c.mu.Lock()
	c.snap = snap
	c.mu.Unlock()
}

// Snapshot returns the current snapshot. Callers must treat it as
// read-only; Replace never mutates a published snapshot in place.
func (c *Cache) Snapshot() *relationship.Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}

// StatusFor derives the status of targetID from the cached sets.
func (c *Cache) StatusFor(selfID, targetID string) Status {
	return DeriveStatus(selfID, targetID, c.Snapshot())
}
