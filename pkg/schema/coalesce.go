package schema

import (
	"sync"

	"github.com/zeusync/schemagen/pkg/observability/log"
)

type coalesceKey struct {
	entity    EntityID
	component ComponentID
}

// PendingUpdate is one merged update returned by UpdateCoalescer.Flush.
type PendingUpdate struct {
	Entity    EntityID
	Component ComponentID
	Update    *ComponentUpdate
}

// UpdateCoalescer merges raw updates per (entity, component) until flushed, so
// a burst of updates to the same component leaves as one. Safe for concurrent use.
type UpdateCoalescer struct {
	mu      sync.Mutex
	order   []coalesceKey
	pending map[coalesceKey]*ComponentUpdate
	logger  log.Log
}

func NewUpdateCoalescer(logger log.Log) *UpdateCoalescer {
	if logger == nil {
		logger = log.NewNop()
	}
	return &UpdateCoalescer{
		pending: make(map[coalesceKey]*ComponentUpdate),
		logger:  logger,
	}
}

// Add queues u. The coalescer keeps its own copy, so u may be reused.
func (c *UpdateCoalescer) Add(entity EntityID, component ComponentID, u *ComponentUpdate) {
	key := coalesceKey{entity: entity, component: component}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.pending[key]; ok {
		existing.Merge(u)
		return
	}
	c.pending[key] = u.Clone()
	c.order = append(c.order, key)
}

func (c *UpdateCoalescer) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// Flush returns the merged updates in the order each (entity, component) pair
// first arrived and resets the coalescer.
func (c *UpdateCoalescer) Flush() []PendingUpdate {
	c.mu.Lock()
	order, pending := c.order, c.pending
	c.order = nil
	c.pending = make(map[coalesceKey]*ComponentUpdate, len(pending))
	c.mu.Unlock()

	out := make([]PendingUpdate, 0, len(order))
	for _, key := range order {
		out = append(out, PendingUpdate{
			Entity:    key.entity,
			Component: key.component,
			Update:    pending[key],
		})
	}
	if len(out) > 0 {
		c.logger.Debug("updates flushed", log.Int("count", len(out)))
	}
	return out
}
