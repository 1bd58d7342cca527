package processor

import (
	"context"
	"sync"
)

// Collect is a processor that records every item it sees and passes it
// through unchanged.
//
// It is useful for capturing intermediate or final results of a chain.
// Collect is safe for concurrent use.
type Collect struct {
	mu    sync.Mutex
	items []interface{}
}

// Process appends the item to the collected items.
func (c *Collect) Process(_ context.Context, item interface{}) (interface{}, error) {
	c.mu.Lock()
	c.items = append(c.items, item)
	c.mu.Unlock()

	return item, nil
}

// Items returns a copy of the collected items in the order they were seen.
func (c *Collect) Items() []interface{} {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make([]interface{}, len(c.items))
	copy(result, c.items)
	return result
}

// Reset discards the collected items.
func (c *Collect) Reset() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()
}
