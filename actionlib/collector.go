package actionlib

import (
	"sync"

	"github.com/sarchlab/trigger/trigger"
)

// A Collector is an action that keeps a copy of every record it sees. It is
// mainly useful in tests and ad-hoc inspection sessions.
type Collector struct {
	mu      sync.Mutex
	records []trigger.CallRecord
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Func stores a copy of the record.
func (c *Collector) Func(ctx trigger.ActionCtx) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = append(c.records, *ctx.Record)

	return nil
}

// Records returns the collected records in arrival order.
func (c *Collector) Records() []trigger.CallRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]trigger.CallRecord, len(c.records))
	copy(out, c.records)

	return out
}

// Reset discards the collected records.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.records = nil
}
