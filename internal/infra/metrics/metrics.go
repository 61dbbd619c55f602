package metrics

import (
	"sync"
	"sync/atomic"
)

// Counters tracks charge outcomes, both overall and per instrument kind.
type Counters struct {
	ChargesProcessed uint64
	ChargesSucceeded uint64
	ChargesFailed    uint64

	mu     sync.RWMutex
	byKind map[string]*Outcome
}

// Outcome holds the counts for one instrument kind.
type Outcome struct {
	Processed uint64
	Succeeded uint64
	Failed    uint64
}

func (c *Counters) IncProcessed(kind string) {
	atomic.AddUint64(&c.ChargesProcessed, 1)
	atomic.AddUint64(&c.outcome(kind).Processed, 1)
}

func (c *Counters) IncSucceeded(kind string) {
	atomic.AddUint64(&c.ChargesSucceeded, 1)
	atomic.AddUint64(&c.outcome(kind).Succeeded, 1)
}

func (c *Counters) IncFailed(kind string) {
	atomic.AddUint64(&c.ChargesFailed, 1)
	atomic.AddUint64(&c.outcome(kind).Failed, 1)
}

// ByKind returns a snapshot of the counts for one instrument kind.
func (c *Counters) ByKind(kind string) Outcome {
	c.mu.RLock()
	o, ok := c.byKind[kind]
	c.mu.RUnlock()

	if !ok {
		return Outcome{}
	}

	return Outcome{
		Processed: atomic.LoadUint64(&o.Processed),
		Succeeded: atomic.LoadUint64(&o.Succeeded),
		Failed:    atomic.LoadUint64(&o.Failed),
	}
}

func (c *Counters) outcome(kind string) *Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.byKind == nil {
		c.byKind = make(map[string]*Outcome)
	}
	o, ok := c.byKind[kind]
	if !ok {
		o = &Outcome{}
		c.byKind[kind] = o
	}
	return o
}
