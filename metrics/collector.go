// Package metrics provides lifecycle counters for the sidecar supervisor.
//
// The Collector accumulates counters for a single launcher process. It is a
// leaf package with no internal dependencies. All increment methods are
// nil-receiver safe so callers never have to guard the "metrics disabled"
// case.
package metrics

import "sync"

// Snapshot is an immutable point-in-time view of the collected counters.
// Returned by Collector.Snapshot(). Safe to read concurrently after creation.
type Snapshot struct {
	// Supervisor lifecycle
	StartAttempts int64
	Starts        int64
	StartFailures int64
	Stops         int64

	// Start failure breakdown by kind (script_missing, runtime_not_found,
	// log_open_failed, spawn_failed).
	FailuresByKind map[string]int64
}

// Collector accumulates supervisor lifecycle counters.
// Thread-safe via sync.Mutex.
type Collector struct {
	mu sync.Mutex

	startAttempts int64
	starts        int64
	startFailures int64
	stops         int64

	failuresByKind map[string]int64
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{failuresByKind: make(map[string]int64)}
}

// IncStartAttempt records a start call that found the slot empty.
func (c *Collector) IncStartAttempt() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.startAttempts++
	c.mu.Unlock()
}

// IncStarted records a successful sidecar spawn.
func (c *Collector) IncStarted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.starts++
	c.mu.Unlock()
}

// IncStartFailure records a failed start, classified by kind.
func (c *Collector) IncStartFailure(kind string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.startFailures++
	c.failuresByKind[kind]++
	c.mu.Unlock()
}

// IncStopped records a stop that actually terminated a child.
func (c *Collector) IncStopped() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.stops++
	c.mu.Unlock()
}

// Snapshot returns a copy of all counters.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{FailuresByKind: map[string]int64{}}
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	byKind := make(map[string]int64, len(c.failuresByKind))
	for k, v := range c.failuresByKind {
		byKind[k] = v
	}
	return Snapshot{
		StartAttempts:  c.startAttempts,
		Starts:         c.starts,
		StartFailures:  c.startFailures,
		Stops:          c.stops,
		FailuresByKind: byKind,
	}
}
