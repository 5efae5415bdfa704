package metrics

import (
	"sync"
	"testing"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector()

	c.IncStartAttempt()
	c.IncStartFailure("script_missing")
	c.IncStartAttempt()
	c.IncStarted()
	c.IncStopped()

	snap := c.Snapshot()
	if snap.StartAttempts != 2 {
		t.Errorf("StartAttempts = %d, want 2", snap.StartAttempts)
	}
	if snap.Starts != 1 {
		t.Errorf("Starts = %d, want 1", snap.Starts)
	}
	if snap.StartFailures != 1 {
		t.Errorf("StartFailures = %d, want 1", snap.StartFailures)
	}
	if snap.Stops != 1 {
		t.Errorf("Stops = %d, want 1", snap.Stops)
	}
	if snap.FailuresByKind["script_missing"] != 1 {
		t.Errorf("FailuresByKind = %v", snap.FailuresByKind)
	}
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	c.IncStartAttempt()
	c.IncStarted()
	c.IncStartFailure("spawn_failed")
	c.IncStopped()

	snap := c.Snapshot()
	if snap.StartAttempts != 0 || snap.FailuresByKind == nil {
		t.Errorf("nil collector snapshot = %+v", snap)
	}
}

func TestCollector_SnapshotIsolation(t *testing.T) {
	c := NewCollector()
	c.IncStartFailure("spawn_failed")

	snap := c.Snapshot()
	snap.FailuresByKind["spawn_failed"] = 99

	if got := c.Snapshot().FailuresByKind["spawn_failed"]; got != 1 {
		t.Errorf("snapshot mutation leaked into collector: %d", got)
	}
}

func TestCollector_ConcurrentIncrements(t *testing.T) {
	c := NewCollector()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.IncStartAttempt()
		}()
	}
	wg.Wait()

	if got := c.Snapshot().StartAttempts; got != 50 {
		t.Errorf("StartAttempts = %d, want 50", got)
	}
}
