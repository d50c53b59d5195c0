package kusanagi

import (
	"sync"
	"testing"
)

// TestMonitor_Counts verifies disposition counting.
func TestMonitor_Counts(t *testing.T) {
	m := NewMonitor(DefaultGate, Square)
	f := m.Wrap()

	for _, x := range []int{5, 1000, 1001, 2000, -5} {
		f(x)
	}

	if got := m.Applied(); got != 3 {
		t.Errorf("Applied = %d, want 3", got)
	}
	if got := m.Passthroughs(); got != 2 {
		t.Errorf("Passthroughs = %d, want 2", got)
	}

	// The wrapper must not change results.
	if got := f(5); got != 25 {
		t.Errorf("wrapped Square(5) = %d, want 25", got)
	}

	stats := m.GetStatistics()
	if stats["total"].(int64) != 6 {
		t.Errorf("total = %v, want 6", stats["total"])
	}
	if stats["gate"].(int) != DefaultGate {
		t.Errorf("gate = %v, want %d", stats["gate"], DefaultGate)
	}

	t.Logf("Monitor stats: %v", stats)
}

// TestMonitor_Reset verifies counters zero out.
func TestMonitor_Reset(t *testing.T) {
	m := NewMonitor(DefaultGate, Square)
	f := m.Wrap()

	f(5)
	f(2000)
	m.Reset()

	if m.Applied() != 0 || m.Passthroughs() != 0 {
		t.Errorf("counters survived Reset: applied=%d passthroughs=%d",
			m.Applied(), m.Passthroughs())
	}

	if ratio := m.GetStatistics()["passthrough_ratio"].(float64); ratio != 0.0 {
		t.Errorf("passthrough_ratio = %v after Reset, want 0", ratio)
	}
}

// TestMonitor_Concurrent verifies counts survive concurrent callers.
func TestMonitor_Concurrent(t *testing.T) {
	m := NewMonitor(DefaultGate, Square)
	f := m.Wrap()

	const (
		workers   = 8
		perWorker = 1000
	)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				f(5)    // Applied
				f(2000) // Passthrough
			}
		}()
	}
	wg.Wait()

	want := int64(workers * perWorker)
	if got := m.Applied(); got != want {
		t.Errorf("Applied = %d, want %d", got, want)
	}
	if got := m.Passthroughs(); got != want {
		t.Errorf("Passthroughs = %d, want %d", got, want)
	}
}
