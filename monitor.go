package kusanagi

import "sync/atomic"

// Monitor observes a gated transform and counts how it disposes of its
// inputs: passed through above the gate, or transformed below it.
// Safe for concurrent use.
type Monitor struct {
	gate  int
	inner Transform

	passthroughs int64
	applied      int64
}

// NewMonitor wraps inner, classifying inputs against gate. The inner
// transform is expected to respect the same gate.
func NewMonitor(gate int, inner Transform) *Monitor {
	return &Monitor{
		gate:  gate,
		inner: inner,
	}
}

// Wrap returns a transform that records each application before
// delegating to the wrapped transform.
func (m *Monitor) Wrap() Transform {
	return func(x int) int {
		if x > m.gate {
			atomic.AddInt64(&m.passthroughs, 1)
		} else {
			atomic.AddInt64(&m.applied, 1)
		}
		return m.inner(x)
	}
}

// Passthroughs returns the count of inputs above the gate.
func (m *Monitor) Passthroughs() int64 {
	return atomic.LoadInt64(&m.passthroughs)
}

// Applied returns the count of inputs at or below the gate.
func (m *Monitor) Applied() int64 {
	return atomic.LoadInt64(&m.applied)
}

// Reset zeroes the counters.
func (m *Monitor) Reset() {
	atomic.StoreInt64(&m.passthroughs, 0)
	atomic.StoreInt64(&m.applied, 0)
}

// GetStatistics returns a snapshot of the monitor's counters.
func (m *Monitor) GetStatistics() map[string]interface{} {
	passthroughs := m.Passthroughs()
	applied := m.Applied()
	total := passthroughs + applied

	ratio := 0.0
	if total > 0 {
		ratio = float64(passthroughs) / float64(total)
	}

	return map[string]interface{}{
		"gate":              m.gate,
		"passthroughs":      passthroughs,
		"applied":           applied,
		"total":             total,
		"passthrough_ratio": ratio,
	}
}
