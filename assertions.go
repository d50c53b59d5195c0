package kusanagi

import (
	"fmt"
	"testing"
)

// AssertionConfig contains bounds for transform property checks.
type AssertionConfig struct {
	// Gate the transform under test is expected to honor
	Gate int

	// Largest magnitude sampled below the gate
	MaxMagnitude int

	// Number of samples tested above the gate
	AboveSamples int
}

// DefaultAssertionConfig returns bounds matching the package defaults.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		Gate:         DefaultGate,
		MaxMagnitude: DefaultGate,
		AboveSamples: 100,
	}
}

// AssertPassthroughAboveGate verifies f(x) == x for every sampled x
// strictly above the gate.
//
// Mathematical property:
//
//	∀ x > gate: f(x) = x
func AssertPassthroughAboveGate(t *testing.T, f Transform, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for i := 1; i <= cfg.AboveSamples; i++ {
		x := cfg.Gate + i
		if got := f(x); got != x {
			failures = append(failures, fmt.Sprintf(
				"  f(%d) = %d (want passthrough %d)", x, got, x))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Passthrough violated above gate %d:\n%s", cfg.Gate, failures)
		return
	}

	t.Logf("✓ Passthrough: f(x) = x for %d samples above gate %d", cfg.AboveSamples, cfg.Gate)
}

// AssertSquareBelowGate verifies f(x) == x*x for every x in
// [-MaxMagnitude, gate].
//
// Mathematical property:
//
//	∀ x ≤ gate: f(x) = x²
func AssertSquareBelowGate(t *testing.T, f Transform, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for x := -cfg.MaxMagnitude; x <= cfg.Gate; x++ {
		if got, want := f(x), x*x; got != want {
			failures = append(failures, fmt.Sprintf(
				"  f(%d) = %d (want %d)", x, got, want))
			if len(failures) >= 5 {
				failures = append(failures, "  ... (truncated)")
				break
			}
		}
	}

	if len(failures) > 0 {
		t.Errorf("Squaring violated at or below gate %d:\n%s", cfg.Gate, failures)
		return
	}

	t.Logf("✓ Squaring: f(x) = x² for x in [%d, %d]", -cfg.MaxMagnitude, cfg.Gate)
}

// AssertGateIdempotent verifies that above the gate, reapplying the
// transform changes nothing: once a value has passed through, it keeps
// passing through.
//
// Mathematical property:
//
//	∀ x > gate: f(f(x)) = f(x)
func AssertGateIdempotent(t *testing.T, f Transform, cfg AssertionConfig) {
	t.Helper()

	var failures []string
	for i := 1; i <= cfg.AboveSamples; i++ {
		x := cfg.Gate + i
		once := f(x)
		twice := f(once)
		if once != twice {
			failures = append(failures, fmt.Sprintf(
				"  f(f(%d)) = %d, f(%d) = %d", x, twice, x, once))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Gate not idempotent above %d:\n%s", cfg.Gate, failures)
		return
	}

	t.Logf("✓ Idempotent above gate: f∘f = f for %d samples", cfg.AboveSamples)
}

// AssertNoOverflow verifies a checked transform accepts every input
// without reporting ErrOverflow.
func AssertNoOverflow(t *testing.T, f CheckedTransform, inputs []int) {
	t.Helper()

	for _, x := range inputs {
		if _, err := f(x); err != nil {
			t.Errorf("Unexpected overflow: f(%d) returned %v", x, err)
		}
	}

	t.Logf("✓ No overflow across %d inputs", len(inputs))
}

// AssertTransformProperties runs the gate property assertions as
// subtests.
func AssertTransformProperties(t *testing.T, f Transform, cfg AssertionConfig) {
	t.Helper()

	t.Run("PassthroughAboveGate", func(t *testing.T) {
		AssertPassthroughAboveGate(t, f, cfg)
	})

	t.Run("SquareBelowGate", func(t *testing.T) {
		AssertSquareBelowGate(t, f, cfg)
	})

	t.Run("GateIdempotent", func(t *testing.T) {
		AssertGateIdempotent(t, f, cfg)
	})
}

// PrintTransformTable logs the transform's output for each input.
func PrintTransformTable(t *testing.T, f Transform, inputs []int) {
	t.Helper()

	t.Logf("\n=== Transform Table ===")
	t.Logf("  x        f(x)      disposition")
	t.Logf("  -------  --------  -----------")
	for _, x := range inputs {
		got := f(x)
		disposition := "transformed"
		if got == x {
			disposition = "passthrough"
		}
		t.Logf("  %-7d  %-8d  %s", x, got, disposition)
	}
}
