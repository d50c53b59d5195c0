// Package kusanagi provides gated integer transforms with an
// overridable dispatch table.
//
// # Overview
//
// A gated transform applies an operation only while its input stays at
// or below a saturation threshold (the gate); anything above the gate
// passes through unchanged. The canonical transform is Square:
//
//	Square(5)    // 25
//	Square(1000) // 1000000 (gate is inclusive)
//	Square(2000) // 2000    (above the gate: passthrough)
//
// Callers commonly pre-scale before delegating. Amplify doubles its
// input and feeds the result through the default binding, and Compound
// squares the amplified value again:
//
//	Amplify(5)  // 5 → 10 → 100
//	Compound(5) // 5 → 100 → 10000
//
// # Dispatch
//
// The transform Amplify delegates to is not hard-wired. A Table maps
// names to transforms; Bind installs a default that stays in place
// only until someone calls Override for the same name. The package
// table pre-binds "square" to Square:
//
//	prev, _ := kusanagi.Override(kusanagi.DefaultBinding, myTransform)
//	kusanagi.Amplify(5) // now 5 → 10 → myTransform(10)
//	kusanagi.Override(kusanagi.DefaultBinding, prev)
//
// # Pipelines
//
// Pipelines compose transforms into a fixed chain and apply them to
// batches concurrently:
//
//	p := kusanagi.NewPipeline(kusanagi.Double, kusanagi.Square)
//	out, err := p.ApplyAll(ctx, inputs, kusanagi.DefaultPipelineConfig())
//
// CheckedPipeline is the overflow-aware counterpart: every stage
// returns (int, error) and the first ErrOverflow aborts the batch.
//
// # Overflow
//
// The raw transforms truncate on overflow, like the machine arithmetic
// they model. Under DefaultGate a squared value never exceeds 10^6, so
// the practical overflow risk is the doubling step near the top of the
// int range. The *Checked variants (SquareCheckedAt, DoubleChecked,
// CompoundChecked) detect wrap-around and return ErrOverflow instead.
//
// # Measurement
//
// Measure runs a transform over an input corpus at multiple
// concurrency levels and reports throughput and latency percentiles:
//
//	results, err := kusanagi.Measure(ctx, kusanagi.Square, kusanagi.DefaultMeasureConfig())
//	stats := kusanagi.CalculateStatistics(results[0])
//
// # Testing
//
// Assertion helpers validate the gate properties of any transform:
//
//	func TestMyTransform(t *testing.T) {
//	    cfg := kusanagi.DefaultAssertionConfig()
//	    kusanagi.AssertPassthroughAboveGate(t, f, cfg)
//	    kusanagi.AssertSquareBelowGate(t, f, cfg)
//	    kusanagi.AssertGateIdempotent(t, f, cfg)
//	}
//
// # See Also
//
//   - examples/gate-server - HTTP demo exposing the transforms
package kusanagi
