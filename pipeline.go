package kusanagi

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
)

// Pipeline applies a fixed sequence of transforms in order.
type Pipeline struct {
	stages []Transform
}

// NewPipeline builds a pipeline from the given stages. An empty
// pipeline is the identity.
func NewPipeline(stages ...Transform) *Pipeline {
	return &Pipeline{stages: stages}
}

// DefaultPipeline is the package's canonical chain: double the input,
// then square it. Equivalent to Amplify without the dispatch lookup.
func DefaultPipeline() *Pipeline {
	return NewPipeline(Double, Square)
}

// Len returns the stage count.
func (p *Pipeline) Len() int {
	return len(p.stages)
}

// Apply runs x through every stage in order.
func (p *Pipeline) Apply(x int) int {
	for _, stage := range p.stages {
		x = stage(x)
	}
	return x
}

// PipelineConfig controls concurrent batch application.
type PipelineConfig struct {
	Workers int // Concurrent workers (<=0 means 1)
}

// DefaultPipelineConfig returns sensible defaults.
func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{Workers: 4}
}

// ApplyAll applies the pipeline to every input concurrently and
// returns the outputs in input order. Returns ctx.Err (wrapped) if the
// context is canceled before the batch completes.
func (p *Pipeline) ApplyAll(ctx context.Context, xs []int, cfg PipelineConfig) ([]int, error) {
	out := make([]int, len(xs))
	if len(xs) == 0 {
		return out, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(xs) {
		workers = len(xs)
	}

	var (
		wg   sync.WaitGroup
		next int64 = -1 // Index dispenser
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				i := int(atomic.AddInt64(&next, 1))
				if i >= len(xs) {
					return
				}

				select {
				case <-ctx.Done():
					return
				default:
					out[i] = p.Apply(xs[i])
				}
			}
		}()
	}

	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch apply: %w", err)
	}
	return out, nil
}

// CheckedTransform is a transform whose stages can fail, used for
// overflow-aware chains.
type CheckedTransform func(x int) (int, error)

// Checked lifts an infallible transform into a CheckedTransform.
func Checked(f Transform) CheckedTransform {
	return func(x int) (int, error) {
		return f(x), nil
	}
}

// CheckedPipeline is a Pipeline whose stages report errors. The first
// failing stage aborts the chain.
type CheckedPipeline struct {
	stages []CheckedTransform
}

// NewCheckedPipeline builds a checked pipeline from the given stages.
func NewCheckedPipeline(stages ...CheckedTransform) *CheckedPipeline {
	return &CheckedPipeline{stages: stages}
}

// Apply runs x through every stage, stopping at the first error.
func (p *CheckedPipeline) Apply(x int) (int, error) {
	for i, stage := range p.stages {
		y, err := stage(x)
		if err != nil {
			return 0, fmt.Errorf("stage %d: %w", i, err)
		}
		x = y
	}
	return x, nil
}

// ApplyAll applies the checked pipeline to every input concurrently.
// The first failure cancels the remaining work and is returned with
// the offending input's position.
func (p *CheckedPipeline) ApplyAll(ctx context.Context, xs []int, cfg PipelineConfig) ([]int, error) {
	out := make([]int, len(xs))
	if len(xs) == 0 {
		return out, nil
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > len(xs) {
		workers = len(xs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		next     int64 = -1
		firstErr error
		errOnce  sync.Once
	)

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for {
				i := int(atomic.AddInt64(&next, 1))
				if i >= len(xs) {
					return
				}

				select {
				case <-ctx.Done():
					return
				default:
				}

				y, err := p.Apply(xs[i])
				if err != nil {
					errOnce.Do(func() {
						firstErr = fmt.Errorf("input %d: %w", i, err)
						cancel()
					})
					return
				}
				out[i] = y
			}
		}()
	}

	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch apply: %w", err)
	}
	return out, nil
}
