package kusanagi

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Result contains measurements from a single concurrency level.
type Result struct {
	N          int             // Number of concurrent workers
	Duration   time.Duration   // Total measurement duration
	Operations int64           // Total transform applications
	Throughput float64         // Applications per second
	Latencies  []time.Duration // Individual application latencies (for percentiles)
}

// Statistics contains percentile latency data.
type Statistics struct {
	Mean   time.Duration
	Stddev time.Duration
	P50    time.Duration
	P95    time.Duration
	P99    time.Duration
}

// MeasureConfig controls measurement execution.
//
// NOTE: measurements with N > GOMAXPROCS include Go scheduler context
// switching, not just the transform itself. Set MaxProcs to
// runtime.NumCPU() for a clean reading.
type MeasureConfig struct {
	Duration time.Duration // How long to run at each concurrency level
	Warmup   time.Duration // Warmup period before measurement
	Levels   []int         // Concurrency levels to test (default: [1,2,4,8,16])
	Corpus   []int         // Inputs cycled through by the workers
	MaxProcs int           // GOMAXPROCS limit (0 = use runtime default)
}

// DefaultMeasureConfig returns sensible defaults. The default corpus
// straddles the gate so both the squaring and passthrough paths are
// exercised.
func DefaultMeasureConfig() MeasureConfig {
	corpus := make([]int, 0, 2001)
	for x := 0; x <= 2000; x++ {
		corpus = append(corpus, x)
	}
	return MeasureConfig{
		Duration: 5 * time.Second,
		Warmup:   1 * time.Second,
		Levels:   []int{1, 2, 4, 8, 16},
		Corpus:   corpus,
		MaxProcs: 0,
	}
}

// Measure applies the transform at multiple concurrency levels and
// returns per-level results.
func Measure(ctx context.Context, f Transform, cfg MeasureConfig) ([]Result, error) {
	if len(cfg.Corpus) == 0 {
		return nil, fmt.Errorf("measure: empty corpus")
	}

	if cfg.MaxProcs > 0 {
		oldMaxProcs := runtime.GOMAXPROCS(cfg.MaxProcs)
		defer runtime.GOMAXPROCS(oldMaxProcs)
	}

	results := make([]Result, 0, len(cfg.Levels))

	for _, n := range cfg.Levels {
		result, err := measureAtLevel(ctx, f, n, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed at N=%d: %w", n, err)
		}
		results = append(results, result)
	}

	return results, nil
}

// measureAtLevel runs the transform with N concurrent workers.
func measureAtLevel(ctx context.Context, f Transform, n int, cfg MeasureConfig) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	// Warmup phase
	if cfg.Warmup > 0 {
		warmupCtx, cancel := context.WithTimeout(ctx, cfg.Warmup)
		_ = measurePhase(warmupCtx, f, n, cfg.Corpus)
		cancel()
	}

	// Measurement phase
	measureCtx, cancel := context.WithTimeout(ctx, cfg.Duration)
	defer cancel()

	return measurePhase(measureCtx, f, n, cfg.Corpus), nil
}

// measurePhase executes the actual measurement.
func measurePhase(ctx context.Context, f Transform, n int, corpus []int) Result {
	var (
		wg         sync.WaitGroup
		operations int64
		cursor     int64 = -1                         // Shared corpus cursor
		latencies        = make([][]time.Duration, n) // Per-worker latency slices
	)

	start := time.Now()

	for i := 0; i < n; i++ {
		wg.Add(1)
		workerID := i
		latencies[workerID] = make([]time.Duration, 0, 1000)

		go func() {
			defer wg.Done()

			for {
				select {
				case <-ctx.Done():
					return
				default:
					x := corpus[int(atomic.AddInt64(&cursor, 1))%len(corpus)]

					opStart := time.Now()
					_ = f(x)
					opDuration := time.Since(opStart)

					atomic.AddInt64(&operations, 1)
					latencies[workerID] = append(latencies[workerID], opDuration)
				}
			}
		}()
	}

	wg.Wait()
	elapsed := time.Since(start)

	// Merge latencies from all workers
	allLatencies := make([]time.Duration, 0, operations)
	for _, workerLatencies := range latencies {
		allLatencies = append(allLatencies, workerLatencies...)
	}

	throughput := float64(operations) / elapsed.Seconds()

	return Result{
		N:          n,
		Duration:   elapsed,
		Operations: operations,
		Throughput: throughput,
		Latencies:  allLatencies,
	}
}

// CalculateStatistics computes percentile latencies.
func CalculateStatistics(result Result) Statistics {
	if len(result.Latencies) == 0 {
		return Statistics{}
	}

	sorted := make([]time.Duration, len(result.Latencies))
	copy(sorted, result.Latencies)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	// Mean
	var sum time.Duration
	for _, lat := range sorted {
		sum += lat
	}
	mean := sum / time.Duration(len(sorted))

	// Standard deviation
	var variance float64
	for _, lat := range sorted {
		diff := float64(lat - mean)
		variance += diff * diff
	}
	stddev := time.Duration(math.Sqrt(variance / float64(len(sorted))))

	// Percentiles
	p50 := sorted[len(sorted)*50/100]
	p95 := sorted[len(sorted)*95/100]
	p99 := sorted[len(sorted)*99/100]

	return Statistics{
		Mean:   mean,
		Stddev: stddev,
		P50:    p50,
		P95:    p95,
		P99:    p99,
	}
}
