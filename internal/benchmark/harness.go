package benchmark

import (
	"fmt"
	"runtime"
	"time"

	"sortbench/internal/sorting"
)

// Harness measures a single sort invocation. The zero value is usable and
// samples the Go heap without requesting a collection first.
type Harness struct {
	// Sampler takes the before and after memory readings.
	Sampler MemorySampler
	// Reclaim is called before the first memory sample. It is a request,
	// not a guarantee; nil means no request is made, and memory deltas are
	// noisier as a result.
	Reclaim func()
	// Now reads the clock. Defaults to time.Now, whose readings carry a
	// monotonic component.
	Now func() time.Time
}

// NewHarness returns a harness that samples with s and asks the Go runtime
// for a collection before each measurement.
func NewHarness(s MemorySampler) *Harness {
	return &Harness{Sampler: s, Reclaim: runtime.GC, Now: time.Now}
}

// Measure runs alg once on data and returns the measurement. The order of
// steps is fixed: reclaim, sample, clock, sort, clock, sample. Panics raised
// by the algorithm are not recovered.
func (h *Harness) Measure(alg sorting.Algorithm, data []int) (Result, error) {
	sampler := h.Sampler
	if sampler == nil {
		sampler = HeapSampler{}
	}
	now := h.Now
	if now == nil {
		now = time.Now
	}

	if h.Reclaim != nil {
		h.Reclaim()
	}

	initial, err := sampler.SampleMB()
	if err != nil {
		return Result{}, fmt.Errorf("initial memory sample: %w", err)
	}

	start := now()
	sorted := alg.Sort(data)
	end := now()

	final, err := sampler.SampleMB()
	// The output counts toward the final sample.
	runtime.KeepAlive(sorted)
	if err != nil {
		return Result{}, fmt.Errorf("final memory sample: %w", err)
	}

	return Result{
		Algorithm:       alg.Name,
		DataSize:        len(data),
		ExecutionTime:   end.Sub(start).Seconds(),
		MemoryUsedMB:    final - initial,
		InitialMemoryMB: initial,
		FinalMemoryMB:   final,
	}, nil
}
