package benchmark

import (
	"fmt"
	"slices"

	"sortbench/internal/dataset"
	"sortbench/internal/sorting"
	"sortbench/internal/telemetry"
)

// Runner measures every algorithm against every dataset size.
type Runner struct {
	Source  dataset.Source
	Harness *Harness

	// OnDataset, if set, is called after each dataset is obtained.
	OnDataset func(size int, origin dataset.Origin)
	// OnResult, if set, is called with each result as soon as it exists.
	OnResult func(Result)
}

// NewRunner creates a runner over src using h for measurements.
func NewRunner(src dataset.Source, h *Harness) *Runner {
	return &Runner{Source: src, Harness: h}
}

// Run returns one result per (size, algorithm) pair, ordered by size first
// and registry order second. Every algorithm of a size runs against its own
// copy of the same dataset. The first error stops the run.
func (r *Runner) Run(sizes []int, algs sorting.Registry) ([]Result, error) {
	h := r.Harness
	if h == nil {
		h = &Harness{}
	}

	results := make([]Result, 0, len(sizes)*len(algs))
	for _, size := range sizes {
		telemetry.LogInfo("Testing with array size", "size", size)

		data, origin, err := r.Source.Load(size)
		if err != nil {
			return results, fmt.Errorf("size %d: %w", size, err)
		}
		if r.OnDataset != nil {
			r.OnDataset(size, origin)
		}

		for _, alg := range algs {
			telemetry.LogDebug("Running algorithm", "algorithm", alg.Name, "size", size)

			input := slices.Clone(data)
			res, err := h.Measure(alg, input)
			if err != nil {
				return results, fmt.Errorf("size %d, %s: %w", size, alg.Name, err)
			}
			results = append(results, res)

			telemetry.LogInfo("Measured",
				"algorithm", res.Algorithm,
				"data_size", res.DataSize,
				"execution_time", res.ExecutionTime,
				"memory_used_mb", res.MemoryUsedMB,
			)
			if r.OnResult != nil {
				r.OnResult(res)
			}
		}
	}
	return results, nil
}
