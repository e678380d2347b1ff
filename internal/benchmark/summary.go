package benchmark

import "gonum.org/v1/gonum/stat"

// Summary aggregates one algorithm's results across sizes.
type Summary struct {
	Algorithm    string
	Samples      int
	MeanTime     float64
	StdDevTime   float64
	MeanMemoryMB float64
	StdDevMemory float64
}

// Summarize groups results by algorithm, in first-seen order.
func Summarize(results []Result) []Summary {
	var order []string
	times := make(map[string][]float64)
	mems := make(map[string][]float64)

	for _, r := range results {
		if _, ok := times[r.Algorithm]; !ok {
			order = append(order, r.Algorithm)
		}
		times[r.Algorithm] = append(times[r.Algorithm], r.ExecutionTime)
		mems[r.Algorithm] = append(mems[r.Algorithm], r.MemoryUsedMB)
	}

	summaries := make([]Summary, 0, len(order))
	for _, alg := range order {
		t, m := times[alg], mems[alg]
		s := Summary{
			Algorithm:    alg,
			Samples:      len(t),
			MeanTime:     stat.Mean(t, nil),
			MeanMemoryMB: stat.Mean(m, nil),
		}
		// StdDev is NaN for a single sample.
		if len(t) > 1 {
			s.StdDevTime = stat.StdDev(t, nil)
			s.StdDevMemory = stat.StdDev(m, nil)
		}
		summaries = append(summaries, s)
	}
	return summaries
}
