package benchmark

import "fmt"

// Comparison pairs the results of one (algorithm, size) point from two runs.
type Comparison struct {
	Algorithm       string
	DataSize        int
	TimeDiffPercent float64 // relative change in execution time
	MemoryDiffMB    float64 // change in memory delta
	Prev            Result
	Curr            Result
}

type pointKey struct {
	algorithm string
	size      int
}

// Compare runs comparison between two results.
// It returns a list of comparisons for points present in both runs, in the
// order they appear in curr.
func Compare(prev, curr Run) []Comparison {
	prevMap := make(map[pointKey]Result, len(prev.Results))
	for _, r := range prev.Results {
		prevMap[pointKey{r.Algorithm, r.DataSize}] = r
	}

	var comparisons []Comparison
	for _, c := range curr.Results {
		p, ok := prevMap[pointKey{c.Algorithm, c.DataSize}]
		if !ok {
			continue
		}

		comp := Comparison{
			Algorithm:    c.Algorithm,
			DataSize:     c.DataSize,
			MemoryDiffMB: c.MemoryUsedMB - p.MemoryUsedMB,
			Prev:         p,
			Curr:         c,
		}
		if p.ExecutionTime > 0 {
			comp.TimeDiffPercent = (c.ExecutionTime - p.ExecutionTime) / p.ExecutionTime * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons
}

// Status classifies the time change against a percentage threshold.
func (c Comparison) Status(threshold float64) string {
	switch {
	case c.TimeDiffPercent > threshold:
		return "SLOWER"
	case c.TimeDiffPercent < -threshold:
		return "FASTER"
	default:
		return "SAME"
	}
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s/%d: %+.2f%% time, %+.6f MB", c.Algorithm, c.DataSize, c.TimeDiffPercent, c.MemoryDiffMB)
}
