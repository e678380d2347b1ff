package benchmark

import (
	"errors"
	"testing"
	"time"

	"sortbench/internal/sorting"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs the harness steps in the order they happen.
type recorder struct {
	steps   []string
	samples []float64
	err     error
	errAt   int
	calls   int
	clock   time.Time
	tick    time.Duration
}

func (r *recorder) Name() string { return "fake" }

func (r *recorder) SampleMB() (float64, error) {
	r.steps = append(r.steps, "sample")
	r.calls++
	if r.err != nil && r.calls == r.errAt {
		return 0, r.err
	}
	v := r.samples[0]
	r.samples = r.samples[1:]
	return v, nil
}

func (r *recorder) now() time.Time {
	r.steps = append(r.steps, "clock")
	r.clock = r.clock.Add(r.tick)
	return r.clock
}

func (r *recorder) harness() *Harness {
	return &Harness{
		Sampler: r,
		Reclaim: func() { r.steps = append(r.steps, "reclaim") },
		Now:     r.now,
	}
}

func (r *recorder) algorithm() sorting.Algorithm {
	return sorting.Algorithm{
		Name: "Recorded Sort",
		Sort: func(in []int) []int {
			r.steps = append(r.steps, "sort")
			return sorting.InsertionSort(in)
		},
	}
}

func TestMeasureFollowsProtocol(t *testing.T) {
	rec := &recorder{samples: []float64{10.5, 12.25}, tick: 250 * time.Millisecond}

	res, err := rec.harness().Measure(rec.algorithm(), []int{3, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, []string{"reclaim", "sample", "clock", "sort", "clock", "sample"}, rec.steps)
	assert.Equal(t, "Recorded Sort", res.Algorithm)
	assert.Equal(t, 3, res.DataSize)
	assert.Equal(t, 0.25, res.ExecutionTime)
	assert.Equal(t, 10.5, res.InitialMemoryMB)
	assert.Equal(t, 12.25, res.FinalMemoryMB)
	assert.Equal(t, 1.75, res.MemoryUsedMB)
}

func TestMeasureAllowsNegativeDelta(t *testing.T) {
	rec := &recorder{samples: []float64{20, 18.5}}

	res, err := rec.harness().Measure(rec.algorithm(), []int{1})
	require.NoError(t, err)
	assert.Equal(t, -1.5, res.MemoryUsedMB)
	assert.Equal(t, res.FinalMemoryMB-res.InitialMemoryMB, res.MemoryUsedMB)
}

func TestMeasureWithoutReclaimHook(t *testing.T) {
	rec := &recorder{samples: []float64{1, 1}}
	h := rec.harness()
	h.Reclaim = nil

	_, err := h.Measure(rec.algorithm(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"sample", "clock", "sort", "clock", "sample"}, rec.steps)
}

func TestMeasureSamplerErrors(t *testing.T) {
	boom := errors.New("boom")

	t.Run("initial", func(t *testing.T) {
		rec := &recorder{samples: []float64{1, 1}, err: boom, errAt: 1}
		_, err := rec.harness().Measure(rec.algorithm(), []int{1})
		assert.ErrorIs(t, err, boom)
		assert.NotContains(t, rec.steps, "sort")
	})

	t.Run("final", func(t *testing.T) {
		rec := &recorder{samples: []float64{1, 1}, err: boom, errAt: 2}
		_, err := rec.harness().Measure(rec.algorithm(), []int{1})
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, rec.steps, "sort")
	})
}

func TestMeasurePropagatesPanics(t *testing.T) {
	h := &Harness{Sampler: HeapSampler{}}
	alg := sorting.Algorithm{Name: "Broken", Sort: func([]int) []int { panic("broken sort") }}

	assert.PanicsWithValue(t, "broken sort", func() {
		_, _ = h.Measure(alg, []int{1})
	})
}

func TestMeasureRealAlgorithms(t *testing.T) {
	h := NewHarness(HeapSampler{})
	data := []int{5, 4, 3, 2, 1, 0, 9, 8, 7, 6}

	for _, alg := range sorting.Default() {
		res, err := h.Measure(alg, data)
		require.NoError(t, err)
		assert.Equal(t, alg.Name, res.Algorithm)
		assert.Equal(t, len(data), res.DataSize)
		assert.GreaterOrEqual(t, res.ExecutionTime, 0.0)
		assert.Equal(t, res.FinalMemoryMB-res.InitialMemoryMB, res.MemoryUsedMB)
	}
	assert.Equal(t, []int{5, 4, 3, 2, 1, 0, 9, 8, 7, 6}, data)
}

func TestZeroHarnessIsUsable(t *testing.T) {
	var h Harness
	res, err := h.Measure(sorting.Default()[0], []int{2, 1})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.ExecutionTime, 0.0)
	assert.Equal(t, res.FinalMemoryMB-res.InitialMemoryMB, res.MemoryUsedMB)
}
