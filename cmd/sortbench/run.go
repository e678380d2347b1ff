package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime"
	"time"

	"sortbench/internal/benchmark"
	"sortbench/internal/config"
	"sortbench/internal/dataset"
	"sortbench/internal/db"
	"sortbench/internal/report"
	"sortbench/internal/sorting"
	"sortbench/internal/telemetry"

	"github.com/spf13/cobra"
)

// Hooks replaced in tests.
var (
	newSamplerFunc = benchmark.NewSampler
	newStoreFunc   = db.NewStore
	nowFunc        = time.Now
)

func runBenchmark(cmd *cobra.Command, args []string) error {
	run, err := executeBenchmark(settings)
	if err != nil {
		telemetry.LogError("Benchmark failed", err)
		return err
	}

	out := cmd.OutOrStdout()
	report.PrintTable(out, run.Results)
	fmt.Fprintln(out)
	report.PrintSummary(out, benchmark.Summarize(run.Results))
	fmt.Fprintf(out, "\nResults saved to %s\n", settings.Output)
	return nil
}

// executeBenchmark performs the run described by s and writes every
// configured output. The results file is written before any optional sink.
func executeBenchmark(s config.Settings) (benchmark.Run, error) {
	algs, err := sorting.Default().Select(s.Algorithms)
	if err != nil {
		return benchmark.Run{}, err
	}

	sampler, err := newSamplerFunc(s.MemorySource)
	if err != nil {
		return benchmark.Run{}, err
	}

	seed := s.Seed
	if seed == 0 {
		seed = nowFunc().UnixNano()
	}
	telemetry.LogDebug("Seeding dataset generator", "seed", seed)

	src := dataset.NewFileSource(rand.New(rand.NewSource(seed)))
	src.Dir = s.DataDir
	src.Pattern = s.DataPattern
	src.Max = s.RandomMax
	src.SaveGenerated = s.SaveGenerated

	h := benchmark.NewHarness(sampler)
	if !s.GC {
		h.Reclaim = nil
	}

	metrics := telemetry.NewMetrics()
	runner := benchmark.NewRunner(src, h)
	runner.OnDataset = func(size int, origin dataset.Origin) {
		metrics.TrackDataset(string(origin))
	}
	runner.OnResult = func(r benchmark.Result) {
		metrics.ObserveMeasurement(r.Algorithm, r.DataSize, r.ExecutionTime, r.MemoryUsedMB, r.FinalMemoryMB)
	}

	results, err := runner.Run(s.Sizes, algs)
	if err != nil {
		return benchmark.Run{}, err
	}

	if err := report.SaveFile(s.Output, s.Format, results); err != nil {
		return benchmark.Run{}, fmt.Errorf("failed to save results: %w", err)
	}
	telemetry.LogInfo("Results written", "path", s.Output, "format", s.Format, "count", len(results))

	run := newRun(sampler.Name(), results)

	if s.HistoryFile != "" {
		if err := saveHistory(s.HistoryFile, run); err != nil {
			return benchmark.Run{}, err
		}
	}

	if s.MetricsFile != "" {
		if err := metrics.WriteTextfile(s.MetricsFile); err != nil {
			return benchmark.Run{}, fmt.Errorf("failed to write metrics: %w", err)
		}
	}

	if s.ChartFile != "" {
		if err := report.SaveChart(s.ChartFile, results); err != nil {
			return benchmark.Run{}, fmt.Errorf("failed to write chart: %w", err)
		}
	}

	return run, nil
}

func newRun(memorySource string, results []benchmark.Result) benchmark.Run {
	host, err := os.Hostname()
	if err != nil {
		telemetry.LogWarn("Could not determine hostname", "error", err)
	}
	return benchmark.Run{
		Timestamp:    nowFunc(),
		Host:         host,
		GoVersion:    runtime.Version(),
		Platform:     runtime.GOOS + "/" + runtime.GOARCH,
		MemorySource: memorySource,
		Results:      results,
	}
}

func saveHistory(path string, run benchmark.Run) error {
	store, err := newStoreFunc(path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	if err := store.Save(run); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	telemetry.LogInfo("Run saved to history", "path", path)
	return nil
}
