package main

import (
	"fmt"
	"os"

	"sortbench/internal/config"
	"sortbench/internal/telemetry"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var exit = os.Exit
var cfgFile string

// settings holds the validated configuration for the running command.
var settings config.Settings

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCmd()

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"verbose":       "verbose",
	"log-file":      "log_file",
	"history":       "history_file",
	"sizes":         "sizes",
	"algorithms":    "algorithms",
	"data-dir":      "data_dir",
	"data-pattern":  "data_pattern",
	"generate":      "save_generated",
	"random-max":    "random_max",
	"seed":          "seed",
	"output":        "output",
	"format":        "format",
	"memory-source": "memory_source",
	"gc":            "gc",
	"metrics-file":  "metrics_file",
	"chart":         "chart_file",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sortbench",
		Short: "Benchmark insertion sort and bubble sort",
		Long: `sortbench measures wall-clock time and memory of insertion sort and
bubble sort across several dataset sizes. Datasets are read from per-size
files and generated randomly when a file is missing. Results are written as
JSON (or CSV) and can be kept in a history store for comparison.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE:              runBenchmark,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	pf.BoolP("verbose", "v", false, "Enable verbose/debug logging")
	pf.String("log-file", "", "Also write JSON logs to this file")
	pf.String("history", "", "Run history store (.db/.sqlite for SQLite, otherwise JSON)")

	f := cmd.Flags()
	f.IntSlice("sizes", config.DefaultSizes, "Dataset sizes to benchmark")
	f.StringSlice("algorithms", config.DefaultAlgorithms, "Algorithms to run (insertion, bubble)")
	f.String("data-dir", "data/test", "Directory holding dataset files")
	f.String("data-pattern", "test_data_%d.json", "Dataset file name pattern")
	f.Bool("generate", false, "Write generated datasets to the data directory")
	f.Int("random-max", 10000, "Exclusive upper bound of generated values")
	f.Int64("seed", 0, "Random seed for generated datasets (0 seeds from the clock)")
	f.StringP("output", "o", "data/results/go_results.json", "Results file")
	f.String("format", "json", "Results format (json, csv)")
	f.String("memory-source", "rss", "Memory reading (rss, heap, system)")
	f.Bool("gc", true, "Run the garbage collector before each measurement")
	f.String("metrics-file", "", "Write Prometheus metrics to this textfile")
	f.String("chart", "", "Write an SVG chart of execution times")

	cmd.AddCommand(newHistoryCmd(), newCompareCmd())
	return cmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	config.Load(cfgFile)
}

// bindFlags binds the flags visible to cmd onto their configuration keys.
func bindFlags(cmd *cobra.Command) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || bindErr != nil {
			return
		}
		bindErr = viper.BindPFlag(key, f)
	})
	return bindErr
}

func setup(cmd *cobra.Command, args []string) error {
	if err := bindFlags(cmd); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	s, err := config.Current()
	if err == nil {
		err = config.Validate(s)
	}
	if err != nil {
		return err
	}

	telemetry.InitLogger(s.Verbose, s.LogFile)
	settings = s
	return nil
}
