package main

import (
	"fmt"

	"sortbench/internal/benchmark"
	"sortbench/internal/report"

	"github.com/spf13/cobra"
)

var compareThreshold float64

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the two latest runs in the history store",
		Long: `Pairs the results of the two most recent stored runs by algorithm and
data size and reports the change in execution time and memory. Results whose
time changed by more than --threshold percent are flagged.`,
		RunE: runCompare,
	}
	cmd.Flags().Float64Var(&compareThreshold, "threshold", 10.0, "Percentage threshold for regression warning")
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	if settings.HistoryFile == "" {
		return fmt.Errorf("no history store configured; set --history or history_file")
	}

	store, err := newStoreFunc(settings.HistoryFile)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	runs, err := store.LoadAll()
	if err != nil {
		return fmt.Errorf("failed to load history: %w", err)
	}

	if len(runs) < 2 {
		fmt.Fprintf(cmd.OutOrStdout(), "Need at least two runs to compare, found %d.\n", len(runs))
		return nil
	}

	prev, curr := runs[len(runs)-2], runs[len(runs)-1]
	comps := benchmark.Compare(prev, curr)
	fmt.Fprintf(cmd.OutOrStdout(), "Comparing run %d with run %d\n\n", prev.ID, curr.ID)
	report.PrintComparison(cmd.OutOrStdout(), comps, compareThreshold)

	regressions := 0
	for _, c := range comps {
		if c.Status(compareThreshold) == "SLOWER" {
			regressions++
		}
	}
	if regressions > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d result(s) slower than the %.1f%% threshold\n", regressions, compareThreshold)
	}
	return nil
}
