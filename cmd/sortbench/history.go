package main

import (
	"fmt"

	"sortbench/internal/report"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "List runs kept in the history store",
		RunE:  runHistory,
	}
}

func runHistory(cmd *cobra.Command, args []string) error {
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

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded.")
		return nil
	}
	report.PrintRuns(cmd.OutOrStdout(), runs)
	return nil
}
