package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"sortbench/internal/benchmark"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1)

	slowerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true) // red
	fasterStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)  // green
)

// PrintTable writes a human-readable results table.
func PrintTable(out io.Writer, results []benchmark.Result) {
	fmt.Fprintln(out, titleStyle.Render("Go Sorting Algorithms Benchmark"))

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSIZE\tTIME (s)\tMEM USED (MB)\tINITIAL (MB)\tFINAL (MB)")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%.6f\t%.2f\t%.2f\t%.2f\n",
			r.Algorithm, r.DataSize, r.ExecutionTime, r.MemoryUsedMB, r.InitialMemoryMB, r.FinalMemoryMB)
	}
	w.Flush()
}

// PrintSummary writes per-algorithm aggregates.
func PrintSummary(out io.Writer, summaries []benchmark.Summary) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tN\tMEAN TIME (s)\tSTDDEV\tMEAN MEM (MB)\tSTDDEV")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%.6f\t%.6f\t%.2f\t%.2f\n",
			s.Algorithm, s.Samples, s.MeanTime, s.StdDevTime, s.MeanMemoryMB, s.StdDevMemory)
	}
	w.Flush()
}

// PrintComparison writes the per-point differences between two runs.
func PrintComparison(out io.Writer, comps []benchmark.Comparison, threshold float64) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ALGORITHM\tSIZE\tPREV (s)\tCURR (s)\tDIFF %\tMEM DIFF (MB)\tSTATUS")
	for _, c := range comps {
		status := c.Status(threshold)
		switch status {
		case "SLOWER":
			status = slowerStyle.Render(status)
		case "FASTER":
			status = fasterStyle.Render(status)
		}
		fmt.Fprintf(w, "%s\t%d\t%.6f\t%.6f\t%+.2f%%\t%+.2f\t%s\n",
			c.Algorithm, c.DataSize, c.Prev.ExecutionTime, c.Curr.ExecutionTime, c.TimeDiffPercent, c.MemoryDiffMB, status)
	}
	w.Flush()
}

// PrintRuns lists stored runs, one line each.
func PrintRuns(out io.Writer, runs []benchmark.Run) {
	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tTIMESTAMP\tHOST\tPLATFORM\tMEMORY\tRESULTS")
	for _, r := range runs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d\n",
			r.ID, r.Timestamp.Format("2006-01-02 15:04:05"), r.Host, r.Platform, r.MemorySource, len(r.Results))
	}
	w.Flush()
}
