package report

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"

	"sortbench/internal/benchmark"
)

var csvHeader = []string{
	"algorithm",
	"data_size",
	"execution_time",
	"memory_used_mb",
	"initial_memory_mb",
	"final_memory_mb",
}

// RenderCSV returns results as CSV with a header row.
func RenderCSV(results []benchmark.Result) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}
	for _, r := range results {
		if err := w.Write([]string{
			r.Algorithm,
			strconv.Itoa(r.DataSize),
			fixed6(r.ExecutionTime),
			fixed6(r.MemoryUsedMB),
			fixed6(r.InitialMemoryMB),
			fixed6(r.FinalMemoryMB),
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteCSV writes results to w as CSV.
func WriteCSV(w io.Writer, results []benchmark.Result) error {
	data, err := RenderCSV(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
