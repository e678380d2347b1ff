package report

import (
	"bytes"
	"encoding/json"
	"io"
	"strconv"

	"sortbench/internal/benchmark"
)

// record fixes field order and renders reals with six decimals.
type record struct {
	Algorithm       string      `json:"algorithm"`
	DataSize        int         `json:"data_size"`
	ExecutionTime   json.Number `json:"execution_time"`
	MemoryUsedMB    json.Number `json:"memory_used_mb"`
	InitialMemoryMB json.Number `json:"initial_memory_mb"`
	FinalMemoryMB   json.Number `json:"final_memory_mb"`
}

func fixed6(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func toRecord(r benchmark.Result) record {
	return record{
		Algorithm:       r.Algorithm,
		DataSize:        r.DataSize,
		ExecutionTime:   json.Number(fixed6(r.ExecutionTime)),
		MemoryUsedMB:    json.Number(fixed6(r.MemoryUsedMB)),
		InitialMemoryMB: json.Number(fixed6(r.InitialMemoryMB)),
		FinalMemoryMB:   json.Number(fixed6(r.FinalMemoryMB)),
	}
}

// RenderJSON returns results as one indented JSON array.
func RenderJSON(results []benchmark.Result) ([]byte, error) {
	records := make([]record, len(results))
	for i, r := range results {
		records[i] = toRecord(r)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes results to w as a single JSON document.
func WriteJSON(w io.Writer, results []benchmark.Result) error {
	data, err := RenderJSON(results)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
