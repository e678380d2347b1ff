package benchmark

import "time"

// Result is one measurement of one algorithm against one dataset.
// MemoryUsedMB is always FinalMemoryMB - InitialMemoryMB.
type Result struct {
	Algorithm       string  `json:"algorithm"`
	DataSize        int     `json:"data_size"`
	ExecutionTime   float64 `json:"execution_time"` // seconds
	MemoryUsedMB    float64 `json:"memory_used_mb"`
	InitialMemoryMB float64 `json:"initial_memory_mb"`
	FinalMemoryMB   float64 `json:"final_memory_mb"`
}

// Run represents a collection of benchmark results from a single execution.
type Run struct {
	ID           int64     `json:"id,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	Host         string    `json:"host,omitempty"`
	GoVersion    string    `json:"go_version,omitempty"`
	Platform     string    `json:"platform,omitempty"` // GOOS/GOARCH
	MemorySource string    `json:"memory_source,omitempty"`
	Results      []Result  `json:"results"`
}
