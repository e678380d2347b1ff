package telemetry

import (
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for one benchmark run. Each run
// gets its own registry so repeated runs in one process (and tests) never
// collide on registration.
type Metrics struct {
	Registry *prometheus.Registry

	ExecutionSeconds *prometheus.GaugeVec
	MemoryDeltaMB    *prometheus.GaugeVec
	FinalMemoryMB    *prometheus.GaugeVec
	MeasurementsDone *prometheus.CounterVec
	DatasetsLoaded   *prometheus.CounterVec
}

// NewMetrics creates and registers the benchmark collectors.
func NewMetrics() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.ExecutionSeconds = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sortbench_execution_seconds",
			Help: "Wall-clock execution time of one sort invocation",
		},
		[]string{"algorithm", "data_size"},
	)

	m.MemoryDeltaMB = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sortbench_memory_delta_megabytes",
			Help: "Memory sample after the sort minus the sample before it",
		},
		[]string{"algorithm", "data_size"},
	)

	m.FinalMemoryMB = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "sortbench_final_memory_megabytes",
			Help: "Memory sample taken right after the sort returned",
		},
		[]string{"algorithm", "data_size"},
	)

	m.MeasurementsDone = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sortbench_measurements_total",
			Help: "Number of completed measurements",
		},
		[]string{"algorithm"},
	)

	m.DatasetsLoaded = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sortbench_datasets_total",
			Help: "Datasets obtained, by origin (file or generated)",
		},
		[]string{"origin"},
	)

	m.Registry.MustRegister(
		m.ExecutionSeconds,
		m.MemoryDeltaMB,
		m.FinalMemoryMB,
		m.MeasurementsDone,
		m.DatasetsLoaded,
	)

	return m
}

// ObserveMeasurement records one benchmark result.
func (m *Metrics) ObserveMeasurement(algorithm string, dataSize int, seconds, deltaMB, finalMB float64) {
	size := strconv.Itoa(dataSize)
	m.ExecutionSeconds.WithLabelValues(algorithm, size).Set(seconds)
	m.MemoryDeltaMB.WithLabelValues(algorithm, size).Set(deltaMB)
	m.FinalMemoryMB.WithLabelValues(algorithm, size).Set(finalMB)
	m.MeasurementsDone.WithLabelValues(algorithm).Inc()
}

// TrackDataset counts a dataset by origin.
func (m *Metrics) TrackDataset(origin string) {
	m.DatasetsLoaded.WithLabelValues(origin).Inc()
}

// WriteTextfile writes the registry in the Prometheus text format, suitable
// for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
