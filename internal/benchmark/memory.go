package benchmark

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

const bytesPerMB = 1024 * 1024

// ErrUnknownSampler is returned by NewSampler for an unsupported source name.
var ErrUnknownSampler = errors.New("unknown memory source")

// Memory source names accepted by NewSampler.
const (
	SourceRSS    = "rss"
	SourceHeap   = "heap"
	SourceSystem = "system"
)

// MemorySampler takes a point-in-time memory reading in megabytes.
type MemorySampler interface {
	Name() string
	SampleMB() (float64, error)
}

// NewSampler resolves a memory source name.
func NewSampler(name string) (MemorySampler, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case SourceRSS, "":
		return NewRSSSampler()
	case SourceHeap:
		return HeapSampler{}, nil
	case SourceSystem:
		return SystemSampler{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s, %s or %s)", ErrUnknownSampler, name, SourceRSS, SourceHeap, SourceSystem)
	}
}

// RSSSampler reads the resident set size of the current process.
type RSSSampler struct {
	proc *process.Process
}

func NewRSSSampler() (*RSSSampler, error) {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, fmt.Errorf("failed to open current process: %w", err)
	}
	return &RSSSampler{proc: p}, nil
}

func (s *RSSSampler) Name() string { return SourceRSS }

func (s *RSSSampler) SampleMB() (float64, error) {
	info, err := s.proc.MemoryInfo()
	if err != nil {
		return 0, fmt.Errorf("failed to read process memory: %w", err)
	}
	return float64(info.RSS) / bytesPerMB, nil
}

// HeapSampler reads bytes of allocated heap objects from the Go runtime.
// It never fails.
type HeapSampler struct{}

func (HeapSampler) Name() string { return SourceHeap }

func (HeapSampler) SampleMB() (float64, error) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return float64(m.Alloc) / bytesPerMB, nil
}

// SystemSampler reads host-wide used memory. Other processes show up in the
// delta, so it is the noisiest source.
type SystemSampler struct{}

func (SystemSampler) Name() string { return SourceSystem }

func (SystemSampler) SampleMB() (float64, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("failed to read system memory: %w", err)
	}
	return float64(vm.Used) / bytesPerMB, nil
}
