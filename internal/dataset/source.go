package dataset

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"

	"sortbench/internal/telemetry"
)

const (
	DefaultDir     = "data/test"
	DefaultPattern = "test_data_%d.json"
	DefaultMax     = 10000
)

// Origin tells where a dataset came from.
type Origin string

const (
	OriginFile      Origin = "file"
	OriginGenerated Origin = "generated"
)

// Source supplies the input sequence for a requested size.
type Source interface {
	Load(size int) ([]int, Origin, error)
}

// FileSource reads per-size dataset files and generates random data for
// sizes that have no file.
type FileSource struct {
	Dir     string
	Pattern string // fmt pattern taking the size, e.g. "test_data_%d.json"
	Max     int    // generated values fall in [0, Max)
	Rand    *rand.Rand

	// SaveGenerated writes generated datasets to Path(size) so later runs,
	// in this or another implementation, sort the same input.
	SaveGenerated bool
}

// NewFileSource returns a FileSource with the default layout and range.
func NewFileSource(rng *rand.Rand) *FileSource {
	return &FileSource{
		Dir:     DefaultDir,
		Pattern: DefaultPattern,
		Max:     DefaultMax,
		Rand:    rng,
	}
}

// Path returns the dataset file location for size.
func (s *FileSource) Path(size int) string {
	pattern := s.Pattern
	if pattern == "" {
		pattern = DefaultPattern
	}
	return filepath.Join(s.Dir, fmt.Sprintf(pattern, size))
}

// Load reads the dataset for size. A missing file is not an error: random
// data of exactly size elements is generated instead. The length of a loaded
// file is not checked against size.
func (s *FileSource) Load(size int) ([]int, Origin, error) {
	path := s.Path(size)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			telemetry.LogInfo("Dataset file not found, generating random data", "path", path, "size", size)
			values := Generate(s.Rand, size, s.limit())
			if s.SaveGenerated {
				if err := WriteFile(path, values); err != nil {
					return nil, "", err
				}
			}
			return values, OriginGenerated, nil
		}
		return nil, "", fmt.Errorf("failed to read dataset %s: %w", path, err)
	}

	values, err := Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse dataset %s: %w", path, err)
	}

	if len(values) != size {
		telemetry.LogWarn("Dataset length differs from requested size", "path", path, "size", size, "length", len(values))
	}
	telemetry.LogDebug("Loaded dataset", "path", path, "length", len(values))
	return values, OriginFile, nil
}

func (s *FileSource) limit() int {
	if s.Max <= 0 {
		return DefaultMax
	}
	return s.Max
}

// Generate returns size uniformly distributed values in [0, limit).
func Generate(rng *rand.Rand, size, limit int) []int {
	values := make([]int, size)
	for i := range values {
		values[i] = rng.Intn(limit)
	}
	return values
}
