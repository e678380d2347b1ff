package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sortbench/internal/benchmark"
)

// Output formats accepted by SaveFile.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// ErrUnknownFormat is returned for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Render encodes results in the named format.
func Render(format string, results []benchmark.Result) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatJSON, "":
		return RenderJSON(results)
	case FormatCSV:
		return RenderCSV(results)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// SaveFile renders the complete document before touching path, so an
// encoding failure never leaves a partial file behind.
func SaveFile(path, format string, results []benchmark.Result) error {
	data, err := Render(format, results)
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write results to %s: %w", path, err)
	}
	return nil
}
