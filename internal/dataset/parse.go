package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
)

// ErrMalformed marks a dataset payload that is not a flat integer array.
var ErrMalformed = errors.New("malformed dataset")

// Parse decodes a flat integer array written as "[3, 1, 2]". Whitespace
// (including newlines) and brackets are ignored anywhere in the payload.
// An empty payload yields an empty slice.
func Parse(data []byte) ([]int, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) || r == '[' || r == ']' {
			return -1
		}
		return r
	}, string(data))

	if cleaned == "" {
		return []int{}, nil
	}

	parts := strings.Split(cleaned, ",")
	values := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%w: token %d (%q): %v", ErrMalformed, i, p, err)
		}
		values[i] = v
	}
	return values, nil
}

// Format renders values in the notation Parse accepts.
func Format(values []int) []byte {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(strconv.Itoa(v))
	}
	buf.WriteByte(']')
	buf.WriteByte('\n')
	return buf.Bytes()
}

// WriteFile stores values at path, creating parent directories.
func WriteFile(path string, values []int) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	if err := os.WriteFile(path, Format(values), 0644); err != nil {
		return fmt.Errorf("failed to write dataset %s: %w", path, err)
	}
	return nil
}
