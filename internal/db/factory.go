package db

import (
	"path/filepath"
	"strings"

	"sortbench/internal/benchmark"
)

// NewStore opens the run history at path. SQLite is used for .db, .sqlite
// and .sqlite3 files; anything else is a JSON history file.
func NewStore(path string) (benchmark.Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		s, err := NewSQLiteStore(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		s, err := benchmark.NewFileStore(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}
