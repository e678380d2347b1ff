package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"sortbench/internal/benchmark"
)

// SQLiteStore implements benchmark.Store using SQLite
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		host TEXT NOT NULL DEFAULT '',
		go_version TEXT NOT NULL DEFAULT '',
		platform TEXT NOT NULL DEFAULT '',
		memory_source TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS results (
		run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		algorithm TEXT NOT NULL,
		data_size INTEGER NOT NULL,
		execution_time REAL NOT NULL,
		memory_used_mb REAL NOT NULL,
		initial_memory_mb REAL NOT NULL,
		final_memory_mb REAL NOT NULL,
		PRIMARY KEY (run_id, position)
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save stores a run and its results in one transaction.
func (s *SQLiteStore) Save(run benchmark.Run) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (timestamp, host, go_version, platform, memory_source) VALUES (?, ?, ?, ?, ?)`,
		run.Timestamp.UTC(), run.Host, run.GoVersion, run.Platform, run.MemorySource,
	)
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(`INSERT INTO results
		(run_id, position, algorithm, data_size, execution_time, memory_used_mb, initial_memory_mb, final_memory_mb)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range run.Results {
		if _, err := stmt.Exec(runID, i, r.Algorithm, r.DataSize, r.ExecutionTime, r.MemoryUsedMB, r.InitialMemoryMB, r.FinalMemoryMB); err != nil {
			return fmt.Errorf("failed to insert result %d: %w", i, err)
		}
	}

	return tx.Commit()
}

// LoadAll returns every run, oldest first, with results in their original order.
func (s *SQLiteStore) LoadAll() ([]benchmark.Run, error) {
	rows, err := s.db.Query(`SELECT id, timestamp, host, go_version, platform, memory_source FROM runs ORDER BY timestamp ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []benchmark.Run{}
	index := make(map[int64]int)
	for rows.Next() {
		var r benchmark.Run
		var ts time.Time
		if err := rows.Scan(&r.ID, &ts, &r.Host, &r.GoVersion, &r.Platform, &r.MemorySource); err != nil {
			return nil, err
		}
		r.Timestamp = ts
		r.Results = []benchmark.Result{}
		index[r.ID] = len(runs)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	resRows, err := s.db.Query(`SELECT run_id, algorithm, data_size, execution_time, memory_used_mb, initial_memory_mb, final_memory_mb
		FROM results ORDER BY run_id ASC, position ASC`)
	if err != nil {
		return nil, err
	}
	defer resRows.Close()

	for resRows.Next() {
		var runID int64
		var r benchmark.Result
		if err := resRows.Scan(&runID, &r.Algorithm, &r.DataSize, &r.ExecutionTime, &r.MemoryUsedMB, &r.InitialMemoryMB, &r.FinalMemoryMB); err != nil {
			return nil, err
		}
		if i, ok := index[runID]; ok {
			runs[i].Results = append(runs[i].Results, r)
		}
	}
	return runs, resRows.Err()
}

// LoadLatest returns the newest run, or nil when the store is empty.
func (s *SQLiteStore) LoadLatest() (*benchmark.Run, error) {
	runs, err := s.LoadAll()
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[len(runs)-1], nil
}
