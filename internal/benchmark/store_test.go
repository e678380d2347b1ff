package benchmark

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "history", "runs.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.LoadAll()
	assert.NoError(t, err)
	assert.Empty(t, runs)

	latest, err := store.LoadLatest()
	assert.NoError(t, err)
	assert.Nil(t, latest)

	run1 := Run{
		Timestamp:    time.Now().Add(-1 * time.Hour),
		Host:         "bench-1",
		MemorySource: "rss",
		Results: []Result{
			{Algorithm: "Insertion Sort", DataSize: 1000, ExecutionTime: 0.001},
		},
	}
	require.NoError(t, store.Save(run1))

	latest, err = store.LoadLatest()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "bench-1", latest.Host)
	assert.Equal(t, int64(1), latest.ID)

	run2 := Run{
		Timestamp: time.Now(),
		Host:      "bench-2",
		Results: []Result{
			{Algorithm: "Insertion Sort", DataSize: 1000, ExecutionTime: 0.002},
		},
	}
	require.NoError(t, store.Save(run2))

	runs, err = store.LoadAll()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "bench-1", runs[0].Host)
	assert.Equal(t, "bench-2", runs[1].Host)
	assert.Equal(t, int64(2), runs[1].ID)
	assert.Equal(t, 0.002, runs[1].Results[0].ExecutionTime)
}

func TestFileStoreSortsByTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runs.json")
	store, err := NewFileStore(path)
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, store.Save(Run{Timestamp: now, Host: "newer"}))
	require.NoError(t, store.Save(Run{Timestamp: now.Add(-time.Minute), Host: "older"}))

	latest, err := store.LoadLatest()
	require.NoError(t, err)
	assert.Equal(t, "newer", latest.Host)
}

func TestFileStoreEmptyAndCorruptFiles(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(empty, nil, 0644))
	store, err := NewFileStore(empty)
	require.NoError(t, err)
	runs, err := store.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, runs)

	corrupt := filepath.Join(dir, "corrupt.json")
	require.NoError(t, os.WriteFile(corrupt, []byte("{not json"), 0644))
	store, err = NewFileStore(corrupt)
	require.NoError(t, err)
	_, err = store.LoadAll()
	assert.Error(t, err)
	assert.Error(t, store.Save(Run{}))
}
