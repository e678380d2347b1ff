package telemetry

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Mock handler to inspect log records
type mockHandler struct {
	mu       sync.Mutex
	records  []slog.Record
	attrs    []slog.Attr
	group    string
	enabled  bool
	handleFn func(slog.Record) error // Optional custom handle logic
}

func (h *mockHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.enabled
}

func (h *mockHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.handleFn != nil {
		return h.handleFn(record)
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record)
	return nil
}

func (h *mockHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	newHandler := mockHandler{records: h.records, attrs: h.attrs, group: h.group, enabled: h.enabled, handleFn: h.handleFn}
	newHandler.attrs = append(h.attrs, attrs...)
	return &newHandler
}

func (h *mockHandler) WithGroup(name string) slog.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	newHandler := mockHandler{records: h.records, attrs: h.attrs, group: h.group, enabled: h.enabled, handleFn: h.handleFn}
	if newHandler.group == "" {
		newHandler.group = name
	} else {
		newHandler.group = newHandler.group + "." + name
	}
	return &newHandler
}

func (h *mockHandler) getRecords() []slog.Record {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.records
}

func TestMultiHandler(t *testing.T) {
	h1 := &mockHandler{enabled: true}
	h2 := &mockHandler{enabled: true}

	multi := &multiHandler{handlers: []slog.Handler{h1, h2}}

	t.Run("Enabled", func(t *testing.T) {
		assert.True(t, multi.Enabled(context.Background(), slog.LevelInfo))

		h1.enabled = false
		h2.enabled = false
		assert.False(t, multi.Enabled(context.Background(), slog.LevelInfo))
	})

	t.Run("Handle", func(t *testing.T) {
		h1.enabled = true
		h2.enabled = true
		record := slog.NewRecord(time.Now(), slog.LevelInfo, "test message", 0)
		err := multi.Handle(context.Background(), record)
		assert.NoError(t, err)
		assert.Len(t, h1.getRecords(), 1)
		assert.Len(t, h2.getRecords(), 1)
		assert.Equal(t, "test message", h1.getRecords()[0].Message)
	})

	t.Run("Handle skips disabled handlers", func(t *testing.T) {
		h2.enabled = false
		record := slog.NewRecord(time.Now(), slog.LevelInfo, "second", 0)
		require.NoError(t, multi.Handle(context.Background(), record))
		assert.Len(t, h1.getRecords(), 2)
		assert.Len(t, h2.getRecords(), 1)
		h2.enabled = true
	})

	t.Run("WithAttrs", func(t *testing.T) {
		attrs := []slog.Attr{slog.String("key", "value")}
		handlerWithAttrs := multi.WithAttrs(attrs)

		// Check if the new handler is a multiHandler
		newMulti, ok := handlerWithAttrs.(*multiHandler)
		require.True(t, ok, "WithAttrs should return a *multiHandler")

		// Check if underlying handlers have the attributes
		for _, h := range newMulti.handlers {
			mockH, ok := h.(*mockHandler)
			require.True(t, ok)
			assert.Equal(t, attrs, mockH.attrs)
		}
	})

	t.Run("WithGroup", func(t *testing.T) {
		handlerWithGroup := multi.WithGroup("my-group")

		newMulti, ok := handlerWithGroup.(*multiHandler)
		require.True(t, ok, "WithGroup should return a *multiHandler")

		for _, h := range newMulti.handlers {
			mockH, ok := h.(*mockHandler)
			require.True(t, ok)
			assert.Equal(t, "my-group", mockH.group)
		}
	})
}

func TestNewLogger(t *testing.T) {
	t.Run("Debug level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, true, "")
		logger.Debug("debug message")
		assert.Contains(t, buf.String(), "debug message")
	})

	t.Run("Info level drops debug", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, false, "")
		logger.Debug("hidden")
		logger.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("File logging", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "sortbench.log")

		var buf bytes.Buffer
		logger := NewLogger(&buf, false, path)
		logger.Info("file message", "size", 1000)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "file message")
		assert.Contains(t, buf.String(), "file message")
	})

	t.Run("No handlers", func(t *testing.T) {
		logger := NewLogger(nil, false, "")
		require.NotNil(t, logger)
		logger.Info("this goes nowhere")
	})

	t.Run("Unopenable log file", func(t *testing.T) {
		original := slog.Default()
		defer slog.SetDefault(original)
		var errBuf bytes.Buffer
		slog.SetDefault(slog.New(slog.NewJSONHandler(&errBuf, nil)))

		var buf bytes.Buffer
		dir := t.TempDir()
		logger := NewLogger(&buf, false, dir)
		logger.Info("still logs to console")

		assert.Contains(t, errBuf.String(), "Failed to open log file")
		assert.Contains(t, buf.String(), "still logs to console")
	})
}

func TestHelpersUseDefaultLogger(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	var buf bytes.Buffer
	slog.SetDefault(NewLogger(&buf, true, ""))

	LogDebug("d")
	LogInfo("i", "k", "v")
	LogWarn("w")
	LogError("e", errors.New("boom"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)

	var last map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[3]), &last))
	assert.Equal(t, "ERROR", last["level"])
	assert.Equal(t, "boom", last["error"])
}

func TestLogInfof(t *testing.T) {
	originalLogger := slog.Default()
	defer slog.SetDefault(originalLogger)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	LogInfof("hello, %s", "world")

	var logOutput map[string]interface{}
	err := json.Unmarshal(buf.Bytes(), &logOutput)
	require.NoError(t, err)

	assert.Equal(t, "hello, world", logOutput["msg"])
	assert.Equal(t, "INFO", logOutput["level"])
}
