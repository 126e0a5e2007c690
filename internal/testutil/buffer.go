package testutil

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// ThreadSafeBuffer collects log output written from several goroutines, such as a server
// runnable and the test driving it.
type ThreadSafeBuffer struct {
	buffer bytes.Buffer
	mutex  sync.Mutex
}

// Write implements io.Writer
func (b *ThreadSafeBuffer) Write(p []byte) (n int, err error) {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.Write(p)
}

// String returns the accumulated buffer as a string
func (b *ThreadSafeBuffer) String() string {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	return b.buffer.String()
}

// Reset resets the buffer to be empty
func (b *ThreadSafeBuffer) Reset() {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	b.buffer.Reset()
}

// JSONHandler returns a slog JSON handler writing to the buffer at level and above.
func (b *ThreadSafeBuffer) JSONHandler(level slog.Level) slog.Handler {
	return slog.NewJSONHandler(b, &slog.HandlerOptions{Level: level})
}

// Records decodes every line written by a JSONHandler.
func (b *ThreadSafeBuffer) Records(t *testing.T) []map[string]any {
	t.Helper()
	var records []map[string]any

	scanner := bufio.NewScanner(bytes.NewBufferString(b.String()))
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		var record map[string]any
		require.NoError(t, json.Unmarshal(line, &record), "log line is not JSON: %s", line)
		records = append(records, record)
	}
	require.NoError(t, scanner.Err())
	return records
}

// RecordsWithMessage returns the records whose msg equals msg.
func (b *ThreadSafeBuffer) RecordsWithMessage(t *testing.T, msg string) []map[string]any {
	t.Helper()
	var matched []map[string]any
	for _, r := range b.Records(t) {
		if r[slog.MessageKey] == msg {
			matched = append(matched, r)
		}
	}
	return matched
}
