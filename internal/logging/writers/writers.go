// Package writers resolves a log output setting into a writable destination.
package writers

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// WriterType represents the type of writer to create
type WriterType string

const (
	WriterTypeStdout WriterType = "stdout"
	WriterTypeStderr WriterType = "stderr"
	WriterTypeFile   WriterType = "file"
)

// CreateWriter creates a writer based on the output setting
// Supported formats:
//   - "stdout" or "" - writes to os.Stdout
//   - "stderr" - writes to os.Stderr
//   - "file:///path/to/file" - writes to file (creates directories if needed)
//   - "/path/to/file" or "./file.log" - writes to file (creates directories if needed)
//
// Closing a stdout or stderr writer is a no-op.
func CreateWriter(output string) (io.WriteCloser, error) {
	switch ParseWriterType(output) {
	case WriterTypeStdout:
		return nopCloser{os.Stdout}, nil
	case WriterTypeStderr:
		return nopCloser{os.Stderr}, nil
	}

	if path, ok := strings.CutPrefix(output, "file://"); ok {
		return createFileWriter(path)
	}
	if isFilePath(output) {
		return createFileWriter(output)
	}
	return nil, fmt.Errorf("unsupported output format: %s", output)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// isFilePath determines if the string represents a local file path
func isFilePath(path string) bool {
	if strings.Contains(path, "://") {
		return false
	}
	return strings.Contains(path, "/") || strings.Contains(path, "\\") || filepath.Ext(path) == ".log"
}

// createFileWriter opens filePath for appending, creating parent directories first
func createFileWriter(filePath string) (*os.File, error) {
	if filePath == "" {
		return nil, fmt.Errorf("empty log file path")
	}

	dir := filepath.Dir(filePath)
	if dir != "." && dir != "/" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	return file, nil
}

// ParseWriterType determines the writer type from an output string
func ParseWriterType(output string) WriterType {
	switch output {
	case "", "stdout":
		return WriterTypeStdout
	case "stderr":
		return WriterTypeStderr
	default:
		return WriterTypeFile
	}
}
