package eval

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Logger persists scored turns to storage.
// Implementations include JSONLLogger for writing to turn-per-line files.
type Logger interface {
	// Log writes one history entry to the configured storage.
	Log(entry HistoryEntry) error

	// Close flushes any buffered data and releases resources.
	Close() error
}

// JSONLLogger implements Logger by appending one JSON line per scored turn.
// It is safe for concurrent use, although a single evaluation session writes
// from one goroutine anyway.
type JSONLLogger struct {
	path string
	file *os.File
	mu   sync.Mutex
}

// NewJSONLLogger creates a logger that appends to the given file path,
// creating the file if it does not exist. The returned logger must be closed
// when done.
//
// Example:
//
//	logger, err := eval.NewJSONLLogger("turns.jsonl")
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
func NewJSONLLogger(path string) (Logger, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	return &JSONLLogger{
		path: path,
		file: file,
	}, nil
}

// Log writes a history entry as a single JSON line. The file is synced after
// each write so entries survive a crash of the examiner process.
func (l *JSONLLogger) Log(entry HistoryEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	if _, err := l.file.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write history entry: %w", err)
	}

	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("failed to flush log file: %w", err)
	}

	return nil
}

// Close flushes buffered data and closes the underlying file.
func (l *JSONLLogger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.file.Sync(); err != nil {
		return fmt.Errorf("failed to flush log file before close: %w", err)
	}
	if err := l.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}
	return nil
}
