// Package logging builds the file logger used across academia. The terminal
// belongs to the TUI, so log output always goes to a file or is discarded.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// New creates a [log.Logger] writing logfmt lines to w with timestamps and
// caller reporting. A nil writer discards output.
func New(w io.Writer, debug bool) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	opts := log.Options{
		ReportTimestamp: true,
		ReportCaller:    true,
		Formatter:       log.LogfmtFormatter,
		Prefix:          "academia",
	}
	logger := log.NewWithOptions(w, opts)
	if debug {
		logger.SetLevel(log.DebugLevel)
	} else {
		logger.SetLevel(log.InfoLevel)
	}
	return logger
}

// Open creates the log file at path, including parent directories, and
// returns a logger appending to it. The caller closes the returned file.
// An empty path yields a discarding logger and a no-op closer.
func Open(path string, debug bool) (*log.Logger, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return New(nil, debug), nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(file, debug), file, nil
}

// With returns a child logger carrying kv on every entry.
func With(l *log.Logger, kv ...any) *log.Logger {
	return l.With(kv...)
}

// RequestID generates a new v4 [uuid.UUID] string used to correlate the log
// lines of one outbound request.
func RequestID() string {
	return uuid.New().String()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
