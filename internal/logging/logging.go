// Package logging sets up the session logger. The TUI owns stdout, so logs
// go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/idilsaglam/shoplist/internal/paths"
	"github.com/oklog/ulid/v2"
)

// ResolvePath places a relative log file name under the shoplist home,
// creating the home directory if needed. Empty and absolute paths are
// returned as they are.
func ResolvePath(p string) (string, error) {
	if p == "" || filepath.IsAbs(p) {
		return p, nil
	}
	home, err := paths.EnsureHome()
	if err != nil {
		return "", fmt.Errorf("log home: %w", err)
	}
	return filepath.Join(home, p), nil
}

// New returns a logger writing to path, tagged with a fresh session id.
// An empty path yields a logger that discards everything. The returned
// close func is always non-nil.
func New(path, level string) (*slog.Logger, func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, closeFn, fmt.Errorf("log dir: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}
	return NewWithWriter(w, level), closeFn, nil
}

// NewWithWriter builds the session logger on top of w.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(h).With("session", ulid.Make().String())
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
