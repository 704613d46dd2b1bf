package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	// LogFileName is the active log inside the log directory
	LogFileName = "puzzle-snap.log"

	// MaxLogSize rotates the active log on startup once exceeded
	MaxLogSize = 10 * 1024 * 1024
)

// New creates a leveled logger writing JSON lines to w
// Unknown levels fall back to info
func New(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Setup opens the file sink used while the terminal owns stdout
// With debug off it returns a disabled logger and a nil file
func Setup(debug bool, dir, level string) (zerolog.Logger, *os.File, error) {
	if !debug {
		return zerolog.Nop(), nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("creating log directory: %w", err)
	}

	path := LogFilePath(dir)
	if err := rotate(path); err != nil {
		return zerolog.Nop(), nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, fmt.Errorf("opening log file: %w", err)
	}
	return New(f, level), f, nil
}

// LogFilePath returns the active log path inside dir
func LogFilePath(dir string) string {
	return filepath.Join(dir, LogFileName)
}

// rotate renames an oversized log to a timestamped sibling
func rotate(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.Size() <= MaxLogSize {
		return nil
	}

	ext := filepath.Ext(path)
	stamp := time.Now().Format("20060102-150405")
	rotated := path[:len(path)-len(ext)] + "-" + stamp + ext
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotating log file: %w", err)
	}
	return nil
}
