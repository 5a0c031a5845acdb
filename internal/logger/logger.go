// Package logger builds the zerolog logger shared by the check pipeline.
// The logger is constructed once and passed to components explicitly; nothing
// configures logging through ambient process state.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New creates a timestamped logger writing human-readable lines to stdout
// and, when logFile is non-empty, JSON lines to that file as well (the file
// is kept as a run artifact for external schedulers). The returned closer
// releases the file; it is safe to call when no file was opened.
func New(verbose bool, logFile string) (zerolog.Logger, func() error, error) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}

	var out io.Writer = console
	closer := func() error { return nil }

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("opening log file: %w", err)
		}
		out = zerolog.MultiLevelWriter(console, f)
		closer = f.Close
	}

	log := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return log, closer, nil
}
