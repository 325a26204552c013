package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// newLogger creates a structured logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogger returns a logger for the given command. Full-screen terminal
// play must not write to the terminal, so without --log-file it discards
// unless toStderr is set. The returned close func is never nil.
func openLogger(prefix string, toStderr bool) (*log.Logger, func(), error) {
	if flagLogFile == "" {
		w := io.Discard
		if toStderr {
			w = os.Stderr
		}
		logger, err := newLogger(w, prefix)
		return logger, func() {}, err
	}

	if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
		return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger, err := newLogger(f, prefix)
	if err != nil {
		f.Close()
		return nil, nil, err
	}
	return logger, func() { f.Close() }, nil
}
