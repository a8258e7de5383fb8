// Package logging builds the zerolog loggers handed to every component.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"wifidash/hal"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string
	// Human selects the console writer instead of JSON.
	Human  bool
	Writer io.Writer
}

// New returns a logger writing to opts.Writer (stderr when nil).
func New(opts Options) (zerolog.Logger, error) {
	lvl, err := ParseLevel(opts.Level)
	if err != nil {
		return zerolog.Nop(), err
	}
	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}
	if opts.Human {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(s string) (zerolog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(s))
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// ForHAL returns a logger that emits one console-formatted line per event to
// the board's log sink. Timestamps are left out; the device has no wall clock.
func ForHAL(l hal.Logger, level zerolog.Level) zerolog.Logger {
	if l == nil {
		return zerolog.Nop()
	}
	cw := zerolog.ConsoleWriter{Out: &LineWriter{L: l}, NoColor: true, PartsExclude: []string{zerolog.TimestampFieldName}}
	return zerolog.New(cw).Level(level)
}

// LineWriter adapts a hal.Logger to io.Writer. Output is split on newlines;
// a trailing partial line is held until the next write completes it.
type LineWriter struct {
	L hal.Logger

	mu   sync.Mutex
	part []byte
}

func (w *LineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.part = append(w.part, p...)
	for {
		i := bytes.IndexByte(w.part, '\n')
		if i < 0 {
			break
		}
		line := bytes.TrimRight(w.part[:i], "\r")
		w.L.WriteLineBytes(line)
		w.part = w.part[i+1:]
	}
	if len(w.part) == 0 {
		w.part = nil
	}
	return len(p), nil
}
