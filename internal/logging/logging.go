// Package logging provides zerolog setup shared across replykit.
package logging

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	root   zerolog.Logger
	inited bool
)

// Setup configures the root logger. level is one of zerolog's level
// strings ("debug", "info", ...); unknown values fall back to "info".
// Safe to call more than once; the last call wins.
func Setup(level string, out io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	if out == nil {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}
	root = zerolog.New(out).Level(parsed).With().Timestamp().Logger()
	inited = true
}

// Component returns a logger tagged with a component name. If Setup
// has not been called, logging is disabled rather than noisy.
func Component(name string) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !inited {
		return zerolog.Nop()
	}
	return root.With().Str("component", name).Logger()
}
