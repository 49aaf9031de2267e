// Package log provides the structured logger used across slearn.
//
// Logging is disabled by default so the library stays silent inside caller
// processes. Set the SLEARN_LOG environment variable to a zerolog level name
// ("debug", "info", ...) to enable output, or install a custom logger with
// SetLogger.
package log

import (
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/slearn/slearn/pkg/errors"
)

// Structured field names shared by all model log events.
const (
	ModelKey   = "model"
	OpKey      = "op"
	RowsKey    = "rows"
	ColsKey    = "cols"
	PenaltyKey = "penalty"
)

var (
	mu     sync.Mutex
	base   zerolog.Logger
	loaded bool
)

// Logger returns the library-wide logger, building it on first use.
func Logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !loaded {
		base = newLogger()
		installWarnSink(base)
		loaded = true
	}
	return base
}

// SetLogger replaces the library-wide logger. Warnings raised through
// pkg/errors are routed to the new logger as well.
func SetLogger(l zerolog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	base = l
	installWarnSink(l)
	loaded = true
}

// With returns a logger carrying the model name as a structured field.
func With(model string) zerolog.Logger {
	return Logger().With().Str(ModelKey, model).Logger()
}

func newLogger() zerolog.Logger {
	level := zerolog.Disabled
	if s := os.Getenv("SLEARN_LOG"); s != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(s)); err == nil {
			level = parsed
		}
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

func installWarnSink(l zerolog.Logger) {
	errors.SetZerologWarnFunc(func(w error) {
		event := l.Warn()
		if marshaler, ok := w.(zerolog.LogObjectMarshaler); ok {
			event = event.EmbedObject(marshaler)
		}
		event.Msg(w.Error())
	})
}
