// Package log provides structured logging for the launcher and its
// configuration store.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   zerolog.Level // initial level; zero value is debug
	Output  io.Writer     // optional writer (defaults to os.Stderr)
	Service string        // optional service name attached to every entry
}

var (
	once sync.Once
	base zerolog.Logger
)

// Configure initialises the global zerolog logger exactly once.
// Later calls are ignored; use SetLevel to change verbosity afterwards.
func Configure(cfg Config) {
	once.Do(func() {
		zerolog.SetGlobalLevel(cfg.Level)
		zerolog.TimeFieldFormat = time.RFC3339

		writer := cfg.Output
		if writer == nil {
			writer = os.Stderr
		}

		service := cfg.Service
		if service == "" {
			service = "pt-web-ui"
		}

		base = zerolog.New(writer).With().
			Timestamp().
			Str("service", service).
			Logger()
	})
}

func logger() zerolog.Logger {
	Configure(Config{Level: zerolog.InfoLevel})
	return base
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	return logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return logger().With().Str("component", component).Logger()
}

// SetLevel changes the global log level.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

// Level reports the current global log level.
func Level() zerolog.Level {
	return zerolog.GlobalLevel()
}
