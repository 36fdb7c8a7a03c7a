package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Config selects the minimum level and the output format
type Config struct {
	Level   string
	Console bool
}

// New creates a logger writing to w (stderr when nil)
func New(cfg Config, w io.Writer) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}

	zerolog.TimeFieldFormat = consoleTimeFormat
	zerolog.ErrorFieldName = "err"

	out := w
	if cfg.Console {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: consoleTimeFormat}
	}

	return zerolog.New(out).
		Level(ParseLevel(cfg.Level, zerolog.InfoLevel)).
		With().
		Timestamp().
		Logger()
}

// Nop returns a logger that never writes anything
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

// ParseLevel maps a level name onto zerolog, falling back to def
func ParseLevel(s string, def zerolog.Level) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return def
	}
}

// Levels lists the names accepted by ParseLevel, lowest first
func Levels() []string {
	return []string{"trace", "debug", "info", "warn", "error"}
}
