// Package logger builds the zerolog loggers shared by the API server and
// chatmintctl.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName is attached to every log line.
const ServiceName = "chatmint-studio"

// New returns the server logger writing to stdout. Pretty output is meant
// for local runs; production keeps JSON with caller info.
func New(level string, pretty bool) zerolog.Logger {
	if pretty {
		return build(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}, level).Logger()
	}
	return build(os.Stdout, level).Caller().Logger()
}

// NewWithWriter returns a JSON logger writing to w.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	return build(w, level).Logger()
}

// Component scopes log to one part of the system, e.g. "audit" or "story".
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

func build(w io.Writer, level string) zerolog.Context {
	return zerolog.New(w).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("service", ServiceName)
}

// ParseLevel accepts zerolog level names plus "off" and "warning".
// Anything unrecognised falls back to info.
func ParseLevel(level string) zerolog.Level {
	switch name := strings.ToLower(strings.TrimSpace(level)); name {
	case "off":
		return zerolog.Disabled
	case "warning":
		return zerolog.WarnLevel
	case "":
		return zerolog.InfoLevel
	default:
		lvl, err := zerolog.ParseLevel(name)
		if err != nil || lvl == zerolog.NoLevel {
			return zerolog.InfoLevel
		}
		return lvl
	}
}
