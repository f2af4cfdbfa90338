package config

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a zerolog.Logger configured from the environment name and level.
// Production uses JSON on stdout; otherwise a human-readable console writer.
// Unknown levels fall back to info.
func NewLogger(environment, level string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if environment != "production" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05.000"}
	}
	return newLogger(out, environment, level)
}

func newLogger(out io.Writer, environment, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "indywinners").
		Str("env", environment).
		Logger()
}
