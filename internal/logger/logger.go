// SPDX-License-Identifier: Unlicense OR MIT

// Package logger builds the zerolog loggers used for driver
// diagnostics.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var pid = os.Getpid()

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

// New returns a JSON logger writing to stderr.
func New(debug bool) *zerolog.Logger {
	return NewWriter(os.Stderr, debug)
}

// NewWriter returns a JSON logger writing to w.
func NewWriter(w io.Writer, debug bool) *zerolog.Logger {
	l := zerolog.New(w).Level(level(debug)).With().Timestamp().Int("pid", pid).Logger()
	return &l
}

// NewConsole returns a human readable logger writing to stderr. Every
// line carries tag.
func NewConsole(debug bool, tag string, noColor bool) *zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05.0000",
		NoColor:    noColor,
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			"pid",
			zerolog.LevelFieldName,
			"s",
			zerolog.MessageFieldName,
		},
		FieldsExclude: []string{"s", "pid"},
	}
	zerolog.TimeFieldFormat = time.RFC3339Nano
	l := zerolog.New(output).Level(level(debug)).With().
		Str("pid", fmt.Sprintf("%4x", pid)).
		Str("s", tag).
		Timestamp().Logger()
	return &l
}

// Nop returns a logger that discards everything.
func Nop() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}
