// Package logging configures the zerolog logger used by budgetcut.
// Diagnostics go to stderr so stdout stays clean for results.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Level picks the log level for the CLI verbosity flags.
func Level(verbose, quiet bool) zerolog.Level {
	switch {
	case quiet:
		return zerolog.Disabled
	case verbose:
		return zerolog.DebugLevel
	default:
		return zerolog.WarnLevel
	}
}

// Setup points the global logger at w with a console writer.
// A nil w means stderr.
func Setup(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w)}).
		Level(level).
		With().
		Timestamp().
		Logger()
	log.Logger = logger
	return logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
