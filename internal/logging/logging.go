// Package logging configures the global zerolog logger for all binaries.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure sets up the global logger to write to w.
//
// Output is human readable if format is "human", or if format is empty
// and development is true. Otherwise, JSON is written.
func Configure(w io.Writer, format string, level zerolog.Level, development bool) {
	output := w
	if (format == "" && development) || format == "human" {
		output = zerolog.ConsoleWriter{Out: w}
	}

	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}
