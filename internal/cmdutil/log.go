// internal/cmdutil/log.go
package cmdutil

import (
	"io"

	"github.com/rs/zerolog"
)

// NewLogger returns the stderr diagnostics logger. Records go to stdout and
// never through here. Default level is warn; verbose lowers it to debug,
// quiet raises it so only errors escape.
func NewLogger(w io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	switch {
	case verbose:
		level = zerolog.DebugLevel
	case quiet:
		level = zerolog.ErrorLevel
	}
	cw := zerolog.ConsoleWriter{Out: w, NoColor: true}
	return zerolog.New(cw).Level(level).With().Timestamp().Logger()
}
