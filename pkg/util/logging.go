package util

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is silent until RedirectLogger or SetDebugLog points it somewhere.
// The spinner owns the terminal line, so nothing else may write there by default.
var Logger zerolog.Logger

func init() {
	ResetLogger()
}

// ResetLogger restores the silent default logger.
func ResetLogger() {
	Logger = zerolog.Nop()
}

// RedirectLogger sends all subsequent log output to w.
func RedirectLogger(w io.Writer) {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).With().Timestamp().Logger()
}

// SetDebugLog writes debug logs to debug.log when enabled, and discards them otherwise.
func SetDebugLog(enabled bool) (io.Closer, error) {
	if !enabled {
		ResetLogger()
		return io.NopCloser(nil), nil
	}

	f, err := os.Create("debug.log")
	if err != nil {
		return nil, err
	}

	RedirectLogger(f)
	Logger = Logger.Level(zerolog.DebugLevel)

	return f, nil
}
