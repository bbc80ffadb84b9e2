package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New initializes the application's base zerolog.Logger.
// 'devMode' switches to human-readable console output.
func New(devMode bool) zerolog.Logger {
	var logger zerolog.Logger

	if devMode {
		// Colorful, human-friendly output for local sessions
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		logger = zerolog.New(consoleWriter).With().Timestamp().Logger()
	} else {
		// Structured JSON output for anything that isn't a dev session
		logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	return logger
}
