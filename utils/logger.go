package utils

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process-wide structured logger. Defaults to JSON at info level;
// LOG_LEVEL and LOG_FORMAT=console override from the environment.
var Log = newLogger()

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL")))); err == nil && parsed != zerolog.NoLevel {
		level = parsed
	}

	output := zerolog.New(os.Stdout)
	if strings.EqualFold(os.Getenv("LOG_FORMAT"), "console") {
		output = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	}

	return output.Level(level).With().Timestamp().Logger()
}
