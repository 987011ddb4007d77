package logging

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New constructs a zerolog logger from the configured level and format.
// Defaults to JSON on stdout at info level when fields are empty.
func New(level, format string) zerolog.Logger {
	lvl := zerolog.InfoLevel
	if parsed, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level))); err == nil {
		lvl = parsed
	}

	var output = os.Stdout
	logger := zerolog.New(output)
	if strings.ToLower(strings.TrimSpace(format)) == "console" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339})
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano
	return logger.Level(lvl).With().Timestamp().Str("app", "item-sharing-backend").Logger()
}
