package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/auto-dns/notifyhealth/internal/config"
	"github.com/rs/zerolog"
)

// SetupLogger logs to stderr so the print channel keeps stdout to itself.
func SetupLogger(cfg *config.LoggingConfig) zerolog.Logger {
	return newLogger(os.Stderr, cfg)
}

func newLogger(out io.Writer, cfg *config.LoggingConfig) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}

	levelStr := strings.ToLower(cfg.Level)
	level, err := zerolog.ParseLevel(levelStr)
	if err != nil || levelStr == "" {
		level = zerolog.ErrorLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown-host"
	}

	return zerolog.New(consoleWriter).
		Level(level).
		With().
		Timestamp().
		Caller().
		Str("service", "notifyhealth").
		Str("host", hostname).
		Logger()
}
