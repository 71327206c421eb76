package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Leveled logger used across the service, backed by zerolog.
// Init is called once at startup; the helpers are safe to use before
// Init (they log at the default Info level).

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "2006-01-02T15:04:05Z07:00"}).
	With().Timestamp().Logger()

// Init sets the global log level (case-insensitive: debug, info, warn, error, fatal).
// Unknown or empty values fall back to Info.
func Init(level string) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn", "warning":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// LevelString returns the current global level as text.
func LevelString() string {
	return zerolog.GlobalLevel().String()
}

func Debugf(format string, v ...interface{}) { log.Debug().Msgf(format, v...) }
func Infof(format string, v ...interface{})  { log.Info().Msgf(format, v...) }
func Warnf(format string, v ...interface{})  { log.Warn().Msgf(format, v...) }
func Errorf(format string, v ...interface{}) { log.Error().Msgf(format, v...) }

// Fatalf logs the message and exits with status 1.
func Fatalf(format string, v ...interface{}) { log.Fatal().Msgf(format, v...) }

// Single-string helpers kept for call sites with nothing to format.
func Debug(msg string) { log.Debug().Msg(msg) }
func Info(msg string)  { log.Info().Msg(msg) }
func Warn(msg string)  { log.Warn().Msg(msg) }
func Error(msg string) { log.Error().Msg(msg) }
