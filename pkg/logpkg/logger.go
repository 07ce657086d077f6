// Package logpkg builds the application logger.
package logpkg

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"

	"github.com/go-petr/branch-bank/pkg/configpkg"
)

// New returns a JSON logger writing to stderr at the configured level.
// In development it writes human readable lines to stdout at trace level with the caller attached.
func New(config configpkg.Config) zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	return newWithOutput(config, os.Stderr, os.Stdout)
}

func newWithOutput(config configpkg.Config, output, console io.Writer) zerolog.Logger {
	logLevel, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || config.LogLevel == "" {
		logLevel = zerolog.InfoLevel // default to INFO
	}

	log := zerolog.New(output).
		Level(logLevel).
		With().
		Timestamp().
		Logger()

	if config.Environment == "development" {
		log = log.
			Output(zerolog.ConsoleWriter{Out: console, TimeFormat: time.RFC3339}).
			Level(zerolog.TraceLevel).
			With().
			Caller().
			Logger()
	}

	if err != nil {
		log.Warn().Err(err).Str("level", config.LogLevel).Msg("unknown log level, using info")
	}

	return log
}
