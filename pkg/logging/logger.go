// Package logging provides structured logging for moviemap using zerolog.
// Console output is used when the log output is a terminal, JSON otherwise.
//
// Example usage:
//
//	log := logging.Default()
//	log.Info().Int("movies", cat.Len()).Msg("Catalog loaded")
//
//	ctx := logging.WithCategory(context.Background(), "genre")
//	logging.Ctx(ctx).Debug().Msg("Extracting facets")
package logging

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

var defaultLogger = ConfigFromEnv().Build()

// Default returns the process-wide logger.
func Default() *zerolog.Logger {
	return &defaultLogger
}

// SetDefault replaces the process-wide logger.
func SetDefault(logger zerolog.Logger) {
	defaultLogger = logger
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
