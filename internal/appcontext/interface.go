// Package appcontext provides the shared application context interface
// used by all commands. Commands depend on this interface rather than the
// concrete app so they can be tested with Mock.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap"
)

// Interface defines the application context interface that commands need.
// The App struct from cmd/moviemap/app implements it.
type Interface interface {
	// Client returns the movie catalog client, creating it lazily if needed.
	// The client may not be ready; commands check Ready or Catalog.
	Client() (moviemap.Client, error)

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (json, yaml, table, etc).
	OutputFormat() string

	// Quiet reports whether informational messages on stderr are suppressed.
	Quiet() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
