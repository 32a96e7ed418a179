// Package app provides the application context and dependency management
// for the moviemap CLI. It centralizes configuration, logging and the
// lifecycle of the catalog client.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap"
	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/pkg/errors"
)

// Ensure App implements appcontext.Interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// App represents the moviemap application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Client instance (lazy-initialized, singleton)
	mu     sync.RWMutex
	client moviemap.Client
}

// New creates a new App instance with the given version information.
// Configuration is loaded from the environment and config file, then
// functional options are applied.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Quiet reports whether informational stderr output is suppressed.
func (a *App) Quiet() bool {
	return a.config.Quiet
}

// Client returns the catalog client, creating it lazily if needed.
// The dataset is loaded once per process; a failed load still yields a
// client, which reports the failure through Ready and Err.
func (a *App) Client() (moviemap.Client, error) {
	a.mu.RLock()
	if a.client != nil {
		c := a.client
		a.mu.RUnlock()
		return c, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.client != nil {
		return a.client, nil
	}

	c, err := moviemap.New(a.clientOptions()...)
	if err != nil {
		return nil, errors.WrapResource("create", "client", "", err)
	}

	a.client = c
	return c, nil
}

// Shutdown releases application resources.
func (a *App) Shutdown(ctx context.Context) error {
	a.mu.RLock()
	c := a.client
	a.mu.RUnlock()

	if c != nil {
		a.logger.Debug().Bool("ready", c.Ready()).Msg("Shutting down")
	}
	return ctx.Err()
}

// clientOptions constructs client options from the app configuration.
func (a *App) clientOptions() []moviemap.Option {
	opts := []moviemap.Option{
		moviemap.WithLogger(a.logger),
	}
	if a.config.Dataset != "" {
		opts = append(opts, moviemap.WithDatasetPath(a.config.Dataset))
	}
	if a.config.FacetCacheTTL > 0 {
		opts = append(opts, moviemap.WithFacetCacheTTL(a.config.FacetCacheTTL))
	}
	return opts
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithClient sets a custom client (useful for testing).
func WithClient(c moviemap.Client) Option {
	return func(a *App) error {
		a.client = c
		return nil
	}
}
