package moviemap

import (
	"io/fs"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap/pkg/catalogs"
	"github.com/agentstation/moviemap/pkg/constants"
	"github.com/agentstation/moviemap/pkg/errors"
)

// LoadFunc produces a catalog snapshot. The default reads the embedded dataset.
type LoadFunc func() (*catalogs.Catalog, error)

// options holds the client configuration.
type options struct {
	loader         LoadFunc
	initialCatalog *catalogs.Catalog
	logger         *zerolog.Logger
	cacheTTL       time.Duration
	cacheCleanup   time.Duration
}

// defaults returns the default client options.
func defaults() *options {
	return &options{
		loader:       catalogs.Load,
		cacheTTL:     constants.CacheTTL,
		cacheCleanup: constants.CacheCleanupInterval,
	}
}

// apply applies the given options, stopping at the first invalid one.
func (o *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Option is a function that configures a Client.
type Option func(*options) error

// WithDatasetPath reads the dataset from a JSON or YAML file on disk.
// An empty path keeps the embedded dataset.
func WithDatasetPath(path string) Option {
	return func(o *options) error {
		if path == "" {
			return nil
		}
		o.loader = func() (*catalogs.Catalog, error) {
			return catalogs.LoadFile(path)
		}
		return nil
	}
}

// WithDatasetFS reads the dataset from a file in fsys.
func WithDatasetFS(fsys fs.FS, name string) Option {
	return func(o *options) error {
		if fsys == nil {
			return errors.NewValidationError("fsys", nil, "filesystem cannot be nil")
		}
		o.loader = func() (*catalogs.Catalog, error) {
			return catalogs.LoadFS(fsys, name)
		}
		return nil
	}
}

// WithLoader replaces the loader entirely.
func WithLoader(fn LoadFunc) Option {
	return func(o *options) error {
		if fn == nil {
			return errors.NewValidationError("loader", nil, "loader cannot be nil")
		}
		o.loader = fn
		return nil
	}
}

// WithInitialCatalog starts the client from an already loaded catalog
// instead of running the loader. Reload still uses the loader.
func WithInitialCatalog(cat *catalogs.Catalog) Option {
	return func(o *options) error {
		o.initialCatalog = cat
		return nil
	}
}

// WithLogger sets the logger used for load and query events.
func WithLogger(logger *zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// WithFacetCacheTTL sets how long memoized facet lists are kept.
func WithFacetCacheTTL(ttl time.Duration) Option {
	return func(o *options) error {
		if ttl <= 0 {
			return errors.NewValidationError("ttl", ttl, "facet cache TTL must be positive")
		}
		o.cacheTTL = ttl
		return nil
	}
}
