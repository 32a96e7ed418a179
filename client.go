// Package moviemap provides the main entry point for the movie catalog.
// It loads the bundled dataset once, then serves browsing facets and
// search results over the loaded snapshot.
//
// The client wraps the catalog packages with:
//   - a one-shot load with a ready flag and an explicit Reload
//   - memoized facet lists per category
//   - event hooks for movies added, updated or removed on reload
//
// Example usage:
//
//	mm, err := moviemap.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !mm.Ready() {
//	    log.Fatal(mm.Err())
//	}
//
//	// Browse by category
//	for _, director := range mm.Facets(facets.Director) {
//	    fmt.Println(director)
//	}
//
//	// Search titles, genres, cast, directors and years
//	for _, movie := range mm.Search("batman") {
//	    fmt.Printf("%s (%s)\n", movie.Title, movie.Year)
//	}
//
//	// Read a dataset from disk instead of the embedded one
//	mm, err = moviemap.New(moviemap.WithDatasetPath("./movies.yaml"))
package moviemap

import (
	"strconv"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/agentstation/moviemap/internal/cache"
	"github.com/agentstation/moviemap/pkg/catalogs"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/facets"
	"github.com/agentstation/moviemap/pkg/logging"
	"github.com/agentstation/moviemap/pkg/search"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Catalog provides access to the loaded snapshot.
type Catalog interface {
	// Catalog returns the loaded snapshot, or an error when no load succeeded
	Catalog() (*catalogs.Catalog, error)

	// Ready reports whether the last load succeeded
	Ready() bool

	// Err returns the error of the last failed load, or nil
	Err() error
}

// Browser serves read-only views of the loaded snapshot.
type Browser interface {
	// Movies returns every movie in dataset order
	Movies() []catalogs.Movie

	// Movie returns one movie by imdbID
	Movie(id string) (catalogs.Movie, error)

	// Facets returns the sorted facet values of a category
	Facets(category facets.Category) []string

	// Search returns the movies matching a query in dataset order
	Search(query string) []catalogs.Movie
}

// Reloader re-runs the loader.
type Reloader interface {
	Reload() error
}

// Client manages the movie catalog for the lifetime of a process.
type Client interface {
	Catalog
	Browser
	Reloader
	Hooks
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options

	// mu guards the snapshot handoff between the loader and readers
	mu      sync.RWMutex
	catalog *catalogs.Catalog
	gen     uint64 // bumped on every handoff; scopes facet cache keys
	ready   bool
	loadErr error

	facets *cache.Cache
	hooks  *hooks
}

// New creates a client and runs the initial load.
//
// A failed load does not fail New: the client starts with an empty catalog,
// Ready reports false and Err returns the cause. Only invalid options
// return an error.
func New(opts ...Option) (Client, error) {
	o, err := defaults().apply(opts...)
	if err != nil {
		return nil, errors.WrapResource("configure", "client", "", err)
	}

	c := &client{
		options: o,
		catalog: catalogs.Empty(),
		facets:  cache.New(o.cacheTTL, o.cacheCleanup),
		hooks:   newHooks(),
	}

	if o.initialCatalog != nil {
		c.setCatalog(o.initialCatalog)
		return c, nil
	}

	_ = c.Reload()
	return c, nil
}

// Catalog returns the loaded snapshot. The snapshot is immutable and safe to
// share.
func (c *client) Catalog() (*catalogs.Catalog, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.ready {
		if c.loadErr != nil {
			return nil, errors.WrapResource("load", "catalog", "", c.loadErr)
		}
		return nil, errors.ErrNotLoaded
	}
	return c.catalog, nil
}

// Ready reports whether the last load succeeded.
func (c *client) Ready() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.ready
}

// Err returns the error of the last failed load.
func (c *client) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loadErr
}

// Reload runs the configured loader. On success the new snapshot replaces
// the old one, memoized facets are dropped and change hooks fire. On
// failure the client is left not ready with an empty catalog.
func (c *client) Reload() error {
	log := c.logger()
	start := time.Now()

	cat, err := c.options.loader()
	if err != nil {
		c.mu.Lock()
		c.catalog = catalogs.Empty()
		c.gen++
		c.ready = false
		c.loadErr = err
		c.mu.Unlock()
		c.facets.Clear()

		log.Error().Err(err).
			Bool("not_found", errors.IsNotFound(err)).
			Bool("decode_error", errors.IsDecodeError(err)).
			Msg("Movie catalog failed to load")
		return err
	}

	old := c.setCatalog(cat)

	log.Info().
		Str("source", cat.Source()).
		Int("movies", cat.Len()).
		Dur("duration", time.Since(start)).
		Msg("Movie catalog loaded")

	c.hooks.triggerCatalogUpdate(old, cat)
	return nil
}

// setCatalog installs a loaded snapshot and returns the previous one.
func (c *client) setCatalog(cat *catalogs.Catalog) *catalogs.Catalog {
	c.mu.Lock()
	old := c.catalog
	c.catalog = cat
	c.gen++
	c.ready = true
	c.loadErr = nil
	c.mu.Unlock()

	stats := c.facets.GetStats()
	c.facets.Clear()
	c.logger().Debug().
		Int("entries", stats.ItemCount).
		Int64("hits", stats.Hits).
		Int64("misses", stats.Misses).
		Msg("Facet cache cleared")
	return old
}

// snapshot returns the current catalog under the read lock.
func (c *client) snapshot() *catalogs.Catalog {
	cat, _ := c.versioned()
	return cat
}

// versioned returns the current catalog and its generation.
func (c *client) versioned() (*catalogs.Catalog, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.catalog, c.gen
}

// Movies returns every movie in dataset order; empty when not ready.
func (c *client) Movies() []catalogs.Movie {
	movies := c.snapshot().Movies()
	if movies == nil {
		return []catalogs.Movie{}
	}
	return movies
}

// Movie returns one movie by imdbID.
func (c *client) Movie(id string) (catalogs.Movie, error) {
	return c.snapshot().Get(id)
}

// Facets returns the facet values of category, computed once per snapshot.
func (c *client) Facets(category facets.Category) []string {
	cat, gen := c.versioned()
	key := strconv.FormatUint(gen, 10) + ":" + category.Key()
	values := c.facets.StringsOrCompute(key, func() []string {
		return facets.Extract(cat.Movies(), category)
	})

	c.logger().Debug().
		Str("category", category.String()).
		Int("values", len(values)).
		Msg("Facets extracted")
	return values
}

// Search returns the movies matching query. An empty query is no filter.
func (c *client) Search(query string) []catalogs.Movie {
	movies := c.Movies()
	if query == "" {
		return movies
	}

	results := search.Search(movies, query)
	c.logger().Debug().
		Str("query", query).
		Int("results", len(results)).
		Msg("Search completed")
	return results
}

func (c *client) logger() *zerolog.Logger {
	if c.options.logger != nil {
		return c.options.logger
	}
	return logging.Default()
}
