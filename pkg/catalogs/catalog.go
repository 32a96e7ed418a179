// Package catalogs provides the movie catalog: the record type, the parsed
// year and list fields, and the loader that decodes the bundled dataset into
// an immutable snapshot.
//
// A Catalog is never modified after it is built. Every accessor returns
// copies, so a snapshot can be shared between goroutines without locking.
//
// Example usage:
//
//	// Load the dataset compiled into the binary
//	catalog, err := catalogs.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for _, movie := range catalog.Movies() {
//	    fmt.Printf("%s (%s)\n", movie.Title, movie.Year)
//	}
//
//	// Load a dataset from disk instead
//	catalog, err = catalogs.LoadFile("./movies.yaml")
package catalogs

import (
	"slices"
	"time"

	"github.com/agentstation/moviemap/pkg/errors"
)

// Catalog is an immutable, ordered snapshot of movie records.
type Catalog struct {
	movies   []Movie
	index    map[string]int
	source   string
	loadedAt time.Time
}

// New builds a catalog from records in dataset order.
// Derived fields are computed here. Records with an empty ID or Year, or a
// repeated ID, are rejected with a ValidationError.
func New(movies []Movie, opts ...Option) (*Catalog, error) {
	options := catalogDefaults().apply(opts...)

	cat := &Catalog{
		movies:   make([]Movie, 0, len(movies)),
		index:    make(map[string]int, len(movies)),
		source:   options.source,
		loadedAt: options.loadedAt,
	}

	for i, m := range movies {
		if m.ID == "" {
			return nil, errors.NewValidationError("imdbID", i, "record has no imdbID")
		}
		if m.Year == "" {
			return nil, errors.NewValidationError("Year", m.ID, "record has no Year")
		}
		if _, exists := cat.index[m.ID]; exists {
			return nil, errors.NewValidationError("imdbID", m.ID, "duplicate imdbID "+m.ID)
		}

		m = m.Clone()
		m.derive()
		cat.index[m.ID] = len(cat.movies)
		cat.movies = append(cat.movies, m)
	}

	return cat, nil
}

// Empty returns a catalog with no records.
// It stands in for the catalog of a session whose load failed.
func Empty() *Catalog {
	return &Catalog{index: map[string]int{}}
}

// Movies returns a copy of all records in dataset order.
func (c *Catalog) Movies() []Movie {
	if c == nil {
		return nil
	}
	movies := make([]Movie, len(c.movies))
	for i, m := range c.movies {
		movies[i] = m.Clone()
	}
	return movies
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.movies)
}

// Get returns a movie by imdbID.
func (c *Catalog) Get(id string) (Movie, error) {
	if c != nil {
		if i, ok := c.index[id]; ok {
			return c.movies[i].Clone(), nil
		}
	}
	return Movie{}, errors.NewNotFoundError("movie", id)
}

// Exists checks if a movie exists without returning it.
func (c *Catalog) Exists(id string) bool {
	if c == nil {
		return false
	}
	_, ok := c.index[id]
	return ok
}

// IDs returns every imdbID in dataset order.
func (c *Catalog) IDs() []string {
	if c == nil {
		return nil
	}
	ids := make([]string, len(c.movies))
	for i, m := range c.movies {
		ids[i] = m.ID
	}
	return ids
}

// Source describes where the records were read from, e.g. "embedded:movies.json".
func (c *Catalog) Source() string {
	if c == nil {
		return ""
	}
	return c.source
}

// LoadedAt returns when the catalog was built.
func (c *Catalog) LoadedAt() time.Time {
	if c == nil {
		return time.Time{}
	}
	return c.loadedAt
}

// Equal reports whether two catalogs hold the same records in the same order.
func (c *Catalog) Equal(other *Catalog) bool {
	return slices.EqualFunc(c.records(), other.records(), func(a, b Movie) bool {
		return a.ID == b.ID && a.Title == b.Title && a.Year == b.Year &&
			a.Genre == b.Genre && a.Director == b.Director && a.Actors == b.Actors &&
			a.Rating == b.Rating && slices.Equal(a.Ratings, b.Ratings)
	})
}

func (c *Catalog) records() []Movie {
	if c == nil {
		return nil
	}
	return c.movies
}
