package facets

import (
	"strings"

	"github.com/agentstation/moviemap/pkg/errors"
)

// Category selects which facet dimension to extract.
type Category int

// Categories in the order they are offered for browsing.
const (
	Year Category = iota
	Genre
	Director
	Actor
	// AllMovies browses the whole catalog and has no facet values.
	AllMovies
)

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case Year:
		return "Year"
	case Genre:
		return "Genre"
	case Director:
		return "Directors"
	case Actor:
		return "Actors"
	case AllMovies:
		return "All Movies"
	default:
		return "Unknown"
	}
}

// Key returns the lowercase identifier used on the command line and as a cache key.
func (c Category) Key() string {
	switch c {
	case Year:
		return "year"
	case Genre:
		return "genre"
	case Director:
		return "director"
	case Actor:
		return "actor"
	case AllMovies:
		return "all"
	default:
		return ""
	}
}

// Valid reports whether c is one of the defined categories.
func (c Category) Valid() bool {
	return c >= Year && c <= AllMovies
}

// Categories returns every category in browsing order.
func Categories() []Category {
	return []Category{Year, Genre, Director, Actor, AllMovies}
}

// ParseCategory resolves a category from its key, display name or plural form,
// ignoring case.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "years":
		return Year, nil
	case "genre", "genres":
		return Genre, nil
	case "director", "directors":
		return Director, nil
	case "actor", "actors", "cast":
		return Actor, nil
	case "all", "all movies", "all-movies", "movies":
		return AllMovies, nil
	default:
		return 0, errors.NewValidationError("category", s,
			"unknown category (expected year, genre, director, actor or all)")
	}
}
