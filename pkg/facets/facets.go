// Package facets derives browsable category values from movie records.
//
// Extraction is a pure function over a catalog snapshot: the same movies and
// category always yield the same sorted, duplicate-free list.
package facets

import (
	"slices"
	"strconv"

	"github.com/agentstation/moviemap/pkg/catalogs"
)

// Extract returns the distinct facet values of category across movies,
// sorted by byte order.
//
// Year facets expand every valid range into each year it covers; single
// years contribute themselves and unparseable years contribute nothing.
// Genre, Director and Actor facets are the union of the tokenized list
// fields. AllMovies and unknown categories yield an empty list.
//
// Years are compared as strings, so a year outside the four-digit range
// does not sort numerically.
func Extract(movies []catalogs.Movie, category Category) []string {
	if category == AllMovies || !category.Valid() {
		return []string{}
	}

	seen := make(map[string]struct{})
	add := func(values ...string) {
		for _, v := range values {
			seen[v] = struct{}{}
		}
	}

	for i := range movies {
		m := &movies[i]
		switch category {
		case Year:
			for _, y := range years(m) {
				add(strconv.Itoa(y))
			}
		case Genre:
			add(tokens(m.Genres, m.Genre)...)
		case Director:
			add(tokens(m.Directors, m.Director)...)
		case Actor:
			add(tokens(m.Cast, m.Actors)...)
		}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	slices.Sort(values)
	return values
}

// years uses the span parsed at load time, parsing on demand for records
// built outside a catalog.
func years(m *catalogs.Movie) []int {
	if m.Years.Kind == catalogs.YearUnknown && m.Year != "" {
		return catalogs.ParseYear(m.Year).Years()
	}
	return m.Years.Years()
}

func tokens(derived []string, raw string) []string {
	if derived == nil && raw != "" {
		return catalogs.SplitList(raw)
	}
	return derived
}
