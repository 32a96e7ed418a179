// Package search filters movie records by a free-text query.
//
// A movie matches when its title, genre, actors or director contain the
// query, ignoring case, or when its year matches. Year matching depends on
// the shape of the Year field:
//
//   - a range "1990–2000" matches when the query is an integer inside it;
//   - a single year matches when its decimal form contains the query, so
//     "199" matches "1995".
//
// Search is a pure, stable filter: results keep dataset order.
package search

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/agentstation/moviemap/pkg/catalogs"
)

// Search returns the movies matching query, in their original order.
// An empty query matches every movie.
func Search(movies []catalogs.Movie, query string) []catalogs.Movie {
	m := newMatcher(query)

	results := make([]catalogs.Movie, 0, len(movies))
	for i := range movies {
		if m.match(&movies[i]) {
			results = append(results, movies[i])
		}
	}
	return results
}

// Matches reports whether a single movie matches query.
func Matches(movie *catalogs.Movie, query string) bool {
	if movie == nil {
		return false
	}
	return newMatcher(query).match(movie)
}

// matcher holds a query prepared for repeated comparison. A Caser keeps
// state between calls, so each matcher owns its own.
type matcher struct {
	raw    string
	folded string
	caser  cases.Caser
}

func newMatcher(query string) *matcher {
	m := &matcher{raw: query, caser: cases.Fold()}
	m.folded = m.fold(query)
	return m
}

// fold maps s to a canonical form for case-insensitive comparison.
func (m *matcher) fold(s string) string {
	return m.caser.String(norm.NFC.String(s))
}

func (m *matcher) contains(field string) bool {
	return strings.Contains(m.fold(field), m.folded)
}

func (m *matcher) match(movie *catalogs.Movie) bool {
	return m.contains(movie.Title) ||
		m.contains(movie.Genre) ||
		m.contains(movie.Actors) ||
		m.contains(movie.Director) ||
		m.matchYear(movie)
}

// matchYear applies the year clause. Ranges use integer membership and
// single years use substring containment on their decimal form; a year
// that did not parse never matches.
func (m *matcher) matchYear(movie *catalogs.Movie) bool {
	span := movie.Years
	if span.Kind == catalogs.YearUnknown {
		span = catalogs.ParseYear(movie.Year)
	}

	switch span.Kind {
	case catalogs.YearRange:
		q, err := strconv.Atoi(m.raw)
		if err != nil {
			return false
		}
		return span.Contains(q)
	case catalogs.YearSingle:
		return strings.Contains(strconv.Itoa(span.Start), m.raw)
	default:
		return false
	}
}
