// Package filter narrows movie lists by the list command's flags.
package filter

import (
	"slices"
	"strconv"
	"strings"

	"github.com/agentstation/moviemap/internal/matcher"
	"github.com/agentstation/moviemap/pkg/catalogs"
)

// MovieFilter applies filters to movie lists. Zero-valued fields do not
// filter.
type MovieFilter struct {
	Title     string  // glob or regex over the title, case-insensitive
	Genre     string  // genre facet value, case-insensitive unless ExactFacets
	Director  string  // director facet value, case-insensitive unless ExactFacets
	Actor     string  // actor facet value, case-insensitive unless ExactFacets
	Year      int     // year the movie was released or running
	Type      string  // movie, series, episode
	MinRating float64 // minimum IMDb rating; unrated movies are excluded

	// ExactFacets compares Genre, Director and Actor byte for byte, as
	// facet values are, instead of ignoring case.
	ExactFacets bool
}

// Apply filters a slice of movies, keeping dataset order.
func (f *MovieFilter) Apply(movies []catalogs.Movie) ([]catalogs.Movie, error) {
	if f == nil || f.isEmpty() {
		return movies, nil
	}

	var title matcher.Matcher
	if f.Title != "" {
		m, err := matcher.New(matcher.Auto, f.Title, matcher.Options{CaseInsensitive: true})
		if err != nil {
			return nil, err
		}
		title = m
	}

	filtered := make([]catalogs.Movie, 0, len(movies))
	for i := range movies {
		if title != nil && !title.Match(movies[i].Title) {
			continue
		}
		if f.matches(&movies[i]) {
			filtered = append(filtered, movies[i])
		}
	}
	return filtered, nil
}

func (f *MovieFilter) isEmpty() bool {
	return f.Title == "" &&
		f.Genre == "" &&
		f.Director == "" &&
		f.Actor == "" &&
		f.Year == 0 &&
		f.Type == "" &&
		f.MinRating == 0
}

func (f *MovieFilter) matches(m *catalogs.Movie) bool {
	if f.Genre != "" && !f.containsFacet(m.Genres, f.Genre) {
		return false
	}
	if f.Director != "" && !f.containsFacet(m.Directors, f.Director) {
		return false
	}
	if f.Actor != "" && !f.containsFacet(m.Cast, f.Actor) {
		return false
	}
	if f.Year != 0 && !m.Years.Contains(f.Year) {
		return false
	}
	if f.Type != "" && !strings.EqualFold(m.Type, f.Type) {
		return false
	}
	if f.MinRating > 0 && !f.matchesRating(m) {
		return false
	}
	return true
}

func (f *MovieFilter) matchesRating(m *catalogs.Movie) bool {
	rating, err := strconv.ParseFloat(m.Rating, 64)
	if err != nil {
		return false
	}
	return rating >= f.MinRating
}

func (f *MovieFilter) containsFacet(values []string, want string) bool {
	if f.ExactFacets {
		return slices.Contains(values, want)
	}
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.EqualFold(v, want)
	})
}
