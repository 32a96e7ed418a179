package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/moviemap/pkg/catalogs"
)

func testCatalog(t *testing.T) []catalogs.Movie {
	t.Helper()
	cat, err := catalogs.New([]catalogs.Movie{
		{ID: "tt1", Title: "Batman Begins", Year: "2005", Genre: "Action, Crime", Director: "Christopher Nolan", Actors: "Christian Bale, Michael Caine"},
		{ID: "tt2", Title: "Long Series", Year: "1990–2000", Genre: "Comedy", Director: "N/A", Actors: "Ann Actor"},
		{ID: "tt3", Title: "Nineties Film", Year: "1995", Genre: "Drama", Director: "Some One", Actors: "Bob Actor"},
		{ID: "tt4", Title: "Short Series", Year: "1990–1993", Genre: "Drama", Director: "N/A", Actors: "Cy Actor"},
		{ID: "tt5", Title: "BATMAN", Year: "1989", Genre: "Action", Director: "Tim Burton", Actors: "Michael Keaton"},
		{ID: "tt6", Title: "Amélie", Year: "2001", Genre: "Comedy, Romance", Director: "Jean-Pierre Jeunet", Actors: "Audrey Tautou"},
		{ID: "tt7", Title: "Lost Record", Year: "N/A", Genre: "Mystery", Director: "Unknown", Actors: "Nobody"},
	})
	require.NoError(t, err)
	return cat.Movies()
}

func ids(movies []catalogs.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func TestSearch(t *testing.T) {
	movies := testCatalog(t)

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{"title any case", "batman", []string{"tt1", "tt5"}},
		{"upper case query", "BATMAN BEGINS", []string{"tt1"}},
		{"genre", "comedy", []string{"tt2", "tt6"}},
		{"actor", "caine", []string{"tt1"}},
		{"director", "nolan", []string{"tt1"}},
		{"hyphenated director", "jean-pierre", []string{"tt6"}},
		{"accented title", "AMÉLIE", []string{"tt6"}},
		{"year inside range", "1995", []string{"tt2", "tt3"}},
		{"year range boundary", "1990", []string{"tt2", "tt4"}},
		{"year prefix matches single years only", "199", []string{"tt3"}},
		{"year substring of single year", "89", []string{"tt5"}},
		{"unparseable year still matches title", "lost", []string{"tt7"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Search(movies, tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestSearchYearRange(t *testing.T) {
	movies := testCatalog(t)

	long := movies[1]
	short := movies[3]
	require.Equal(t, "1990–2000", long.Year)
	require.Equal(t, "1990–1993", short.Year)

	assert.True(t, Matches(&long, "1995"))
	assert.False(t, Matches(&short, "1995"))
	assert.False(t, Matches(&long, " 1995"), "range clause requires an exact integer")
	assert.False(t, Matches(&long, "19"), "ranges do not match partial years")
}

func TestSearchReversedRangeNeverMatchesYear(t *testing.T) {
	movies := []catalogs.Movie{{ID: "tt1", Title: "Backwards", Year: "2000–1990"}}

	assert.Empty(t, Search(movies, "1995"))
	assert.Len(t, Search(movies, "backwards"), 1)
}

func TestSearchEmptyQuery(t *testing.T) {
	movies := testCatalog(t)
	assert.Equal(t, ids(movies), ids(Search(movies, "")))
}

func TestSearchProperties(t *testing.T) {
	movies := testCatalog(t)

	for _, query := range []string{"batman", "1995", "action", "a", ""} {
		t.Run(query, func(t *testing.T) {
			first := Search(movies, query)

			// subset, in dataset order
			pos := 0
			for _, m := range first {
				for pos < len(movies) && movies[pos].ID != m.ID {
					pos++
				}
				require.Less(t, pos, len(movies), "result %s out of order or not in input", m.ID)
			}

			// idempotent
			assert.Equal(t, ids(first), ids(Search(first, query)))
		})
	}
}

func TestSearchNil(t *testing.T) {
	assert.Empty(t, Search(nil, "batman"))
	assert.False(t, Matches(nil, "batman"))
}

func TestSearchBundledDataset(t *testing.T) {
	cat, err := catalogs.Load()
	require.NoError(t, err)
	movies := cat.Movies()

	assert.Equal(t, []string{"tt0372784", "tt0096895"}, ids(Search(movies, "batman")))

	// Friends runs 1994–2004, Pulp Fiction is 1994
	got := ids(Search(movies, "1994"))
	assert.Contains(t, got, "tt0108778")
	assert.Contains(t, got, "tt0110912")
}
