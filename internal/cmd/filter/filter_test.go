package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/moviemap/pkg/catalogs"
	"github.com/agentstation/moviemap/pkg/errors"
)

func bundled(t *testing.T) []catalogs.Movie {
	t.Helper()
	cat, err := catalogs.Load()
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

func TestMovieFilterApply(t *testing.T) {
	movies := bundled(t)

	tests := []struct {
		name   string
		filter *MovieFilter
		want   []string
	}{
		{"title glob", &MovieFilter{Title: "batman*"}, []string{"tt0372784", "tt0096895"}},
		{"title regex", &MovieFilter{Title: "^the (dark|matrix)"}, []string{"tt0468569", "tt0133093"}},
		{"director", &MovieFilter{Director: "christopher nolan"}, []string{"tt0372784", "tt0468569", "tt1375666"}},
		{"director and actor", &MovieFilter{Director: "Christopher Nolan", Actor: "Christian Bale"}, []string{"tt0372784", "tt0468569"}},
		{"year inside series run", &MovieFilter{Year: 1994}, []string{"tt0108778", "tt0110912"}},
		{"type", &MovieFilter{Type: "series"}, []string{"tt0903747", "tt0944947", "tt0108778", "tt0386676"}},
		{"no match", &MovieFilter{Genre: "Western"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.filter.Apply(movies)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, ids(got)); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMovieFilterEmpty(t *testing.T) {
	movies := bundled(t)

	got, err := (*MovieFilter)(nil).Apply(movies)
	require.NoError(t, err)
	assert.Len(t, got, len(movies))

	got, err = (&MovieFilter{}).Apply(movies)
	require.NoError(t, err)
	assert.Len(t, got, len(movies))
}

func TestMovieFilterMinRating(t *testing.T) {
	movies := []catalogs.Movie{
		{ID: "tt1", Title: "High", Rating: "9.1"},
		{ID: "tt2", Title: "Low", Rating: "6.0"},
		{ID: "tt3", Title: "Unrated", Rating: "N/A"},
	}

	got, err := (&MovieFilter{MinRating: 8}).Apply(movies)
	require.NoError(t, err)
	assert.Equal(t, []string{"tt1"}, ids(got))
}

func TestMovieFilterInvalidPattern(t *testing.T) {
	_, err := (&MovieFilter{Title: "[unclosed"}).Apply(bundled(t))
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestMovieFilterExactFacets(t *testing.T) {
	movies := []catalogs.Movie{
		{ID: "tt1", Genre: "Sci-Fi", Director: "Ann Lee", Actors: "Bo Day"},
		{ID: "tt2", Genre: "sci-fi", Director: "ann lee", Actors: "bo day"},
	}
	cat, err := catalogs.New(movies)
	require.NoError(t, err)
	movies = cat.Movies()

	tests := []struct {
		name   string
		filter *MovieFilter
		want   []string
	}{
		{"genre folded", &MovieFilter{Genre: "Sci"}, []string{"tt1", "tt2"}},
		{"genre exact", &MovieFilter{Genre: "Sci", ExactFacets: true}, []string{"tt1"}},
		{"director exact", &MovieFilter{Director: "ann lee", ExactFacets: true}, []string{"tt2"}},
		{"actor exact", &MovieFilter{Actor: "Bo Day", ExactFacets: true}, []string{"tt1"}},
		{"exact alone does not filter", &MovieFilter{ExactFacets: true}, []string{"tt1", "tt2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.filter.Apply(movies)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}
