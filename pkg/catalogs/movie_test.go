package catalogs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		field string
		want  []string
	}{
		{"comma list", "Action, Crime, Drama", []string{"Action", "Crime", "Drama"}},
		{"hyphen splits", "Action, Sci-Fi", []string{"Action", "Sci", "Fi"}},
		{"hyphenated name", "Jean-Pierre Jeunet", []string{"Jean", "Pierre Jeunet"}},
		{"sentinel", "N/A", []string{}},
		{"sentinel inside list", "Tim Burton, N/A", []string{"Tim Burton"}},
		{"empty tokens", " , ,Drama,, ", []string{"Drama"}},
		{"duplicates kept", "Drama, Drama", []string{"Drama", "Drama"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitList(tt.field))
		})
	}
}

func TestMovieRatingFor(t *testing.T) {
	movie := Movie{
		ID:     "tt0372784",
		Rating: "8.2",
		Ratings: []Rating{
			{Source: "Internet Movie Database", Value: "8.2/10"},
			{Source: "Rotten Tomatoes", Value: "85%"},
		},
	}

	assert.Equal(t, "8.2", movie.RatingFor(RatingSourceIMDB))
	assert.Equal(t, "8.2/10", movie.RatingFor(RatingSourceIMDBDatabase))
	assert.Equal(t, "85%", movie.RatingFor(RatingSourceRottenTomatoes))
	assert.Equal(t, "", movie.RatingFor(RatingSourceMetacritic))
	assert.Equal(t, "", movie.RatingFor("Letterboxd"))
	assert.Len(t, RatingSources(), 4)
}

func TestMovieClone(t *testing.T) {
	original := Movie{
		ID:      "tt0110912",
		Ratings: []Rating{{Source: "Metacritic", Value: "95/100"}},
		Genres:  []string{"Crime", "Drama"},
	}

	clone := original.Clone()
	clone.Ratings[0].Value = "0/100"
	clone.Genres[0] = "Comedy"

	assert.Equal(t, "95/100", original.Ratings[0].Value)
	assert.Equal(t, "Crime", original.Genres[0])
}

func TestMovieHasPoster(t *testing.T) {
	assert.True(t, (&Movie{Poster: "https://example.com/p.jpg"}).HasPoster())
	assert.False(t, (&Movie{Poster: "N/A"}).HasPoster())
	assert.False(t, (&Movie{}).HasPoster())
}
