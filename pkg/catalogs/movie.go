package catalogs

import (
	"slices"

	"github.com/agentstation/moviemap/pkg/constants"
)

// Movie represents one record of the movie dataset.
// Field names follow the OMDb wire format the dataset is exported in.
type Movie struct {
	// Core identity
	ID    string `json:"imdbID" yaml:"imdbID"` // Unique IMDb identifier
	Title string `json:"Title" yaml:"Title"`   // Display title
	Year  string `json:"Year" yaml:"Year"`     // "1994" or "2008–2013"

	// Free-text lists, delimited by ',' (and '-' for facet purposes)
	Genre    string `json:"Genre" yaml:"Genre"`
	Director string `json:"Director" yaml:"Director"`
	Actors   string `json:"Actors" yaml:"Actors"`

	// Scores
	Rating  string   `json:"imdbRating" yaml:"imdbRating"`               // Primary IMDb score
	Ratings []Rating `json:"Ratings,omitempty" yaml:"Ratings,omitempty"` // Scores by source, in dataset order

	// Display only
	Poster   string `json:"Poster,omitempty" yaml:"Poster,omitempty"`
	Plot     string `json:"Plot,omitempty" yaml:"Plot,omitempty"`
	Language string `json:"Language,omitempty" yaml:"Language,omitempty"`
	Released string `json:"Released,omitempty" yaml:"Released,omitempty"`

	Rated     string `json:"Rated,omitempty" yaml:"Rated,omitempty"`
	Runtime   string `json:"Runtime,omitempty" yaml:"Runtime,omitempty"`
	Writer    string `json:"Writer,omitempty" yaml:"Writer,omitempty"`
	Country   string `json:"Country,omitempty" yaml:"Country,omitempty"`
	Awards    string `json:"Awards,omitempty" yaml:"Awards,omitempty"`
	Metascore string `json:"Metascore,omitempty" yaml:"Metascore,omitempty"`
	Votes     string `json:"imdbVotes,omitempty" yaml:"imdbVotes,omitempty"`
	Type      string `json:"Type,omitempty" yaml:"Type,omitempty"`

	// Derived at load time; never serialized
	Years     YearSpan `json:"-" yaml:"-"`
	Genres    []string `json:"-" yaml:"-"`
	Directors []string `json:"-" yaml:"-"`
	Cast      []string `json:"-" yaml:"-"`
}

// Rating is a single score attributed to a rating source.
type Rating struct {
	Source string `json:"Source" yaml:"Source"`
	Value  string `json:"Value" yaml:"Value"`
}

// RatingSource names an origin of a score.
type RatingSource string

// Known rating sources.
const (
	RatingSourceIMDB           RatingSource = "IMDB"
	RatingSourceRottenTomatoes RatingSource = "Rotten Tomatoes"
	RatingSourceMetacritic     RatingSource = "Metacritic"
	RatingSourceIMDBDatabase   RatingSource = "Internet Movie Database"
)

// RatingSources returns the known rating sources in display order.
func RatingSources() []RatingSource {
	return []RatingSource{
		RatingSourceIMDB,
		RatingSourceRottenTomatoes,
		RatingSourceMetacritic,
		RatingSourceIMDBDatabase,
	}
}

// String returns the source name.
func (s RatingSource) String() string {
	return string(s)
}

// RatingFor returns the score reported by the given source.
// RatingSourceIMDB reads the primary imdbRating field; every other source is
// looked up in Ratings. A source with no entry yields "".
func (m *Movie) RatingFor(source RatingSource) string {
	if source == RatingSourceIMDB {
		return m.Rating
	}
	for _, r := range m.Ratings {
		if r.Source == string(source) {
			return r.Value
		}
	}
	return ""
}

// HasPoster reports whether the record carries a usable poster URL.
func (m *Movie) HasPoster() bool {
	return m.Poster != "" && m.Poster != constants.NotAvailable
}

// Clone returns a copy of the movie that shares no slices with the receiver.
func (m Movie) Clone() Movie {
	m.Ratings = slices.Clone(m.Ratings)
	m.Genres = slices.Clone(m.Genres)
	m.Directors = slices.Clone(m.Directors)
	m.Cast = slices.Clone(m.Cast)
	return m
}

// derive tokenizes the free-text fields once so consumers never re-split them.
func (m *Movie) derive() {
	m.Years = ParseYear(m.Year)
	m.Genres = SplitList(m.Genre)
	m.Directors = SplitList(m.Director)
	m.Cast = SplitList(m.Actors)
}
