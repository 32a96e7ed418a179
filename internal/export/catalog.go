// Package export renders the movie catalog as a Markdown document.
package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/agentstation/moviemap/pkg/catalogs"
	"github.com/agentstation/moviemap/pkg/constants"
	"github.com/agentstation/moviemap/pkg/facets"
)

// imdbTitleURL is the IMDb page for a title, keyed by imdbID.
const imdbTitleURL = "https://www.imdb.com/title/"

// Options controls which sections a catalog document contains.
type Options struct {
	Title      string
	Categories []facets.Category // facet sections, in order
	Details    bool              // add a section per movie
	Posters    bool              // embed poster images in movie sections
}

// DefaultOptions returns options for a full document.
func DefaultOptions() Options {
	return Options{
		Title:      "Movie Catalog",
		Categories: []facets.Category{facets.Year, facets.Genre, facets.Director, facets.Actor},
		Details:    true,
	}
}

// Catalog writes a Markdown document describing the catalog: a movie index,
// one facet list per category and, optionally, a section per movie.
func Catalog(w io.Writer, cat *catalogs.Catalog, opts Options) error {
	movies := cat.Movies()
	b := NewBuilder(w)

	b.FrontMatter(opts.Title, fmt.Sprintf("%d movies from %s", len(movies), cat.Source()))
	b.H1(opts.Title)
	b.PlainTextf("%d movies. Source: %s.", len(movies), cat.Source()).LF()

	b.H2("Movies")
	rows := make([][]string, 0, len(movies))
	for i := range movies {
		m := &movies[i]
		rows = append(rows, []string{
			Link(m.Title, imdbTitleURL+m.ID+"/"),
			m.Year,
			orDash(m.Genre),
			orDash(m.Director),
			orDash(m.Rating),
		})
	}
	b.Table([]string{"Title", "Year", "Genre", "Director", "IMDb"}, rows)

	for _, category := range opts.Categories {
		values := facets.Extract(movies, category)
		if len(values) == 0 {
			continue
		}
		b.H2(category.String())
		if category == facets.Year {
			b.PlainText(strings.Join(values, ", ")).LF()
			continue
		}
		b.BulletList(values...)
	}

	if opts.Details {
		b.H2("Details")
		for i := range movies {
			writeMovie(b, &movies[i], opts.Posters)
		}
	}

	return b.Build()
}

func writeMovie(b *Builder, m *catalogs.Movie, posters bool) {
	b.H3(fmt.Sprintf("%s (%s)", m.Title, m.Year))
	if posters && m.HasPoster() {
		b.PlainText(Image(m.Title, m.Poster)).LF()
	}
	if m.Plot != "" && m.Plot != constants.NotAvailable {
		b.Blockquote(m.Plot)
	}

	items := []string{
		Bold("Genre:") + " " + orDash(m.Genre),
		Bold("Director:") + " " + orDash(m.Director),
		Bold("Actors:") + " " + orDash(m.Actors),
	}
	for _, source := range catalogs.RatingSources() {
		if v := m.RatingFor(source); v != "" && v != constants.NotAvailable {
			items = append(items, Bold(source.String()+":")+" "+v)
		}
	}
	b.BulletList(items...)
}

func orDash(s string) string {
	if s == "" || s == constants.NotAvailable {
		return "-"
	}
	return s
}
