// Package table converts catalog values into rows for tabular CLI output.
package table

import (
	"strings"

	"github.com/agentstation/moviemap/pkg/catalogs"
	"github.com/agentstation/moviemap/pkg/constants"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// MoviesToTableData converts movies to table format. Wide output adds the
// director, cast and the scores of every known rating source.
func MoviesToTableData(movies []catalogs.Movie, wide bool) Data {
	headers := []string{"ID", "Title", "Year", "Genre", "Rating"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignLeft, AlignRight}
	if wide {
		headers = append(headers, "Director", "Actors", "Rotten Tomatoes", "Metacritic")
		align = append(align, AlignLeft, AlignLeft, AlignRight, AlignRight)
	}

	rows := make([][]string, 0, len(movies))
	for i := range movies {
		m := &movies[i]
		row := []string{
			m.ID,
			Truncate(m.Title, 40),
			m.Year,
			dash(m.Genre),
			dash(m.Rating),
		}
		if wide {
			row = append(row,
				dash(m.Director),
				Truncate(dash(m.Actors), 48),
				dash(m.RatingFor(catalogs.RatingSourceRottenTomatoes)),
				dash(m.RatingFor(catalogs.RatingSourceMetacritic)),
			)
		}
		rows = append(rows, row)
	}

	return Data{
		Headers:         headers,
		Rows:            rows,
		ColumnAlignment: align,
	}
}

// MovieDetailsToTableData renders one movie as property/value rows.
// When source is set, a row with that source's score is added.
func MovieDetailsToTableData(m *catalogs.Movie, source catalogs.RatingSource) Data {
	rows := [][]string{
		{"ID", m.ID},
		{"Title", m.Title},
		{"Year", m.Year},
		{"Type", dash(m.Type)},
		{"Rated", dash(m.Rated)},
		{"Released", dash(m.Released)},
		{"Runtime", dash(m.Runtime)},
		{"Genre", dash(m.Genre)},
		{"Director", dash(m.Director)},
		{"Writer", dash(m.Writer)},
		{"Actors", dash(m.Actors)},
		{"Language", dash(m.Language)},
		{"Country", dash(m.Country)},
		{"Awards", dash(m.Awards)},
		{"IMDb Rating", dash(m.Rating)},
		{"IMDb Votes", dash(m.Votes)},
		{"Metascore", dash(m.Metascore)},
	}
	for _, r := range m.Ratings {
		rows = append(rows, []string{r.Source, r.Value})
	}
	if source != "" {
		rows = append(rows, []string{"Rating (" + source.String() + ")", dash(m.RatingFor(source))})
	}
	if m.HasPoster() {
		rows = append(rows, []string{"Poster", m.Poster})
	}
	rows = append(rows, []string{"Plot", dash(m.Plot)})

	return Data{
		Headers:         []string{"Property", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}

// FacetsToTableData lists facet values with the number of movies whose
// tokens include each value.
func FacetsToTableData(category string, values []string, counts map[string]int) Data {
	rows := make([][]string, 0, len(values))
	for _, v := range values {
		row := []string{v}
		if counts != nil {
			row = append(row, itoa(counts[v]))
		}
		rows = append(rows, row)
	}

	headers := []string{category}
	align := []Align{AlignLeft}
	if counts != nil {
		headers = append(headers, "Movies")
		align = append(align, AlignRight)
	}
	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// Truncate shortens s to at most n runes, marking the cut with "...".
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n || n < 4 {
		return s
	}
	return strings.TrimSpace(string(r[:n-3])) + "..."
}

// dash replaces empty and sentinel values with "-".
func dash(s string) string {
	if s == "" || s == constants.NotAvailable {
		return "-"
	}
	return s
}
