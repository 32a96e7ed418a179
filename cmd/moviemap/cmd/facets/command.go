// Package facets provides the command that browses the catalog by category.
package facets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap"
	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/catalog"
	"github.com/agentstation/moviemap/internal/cmd/filter"
	"github.com/agentstation/moviemap/internal/cmd/output"
	"github.com/agentstation/moviemap/internal/cmd/table"
	"github.com/agentstation/moviemap/pkg/catalogs"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/facets"
	"github.com/agentstation/moviemap/pkg/logging"
)

// Value is one facet value with the number of movies listing it.
type Value struct {
	Value  string `json:"value" yaml:"value"`
	Movies int    `json:"movies" yaml:"movies"`
}

// NewCommand creates the facets command with app dependencies.
func NewCommand(appCtx appcontext.Interface) *cobra.Command {
	var counts bool

	cmd := &cobra.Command{
		Use:     "facets [category] [value]",
		Aliases: []string{"browse"},
		GroupID: "core",
		Short:   "Browse the catalog by year, genre, director or actor",
		Long: `Facets lists the distinct values of a category, sorted ascending.

Without arguments it lists the categories. With a category it lists that
category's values. With a category and a value it lists the movies filed
under the value. The "all" category lists every movie.

Values come from splitting fields on commas and hyphens, so a genre of
"Sci-Fi" yields "Sci" and "Fi", and "N/A" is never a value.`,
		Example: `  moviemap facets                            # List categories
  moviemap facets genre                      # All genres
  moviemap facets director --counts          # Directors with movie counts
  moviemap facets genre Comedy               # Comedies
  moviemap facets year 2008                  # Movies and series from 2008`,
		Args:      cobra.MaximumNArgs(2),
		ValidArgs: categoryKeys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := output.Resolve(appCtx.OutputFormat())
			if err != nil {
				return err
			}
			client, _, err := catalog.Load(appCtx)
			if err != nil {
				return err
			}

			switch len(args) {
			case 0:
				return listCategories(cmd, client, format)
			case 1:
				return listValues(cmd, appCtx, client, format, args[0], counts)
			default:
				return listMovies(cmd, appCtx, client, format, args[0], args[1])
			}
		},
	}

	cmd.Flags().BoolVarP(&counts, "counts", "c", false, "Show the number of movies per value")
	return cmd
}

func listCategories(cmd *cobra.Command, client moviemap.Client, format output.Format) error {
	categories := facets.Categories()
	if !format.IsTabular() {
		type row struct {
			Key    string `json:"key" yaml:"key"`
			Name   string `json:"name" yaml:"name"`
			Values int    `json:"values" yaml:"values"`
		}
		rows := make([]row, len(categories))
		for i, c := range categories {
			rows[i] = row{Key: c.Key(), Name: c.String(), Values: len(client.Facets(c))}
		}
		return output.NewFormatter(format).Format(cmd.OutOrStdout(), rows)
	}

	data := table.Data{
		Headers:         []string{"Key", "Category", "Values"},
		ColumnAlignment: []table.Align{table.AlignLeft, table.AlignLeft, table.AlignRight},
	}
	for _, c := range categories {
		values := strconv.Itoa(len(client.Facets(c)))
		if c == facets.AllMovies {
			values = "-"
		}
		data.Rows = append(data.Rows, []string{c.Key(), c.String(), values})
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
}

func listValues(cmd *cobra.Command, appCtx appcontext.Interface, client moviemap.Client, format output.Format, arg string, counts bool) error {
	category, err := facets.ParseCategory(arg)
	if err != nil {
		return err
	}
	if category == facets.AllMovies {
		return printMovies(cmd, appCtx, format, client.Movies())
	}

	ctx := logging.WithCategory(logging.WithLogger(cmd.Context(), appCtx.Logger()), category.Key())

	values := client.Facets(category)
	logging.Ctx(ctx).Debug().Int("values", len(values)).Bool("counts", counts).Msg("Listing facet values")
	if !appCtx.Quiet() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Found %d %s\n", len(values), strings.ToLower(category.String()))
	}

	var valueCounts map[string]int
	if counts {
		valueCounts = countValues(client.Movies(), category)
	}

	formatter := output.NewFormatter(format)
	if format.IsTabular() {
		return formatter.Format(cmd.OutOrStdout(), table.FacetsToTableData(category.String(), values, valueCounts))
	}
	if !counts {
		return formatter.Format(cmd.OutOrStdout(), values)
	}
	rows := make([]Value, len(values))
	for i, v := range values {
		rows[i] = Value{Value: v, Movies: valueCounts[v]}
	}
	return formatter.Format(cmd.OutOrStdout(), rows)
}

func listMovies(cmd *cobra.Command, appCtx appcontext.Interface, client moviemap.Client, format output.Format, arg, value string) error {
	category, err := facets.ParseCategory(arg)
	if err != nil {
		return err
	}

	f, err := facetFilter(category, value)
	if err != nil {
		return err
	}
	movies, err := f.Apply(client.Movies())
	if err != nil {
		return err
	}
	return printMovies(cmd, appCtx, format, movies)
}

// facetFilter builds the filter selecting movies filed under value.
func facetFilter(category facets.Category, value string) (*filter.MovieFilter, error) {
	switch category {
	case facets.Year:
		year, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.NewValidationError("year", value, "year must be an integer")
		}
		if year <= 0 {
			return nil, errors.NewValidationError("year", value, "year must be positive")
		}
		return &filter.MovieFilter{Year: year}, nil
	case facets.Genre:
		return &filter.MovieFilter{Genre: value, ExactFacets: true}, nil
	case facets.Director:
		return &filter.MovieFilter{Director: value, ExactFacets: true}, nil
	case facets.Actor:
		return &filter.MovieFilter{Actor: value, ExactFacets: true}, nil
	default:
		return &filter.MovieFilter{}, nil
	}
}

func countValues(movies []catalogs.Movie, category facets.Category) map[string]int {
	switch category {
	case facets.Year:
		return table.YearCounts(movies)
	case facets.Genre:
		return table.TokenCounts(movies, func(m *catalogs.Movie) []string { return m.Genres })
	case facets.Director:
		return table.TokenCounts(movies, func(m *catalogs.Movie) []string { return m.Directors })
	case facets.Actor:
		return table.TokenCounts(movies, func(m *catalogs.Movie) []string { return m.Cast })
	default:
		return nil
	}
}

func printMovies(cmd *cobra.Command, appCtx appcontext.Interface, format output.Format, movies []catalogs.Movie) error {
	if !appCtx.Quiet() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Found %d movies\n", len(movies))
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.Movies(format, movies))
}

func categoryKeys() []string {
	categories := facets.Categories()
	keys := make([]string, len(categories))
	for i, c := range categories {
		keys[i] = c.Key()
	}
	return keys
}
