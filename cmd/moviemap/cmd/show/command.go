// Package show provides the command that prints one movie in detail.
package show

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/catalog"
	"github.com/agentstation/moviemap/internal/cmd/output"
	"github.com/agentstation/moviemap/internal/cmd/table"
	"github.com/agentstation/moviemap/pkg/catalogs"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/logging"
)

// NewCommand creates the show command with app dependencies.
func NewCommand(appCtx appcontext.Interface) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:     "show <imdb-id>",
		Aliases: []string{"get"},
		GroupID: "core",
		Short:   "Show details of a movie",
		Example: `  moviemap show tt0468569
  moviemap show tt0468569 --source "Rotten Tomatoes"
  moviemap show tt0468569 -o json`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			_, cat, err := catalog.Load(appCtx)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			return cat.IDs(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, appCtx, args[0], source)
		},
	}

	cmd.Flags().StringVarP(&source, "source", "s", "",
		"Highlight the score of a rating source (IMDB, Rotten Tomatoes, Metacritic)")
	_ = cmd.RegisterFlagCompletionFunc("source", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		sources := catalogs.RatingSources()
		names := make([]string, len(sources))
		for i, s := range sources {
			names[i] = s.String()
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func run(cmd *cobra.Command, appCtx appcontext.Interface, id, source string) error {
	format, err := output.Resolve(appCtx.OutputFormat())
	if err != nil {
		return err
	}

	rs, err := parseSource(source)
	if err != nil {
		return err
	}

	client, _, err := catalog.Load(appCtx)
	if err != nil {
		return err
	}

	ctx := logging.WithMovie(logging.WithLogger(cmd.Context(), appCtx.Logger()), id)

	movie, err := client.Movie(id)
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Msg("Movie lookup failed")
		return err
	}
	logging.Ctx(ctx).Debug().Str("title", movie.Title).Msg("Showing movie")

	var data any = movie
	if format.IsTabular() {
		data = table.MovieDetailsToTableData(&movie, rs)
	}
	return output.NewFormatter(format).Format(cmd.OutOrStdout(), data)
}

// parseSource accepts a known rating source name ignoring case.
func parseSource(s string) (catalogs.RatingSource, error) {
	if s == "" {
		return "", nil
	}
	for _, rs := range catalogs.RatingSources() {
		if strings.EqualFold(rs.String(), s) {
			return rs, nil
		}
	}
	return "", errors.NewValidationError("source", s, "unknown rating source")
}
