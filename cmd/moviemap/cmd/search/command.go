// Package search provides the free-text search command.
package search

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/catalog"
	"github.com/agentstation/moviemap/internal/cmd/cmdutil"
	"github.com/agentstation/moviemap/internal/cmd/output"
	"github.com/agentstation/moviemap/pkg/logging"
)

// NewCommand creates the search command with app dependencies.
func NewCommand(appCtx appcontext.Interface) *cobra.Command {
	var flags *cmdutil.ListFlags

	cmd := &cobra.Command{
		Use:     "search <query>",
		Aliases: []string{"find"},
		GroupID: "core",
		Short:   "Search titles, genres, cast, directors and years",
		Long: `Search returns the movies whose title, genre, actors or director
contain the query, ignoring case. A four-digit year also matches series
whose run includes it, so "1995" finds a show that ran 1990–2000.

Multiple arguments are joined with spaces into one query. An empty
query lists every movie.`,
		Example: `  moviemap search batman
  moviemap search "christian bale"
  moviemap search 1994
  moviemap search drama --type series`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, appCtx, strings.Join(args, " "), flags)
		},
	}

	flags = cmdutil.AddListFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, appCtx appcontext.Interface, query string, flags *cmdutil.ListFlags) error {
	format, err := output.Resolve(appCtx.OutputFormat())
	if err != nil {
		return err
	}

	client, _, err := catalog.Load(appCtx)
	if err != nil {
		return err
	}

	ctx := logging.WithQuery(logging.WithLogger(cmd.Context(), appCtx.Logger()), query)

	matched := client.Search(query)
	movies, err := flags.Filter().Apply(matched)
	if err != nil {
		return err
	}
	if flags.Limit > 0 && len(movies) > flags.Limit {
		movies = movies[:flags.Limit]
	}

	logging.Ctx(ctx).Debug().
		Int("matched", len(matched)).
		Int("shown", len(movies)).
		Msg("Search results filtered")

	if !appCtx.Quiet() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Found %d movies matching %q\n", len(movies), query)
	}

	return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.Movies(format, movies))
}
