// Package list provides the command that lists movies in the catalog.
package list

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/catalog"
	"github.com/agentstation/moviemap/internal/cmd/cmdutil"
	"github.com/agentstation/moviemap/internal/cmd/output"
)

// NewCommand creates the list command with app dependencies.
func NewCommand(appCtx appcontext.Interface) *cobra.Command {
	var flags *cmdutil.ListFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		GroupID: "core",
		Short:   "List movies in the catalog",
		Long: `List displays every movie in the catalog in dataset order.

Filters narrow the list by title pattern, facet value, year, type or
rating. Facet filters match whole values ignoring case, so --genre drama
matches "Drama" but not "Melodrama".`,
		Example: `  moviemap list                              # List all movies
  moviemap list --director "Christopher Nolan"
  moviemap list --title "batman*"             # Glob over titles
  moviemap list --year 1994                   # Includes series running in 1994
  moviemap list -o wide --min-rating 9`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, appCtx, flags)
		},
	}

	flags = cmdutil.AddListFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, appCtx appcontext.Interface, flags *cmdutil.ListFlags) error {
	format, err := output.Resolve(appCtx.OutputFormat())
	if err != nil {
		return err
	}

	_, cat, err := catalog.Load(appCtx)
	if err != nil {
		return err
	}

	movies, err := flags.Filter().Apply(cat.Movies())
	if err != nil {
		return err
	}
	if flags.Limit > 0 && len(movies) > flags.Limit {
		movies = movies[:flags.Limit]
	}

	appCtx.Logger().Debug().
		Int("total", cat.Len()).
		Int("shown", len(movies)).
		Msg("Listing movies")

	if !appCtx.Quiet() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Found %d movies\n", len(movies))
	}

	return output.NewFormatter(format).Format(cmd.OutOrStdout(), output.Movies(format, movies))
}
