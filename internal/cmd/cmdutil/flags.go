// Package cmdutil provides shared flags for moviemap commands.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/cmd/filter"
)

// ListFlags holds the filter and paging flags of commands that print movie
// lists.
type ListFlags struct {
	filter.MovieFilter
	Limit int
}

// AddListFlags adds movie filter flags to a command.
func AddListFlags(cmd *cobra.Command) *ListFlags {
	flags := &ListFlags{}

	cmd.Flags().StringVarP(&flags.Title, "title", "t", "",
		"Filter by title pattern (glob or regex)")
	cmd.Flags().StringVarP(&flags.Genre, "genre", "g", "",
		"Filter by genre")
	cmd.Flags().StringVarP(&flags.Director, "director", "d", "",
		"Filter by director")
	cmd.Flags().StringVarP(&flags.Actor, "actor", "a", "",
		"Filter by actor")
	cmd.Flags().IntVarP(&flags.Year, "year", "y", 0,
		"Filter by year, including years a series ran")
	cmd.Flags().StringVar(&flags.Type, "type", "",
		"Filter by type: movie, series, episode")
	cmd.Flags().Float64Var(&flags.MinRating, "min-rating", 0,
		"Minimum IMDb rating")
	cmd.Flags().IntVarP(&flags.Limit, "limit", "l", 0,
		"Limit number of results")

	return flags
}

// Filter returns the filter the flags describe.
func (f *ListFlags) Filter() *filter.MovieFilter {
	return &f.MovieFilter
}
