package app

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/cmd/moviemap/cmd/export"
	"github.com/agentstation/moviemap/cmd/moviemap/cmd/facets"
	"github.com/agentstation/moviemap/cmd/moviemap/cmd/list"
	"github.com/agentstation/moviemap/cmd/moviemap/cmd/search"
	"github.com/agentstation/moviemap/cmd/moviemap/cmd/show"
	"github.com/agentstation/moviemap/cmd/moviemap/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Core commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(search.NewCommand(a))
	rootCmd.AddCommand(facets.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))

	// Management commands
	rootCmd.AddCommand(export.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(version.NewCommand(a))
}
