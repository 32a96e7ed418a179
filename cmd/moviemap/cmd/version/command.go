// Package version provides the version command.
package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/output"
)

// Info is the build information printed by the version command.
type Info struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	BuiltBy string `json:"built_by" yaml:"built_by"`
}

// NewCommand creates the version command.
func NewCommand(appCtx appcontext.Interface) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := Info{
				Version: appCtx.Version(),
				Commit:  appCtx.Commit(),
				Date:    appCtx.Date(),
				BuiltBy: appCtx.BuiltBy(),
			}

			if format, err := output.ParseFormat(appCtx.OutputFormat()); err == nil && !format.IsTabular() {
				return output.NewFormatter(format).Format(cmd.OutOrStdout(), info)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "moviemap %s\n", info.Version)
			fmt.Fprintf(w, "  commit:   %s\n", info.Commit)
			fmt.Fprintf(w, "  built:    %s\n", info.Date)
			fmt.Fprintf(w, "  built by: %s\n", info.BuiltBy)
			return nil
		},
	}
}
