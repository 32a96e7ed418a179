// Package export provides the command that writes the catalog to a file.
package export

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/internal/cmd/catalog"
	"github.com/agentstation/moviemap/internal/cmd/output"
	"github.com/agentstation/moviemap/internal/export"
	"github.com/agentstation/moviemap/pkg/catalogs"
	"github.com/agentstation/moviemap/pkg/constants"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/logging"
)

// Flags holds export-specific flags.
type Flags struct {
	Out       string
	As        string
	Title     string
	NoDetails bool
	Posters   bool
}

// NewCommand creates the export command with app dependencies.
func NewCommand(appCtx appcontext.Interface) *cobra.Command {
	flags := &Flags{}

	cmd := &cobra.Command{
		Use:     "export",
		GroupID: "management",
		Short:   "Export the catalog as Markdown, JSON or YAML",
		Long: `Export writes the loaded catalog to stdout or a file.

Markdown produces a browsable document with a movie index, one section
per category and a section per movie. JSON and YAML write the dataset in
the same shape it is loaded from, so an export can be fed back with
--dataset.`,
		Example: `  moviemap export                            # Markdown to stdout
  moviemap export --out docs/catalog.md --posters
  moviemap export --as yaml --out movies.yaml
  moviemap --dataset movies.yaml list`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, appCtx, flags)
		},
	}

	cmd.Flags().StringVar(&flags.Out, "out", "", "Output file (default stdout)")
	cmd.Flags().StringVar(&flags.As, "as", "markdown", "Export format: markdown, json, yaml")
	cmd.Flags().StringVar(&flags.Title, "title", "Movie Catalog", "Document title (markdown only)")
	cmd.Flags().BoolVar(&flags.NoDetails, "no-details", false, "Omit per-movie sections (markdown only)")
	cmd.Flags().BoolVar(&flags.Posters, "posters", false, "Embed poster images (markdown only)")

	return cmd
}

func run(cmd *cobra.Command, appCtx appcontext.Interface, flags *Flags) error {
	_, cat, err := catalog.Load(appCtx)
	if err != nil {
		return err
	}

	ctx := logging.WithOperation(logging.WithLogger(cmd.Context(), appCtx.Logger()), "export")
	ctx = logging.WithSource(ctx, cat.Source())

	var buf bytes.Buffer
	if err := write(&buf, cat, flags); err != nil {
		return err
	}

	if flags.Out == "" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	if dir := filepath.Dir(flags.Out); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}
	if err := os.WriteFile(flags.Out, buf.Bytes(), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", flags.Out, err)
	}

	logging.Ctx(ctx).Info().
		Str("path", flags.Out).
		Str("format", flags.As).
		Int("movies", cat.Len()).
		Msg("Catalog exported")
	if !appCtx.Quiet() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d movies to %s\n", cat.Len(), flags.Out)
	}
	return nil
}

func write(w io.Writer, cat *catalogs.Catalog, flags *Flags) error {
	format, err := output.ParseFormat(flags.As)
	if err != nil {
		return err
	}

	switch format {
	case output.FormatMarkdown:
		opts := export.DefaultOptions()
		opts.Title = flags.Title
		opts.Details = !flags.NoDetails
		opts.Posters = flags.Posters
		return export.Catalog(w, cat, opts)
	case output.FormatJSON, output.FormatYAML:
		return output.NewFormatter(format).Format(w, cat.Movies())
	default:
		return errors.NewValidationError("as", flags.As, "export format must be markdown, json or yaml")
	}
}
