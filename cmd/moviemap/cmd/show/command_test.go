package show

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/moviemap"
	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/pkg/catalogs"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/logging"
)

func execute(t *testing.T, appCtx appcontext.Interface, args ...string) (string, error) {
	t.Helper()
	root := &cobra.Command{Use: "moviemap"}
	root.AddGroup(&cobra.Group{ID: "core", Title: "Core Commands:"})
	root.AddCommand(NewCommand(appCtx))

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"show"}, args...))
	err := root.Execute()
	return out.String(), err
}

func mockWith(client moviemap.Client, format string) *appcontext.Mock {
	return &appcontext.Mock{
		ClientFunc:       func() (moviemap.Client, error) { return client, nil },
		OutputFormatFunc: func() string { return format },
	}
}

func TestShowTable(t *testing.T) {
	client, err := moviemap.New(moviemap.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	out, err := execute(t, mockWith(client, "table"), "tt0468569", "--source", "rotten tomatoes")
	require.NoError(t, err)
	assert.Contains(t, out, "The Dark Knight")
	assert.Contains(t, out, "Rating (Rotten Tomatoes)")
}

func TestShowUnknownSource(t *testing.T) {
	client, err := moviemap.New(moviemap.WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	_, err = execute(t, mockWith(client, "table"), "tt0468569", "--source", "Letterboxd")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestShowNotLoaded(t *testing.T) {
	client, err := moviemap.New(
		moviemap.WithLoader(func() (*catalogs.Catalog, error) {
			return nil, errors.NewNotFoundError("dataset", "movies.json")
		}),
		moviemap.WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	_, err = execute(t, mockWith(client, "json"), "tt0468569")
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))
}

func TestParseSource(t *testing.T) {
	rs, err := parseSource("metacritic")
	require.NoError(t, err)
	assert.Equal(t, catalogs.RatingSourceMetacritic, rs)

	rs, err = parseSource("")
	require.NoError(t, err)
	assert.Empty(t, rs)
}
