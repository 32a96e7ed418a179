package catalogs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/moviemap/pkg/errors"
)

func TestNew(t *testing.T) {
	loadedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	cat, err := New([]Movie{
		{ID: "tt2", Title: "Second", Year: "2002", Genre: "Drama"},
		{ID: "tt1", Title: "First", Year: "2001", Genre: "Comedy, Drama"},
	}, WithSource("unit"), WithLoadedAt(loadedAt))
	require.NoError(t, err)

	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, []string{"tt2", "tt1"}, cat.IDs())
	assert.Equal(t, "unit", cat.Source())
	assert.Equal(t, loadedAt, cat.LoadedAt())
	assert.True(t, cat.Exists("tt1"))
	assert.False(t, cat.Exists("tt3"))

	first, err := cat.Get("tt1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Comedy", "Drama"}, first.Genres)
	assert.True(t, first.Years.IsSingle())

	_, err = cat.Get("tt3")
	assert.True(t, errors.IsNotFound(err))
}

func TestNewRejectsInvalidRecords(t *testing.T) {
	_, err := New([]Movie{{Year: "2001"}})
	assert.True(t, errors.IsValidationError(err))

	_, err = New([]Movie{{ID: "tt1"}})
	assert.True(t, errors.IsValidationError(err))

	_, err = New([]Movie{{ID: "tt1", Year: "2001"}, {ID: "tt1", Year: "2002"}})
	assert.True(t, errors.IsValidationError(err))
}

func TestCatalogIsImmutable(t *testing.T) {
	cat, err := New([]Movie{{ID: "tt1", Title: "Original", Year: "2001", Genre: "Drama"}})
	require.NoError(t, err)

	movies := cat.Movies()
	movies[0].Title = "Changed"
	movies[0].Genres[0] = "Changed"

	got, err := cat.Get("tt1")
	require.NoError(t, err)
	assert.Equal(t, "Original", got.Title)
	assert.Equal(t, []string{"Drama"}, got.Genres)
}

func TestEmpty(t *testing.T) {
	cat := Empty()
	assert.Equal(t, 0, cat.Len())
	assert.Empty(t, cat.Movies())
	assert.Empty(t, cat.IDs())

	var nilCat *Catalog
	assert.Equal(t, 0, nilCat.Len())
	assert.Nil(t, nilCat.Movies())
	_, err := nilCat.Get("tt1")
	assert.True(t, errors.IsNotFound(err))
}

// Serializing a loaded catalog and loading it again yields the same IDs in the same order.
func TestRoundTripPreservesOrder(t *testing.T) {
	original, err := Load()
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(original.Movies())
		require.NoError(t, err)

		reloaded, err := Parse(data, FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, original.IDs(), reloaded.IDs())
		assert.True(t, original.Equal(reloaded))
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(original.Movies())
		require.NoError(t, err)

		reloaded, err := Parse(data, FormatYAML)
		require.NoError(t, err)
		assert.Equal(t, original.IDs(), reloaded.IDs())
		assert.True(t, original.Equal(reloaded))
	})
}
