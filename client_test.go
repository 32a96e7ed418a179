package moviemap

import (
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/moviemap/pkg/catalogs"
	"github.com/agentstation/moviemap/pkg/errors"
	"github.com/agentstation/moviemap/pkg/facets"
	"github.com/agentstation/moviemap/pkg/logging"
)

const smallDataset = `[
  {"imdbID": "tt1", "Title": "Long Series", "Year": "1990–2000", "Genre": "Comedy", "Director": "N/A", "Actors": "Ann Actor"},
  {"imdbID": "tt2", "Title": "Nineties Film", "Year": "1995", "Genre": "Drama, Sci-Fi", "Director": "Some One", "Actors": "Bob Actor"},
  {"imdbID": "tt3", "Title": "Short Series", "Year": "1990–1993", "Genre": "Drama", "Director": "N/A", "Actors": "Cy Actor"}
]`

func newTestClient(t *testing.T, fsys fstest.MapFS) (Client, *logging.TestLogger) {
	t.Helper()
	tl := logging.NewTestLogger(t)
	mm, err := New(WithDatasetFS(fsys, "movies.json"), WithLogger(tl.Logger))
	require.NoError(t, err)
	return mm, tl
}

func TestNewEmbedded(t *testing.T) {
	mm, err := New(WithLogger(logging.NewNopLogger()))
	require.NoError(t, err)

	require.True(t, mm.Ready())
	assert.NoError(t, mm.Err())

	cat, err := mm.Catalog()
	require.NoError(t, err)
	assert.Equal(t, cat.Len(), len(mm.Movies()))
	assert.Equal(t, "embedded:movies.json", cat.Source())

	movie, err := mm.Movie("tt0468569")
	require.NoError(t, err)
	assert.Equal(t, "The Dark Knight", movie.Title)
}

func TestClientLoadLogsSuccess(t *testing.T) {
	_, tl := newTestClient(t, fstest.MapFS{"movies.json": {Data: []byte(smallDataset)}})

	tl.AssertContains(t, "Movie catalog loaded")
	tl.AssertContains(t, `"movies":3`)
	tl.AssertContains(t, `"source":"fs:movies.json"`)
}

func TestClientFacets(t *testing.T) {
	mm, _ := newTestClient(t, fstest.MapFS{"movies.json": {Data: []byte(smallDataset)}})

	assert.Equal(t,
		[]string{"1990", "1991", "1992", "1993", "1994", "1995", "1996", "1997", "1998", "1999", "2000"},
		mm.Facets(facets.Year))
	assert.Equal(t, []string{"Comedy", "Drama", "Fi", "Sci"}, mm.Facets(facets.Genre))
	assert.Equal(t, []string{"Some One"}, mm.Facets(facets.Director))
	assert.Equal(t, []string{"Ann Actor", "Bob Actor", "Cy Actor"}, mm.Facets(facets.Actor))
	assert.Empty(t, mm.Facets(facets.AllMovies))

	// memoized lists are copies
	genres := mm.Facets(facets.Genre)
	genres[0] = "Changed"
	assert.Equal(t, "Comedy", mm.Facets(facets.Genre)[0])
}

func TestClientSearch(t *testing.T) {
	mm, tl := newTestClient(t, fstest.MapFS{"movies.json": {Data: []byte(smallDataset)}})

	assert.Equal(t, []string{"tt1", "tt2"}, movieIDs(mm.Search("1995")))
	assert.Equal(t, []string{"tt2"}, movieIDs(mm.Search("199")))
	assert.Equal(t, []string{"tt1", "tt2", "tt3"}, movieIDs(mm.Search("")))
	assert.Empty(t, mm.Search("zzz"))

	tl.AssertContains(t, "Search completed")
}

func TestClientNotFound(t *testing.T) {
	mm, tl := newTestClient(t, fstest.MapFS{})

	assert.False(t, mm.Ready())
	assert.True(t, errors.IsNotFound(mm.Err()))

	_, err := mm.Catalog()
	require.Error(t, err)
	assert.True(t, errors.IsNotFound(err))

	assert.Empty(t, mm.Movies())
	assert.Empty(t, mm.Search("batman"))
	assert.Empty(t, mm.Search(""))
	for _, category := range facets.Categories() {
		assert.Empty(t, mm.Facets(category))
	}

	_, err = mm.Movie("tt1")
	assert.True(t, errors.IsNotFound(err))

	tl.AssertContains(t, "Movie catalog failed to load")
	tl.AssertContains(t, `"not_found":true`)
	tl.AssertNotContains(t, "Movie catalog loaded")
}

func TestClientDecodeError(t *testing.T) {
	mm, tl := newTestClient(t, fstest.MapFS{"movies.json": {Data: []byte(`{"not": "an array"}`)}})

	assert.False(t, mm.Ready())
	assert.True(t, errors.IsDecodeError(mm.Err()))
	assert.Empty(t, mm.Movies())
	tl.AssertContains(t, `"decode_error":true`)
}

func TestClientReload(t *testing.T) {
	fsys := fstest.MapFS{}
	mm, _ := newTestClient(t, fsys)
	require.False(t, mm.Ready())
	assert.Empty(t, mm.Facets(facets.Genre))

	fsys["movies.json"] = &fstest.MapFile{Data: []byte(smallDataset)}
	require.NoError(t, mm.Reload())

	assert.True(t, mm.Ready())
	assert.NoError(t, mm.Err())
	assert.Len(t, mm.Movies(), 3)
	assert.Equal(t, []string{"Comedy", "Drama", "Fi", "Sci"}, mm.Facets(facets.Genre), "facets recomputed after reload")

	delete(fsys, "movies.json")
	assert.Error(t, mm.Reload())
	assert.False(t, mm.Ready())
	assert.Empty(t, mm.Facets(facets.Genre))
}

func TestClientHooks(t *testing.T) {
	fsys := fstest.MapFS{"movies.json": {Data: []byte(smallDataset)}}
	mm, _ := newTestClient(t, fsys)

	var loaded int
	var added, updated, removed []string
	mm.OnLoaded(func(cat *catalogs.Catalog) { loaded++ })
	mm.OnMovieAdded(func(m catalogs.Movie) { added = append(added, m.ID) })
	mm.OnMovieUpdated(func(old, new catalogs.Movie) { updated = append(updated, new.ID) })
	mm.OnMovieRemoved(func(m catalogs.Movie) { removed = append(removed, m.ID) })

	fsys["movies.json"] = &fstest.MapFile{Data: []byte(`[
	  {"imdbID": "tt1", "Title": "Long Series", "Year": "1990–2000", "Genre": "Comedy", "Director": "N/A", "Actors": "Ann Actor"},
	  {"imdbID": "tt2", "Title": "Nineties Film (Director's Cut)", "Year": "1995", "Genre": "Drama, Sci-Fi", "Director": "Some One", "Actors": "Bob Actor"},
	  {"imdbID": "tt4", "Title": "New Film", "Year": "2001", "Genre": "Drama", "Director": "Another One", "Actors": "Dee Actor"}
	]`)}
	require.NoError(t, mm.Reload())

	assert.Equal(t, 1, loaded)
	assert.Equal(t, []string{"tt4"}, added)
	assert.Equal(t, []string{"tt2"}, updated)
	assert.Equal(t, []string{"tt3"}, removed)
}

func TestClientInitialCatalog(t *testing.T) {
	cat, err := catalogs.Parse([]byte(smallDataset), catalogs.FormatJSON)
	require.NoError(t, err)

	calls := 0
	mm, err := New(
		WithInitialCatalog(cat),
		WithLoader(func() (*catalogs.Catalog, error) {
			calls++
			return catalogs.Empty(), nil
		}),
		WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)

	assert.True(t, mm.Ready())
	assert.Equal(t, 0, calls)
	assert.Len(t, mm.Movies(), 3)

	require.NoError(t, mm.Reload())
	assert.Equal(t, 1, calls)
	assert.Empty(t, mm.Movies())
}

func TestClientInvalidOptions(t *testing.T) {
	_, err := New(WithLoader(nil))
	assert.True(t, errors.IsValidationError(err))

	_, err = New(WithDatasetFS(nil, "movies.json"))
	assert.True(t, errors.IsValidationError(err))

	_, err = New(WithFacetCacheTTL(0))
	assert.True(t, errors.IsValidationError(err))
}

func TestClientConcurrentAccess(t *testing.T) {
	fsys := fstest.MapFS{"movies.json": {Data: []byte(smallDataset)}}
	mm, _ := newTestClient(t, fsys)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func() {
			defer wg.Done()
			_ = mm.Search("drama")
		}()
		go func() {
			defer wg.Done()
			_ = mm.Facets(facets.Year)
		}()
		go func() {
			defer wg.Done()
			_ = mm.Reload()
		}()
	}
	wg.Wait()

	assert.True(t, mm.Ready())
	assert.Len(t, mm.Facets(facets.Year), 11)
}

func movieIDs(movies []catalogs.Movie) []string {
	ids := make([]string, len(movies))
	for i, m := range movies {
		ids[i] = m.ID
	}
	return ids
}

func TestClientHookRegistersHook(t *testing.T) {
	fsys := fstest.MapFS{"movies.json": {Data: []byte(smallDataset)}}
	mm, _ := newTestClient(t, fsys)

	var loaded, nested int
	mm.OnLoaded(func(cat *catalogs.Catalog) {
		loaded++
		mm.OnLoaded(func(cat *catalogs.Catalog) { nested++ })
	})

	done := make(chan error, 1)
	go func() { done <- mm.Reload() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Reload blocked while a hook registered another hook")
	}

	assert.Equal(t, 1, loaded)
	assert.Zero(t, nested, "hooks registered during a reload run on the next one")

	require.NoError(t, mm.Reload())
	assert.Equal(t, 2, loaded)
	assert.Equal(t, 1, nested)
}
