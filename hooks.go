package moviemap

import (
	"reflect"
	"slices"
	"sync"

	"github.com/agentstation/moviemap/pkg/catalogs"
)

// Hook function types for catalog events
type (
	// LoadedHook is called after every successful load
	LoadedHook func(cat *catalogs.Catalog)

	// MovieAddedHook is called when a reload brings in a new movie
	MovieAddedHook func(movie catalogs.Movie)

	// MovieUpdatedHook is called when a reload changes an existing movie
	MovieUpdatedHook func(old, new catalogs.Movie)

	// MovieRemovedHook is called when a reload drops a movie
	MovieRemovedHook func(movie catalogs.Movie)
)

// Hooks provides event callback registration.
type Hooks interface {
	OnLoaded(fn LoadedHook)
	OnMovieAdded(fn MovieAddedHook)
	OnMovieUpdated(fn MovieUpdatedHook)
	OnMovieRemoved(fn MovieRemovedHook)
}

// hooks manages event callbacks for catalog changes
type hooks struct {
	mu             sync.RWMutex
	onLoaded       []LoadedHook
	onMovieAdded   []MovieAddedHook
	onMovieUpdated []MovieUpdatedHook
	onMovieRemoved []MovieRemovedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnLoaded registers a callback for successful loads.
func (c *client) OnLoaded(fn LoadedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onLoaded = append(c.hooks.onLoaded, fn)
}

// OnMovieAdded registers a callback for when movies are added.
func (c *client) OnMovieAdded(fn MovieAddedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onMovieAdded = append(c.hooks.onMovieAdded, fn)
}

// OnMovieUpdated registers a callback for when movies are updated.
func (c *client) OnMovieUpdated(fn MovieUpdatedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onMovieUpdated = append(c.hooks.onMovieUpdated, fn)
}

// OnMovieRemoved registers a callback for when movies are removed.
func (c *client) OnMovieRemoved(fn MovieRemovedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onMovieRemoved = append(c.hooks.onMovieRemoved, fn)
}

// hookSet is a point-in-time copy of the registered hooks.
type hookSet struct {
	onLoaded       []LoadedHook
	onMovieAdded   []MovieAddedHook
	onMovieUpdated []MovieUpdatedHook
	onMovieRemoved []MovieRemovedHook
}

// snapshot copies the registered hooks so they run without the lock held;
// a hook may register further hooks.
func (h *hooks) snapshot() hookSet {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return hookSet{
		onLoaded:       slices.Clone(h.onLoaded),
		onMovieAdded:   slices.Clone(h.onMovieAdded),
		onMovieUpdated: slices.Clone(h.onMovieUpdated),
		onMovieRemoved: slices.Clone(h.onMovieRemoved),
	}
}

// triggerCatalogUpdate compares two snapshots and fires the matching hooks.
// Added and updated movies are reported in new dataset order, removed
// movies in old dataset order.
func (h *hooks) triggerCatalogUpdate(oldCatalog, newCatalog *catalogs.Catalog) {
	registered := h.snapshot()

	for _, hook := range registered.onLoaded {
		hook(newCatalog)
	}

	if len(registered.onMovieAdded) == 0 && len(registered.onMovieUpdated) == 0 && len(registered.onMovieRemoved) == 0 {
		return
	}

	for _, movie := range newCatalog.Movies() {
		old, err := oldCatalog.Get(movie.ID)
		if err != nil {
			for _, hook := range registered.onMovieAdded {
				hook(movie)
			}
			continue
		}
		if !reflect.DeepEqual(old, movie) {
			for _, hook := range registered.onMovieUpdated {
				hook(old, movie)
			}
		}
	}

	for _, movie := range oldCatalog.Movies() {
		if !newCatalog.Exists(movie.ID) {
			for _, hook := range registered.onMovieRemoved {
				hook(movie)
			}
		}
	}
}
