package catalogs

import "time"

// catalogOptions holds the metadata recorded on a catalog.
type catalogOptions struct {
	source   string
	loadedAt time.Time
}

// apply applies the given options to the catalog options.
func (c *catalogOptions) apply(opts ...Option) *catalogOptions {
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// catalogDefaults returns the default options for a catalog.
func catalogDefaults() *catalogOptions {
	return &catalogOptions{
		source:   "memory",
		loadedAt: time.Now(),
	}
}

// Option configures a catalog.
type Option func(*catalogOptions)

// WithSource records where the catalog was read from.
func WithSource(source string) Option {
	return func(c *catalogOptions) {
		c.source = source
	}
}

// WithLoadedAt overrides the load timestamp.
func WithLoadedAt(t time.Time) Option {
	return func(c *catalogOptions) {
		c.loadedAt = t
	}
}
