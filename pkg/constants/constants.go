// Package constants provides shared constants used throughout the moviemap codebase.
// This includes dataset names, field sentinels, delimiters, cache lifetimes
// and file permissions that should be consistent across the application.
package constants

import "time"

// Dataset constants
const (
	// DatasetName is the file name of the movie dataset bundled with the binary
	DatasetName = "movies.json"

	// DatasetDir is the directory inside the embedded filesystem holding the dataset
	DatasetDir = "catalog"

	// NotAvailable is the sentinel OMDb uses for an absent field value
	NotAvailable = "N/A"
)

// Delimiter constants used when tokenizing free-text fields
const (
	// ListDelimiters separate values inside genre, director and actors fields
	ListDelimiters = ",-"

	// YearRangeDelimiters separate the start and end of a year range ("2008–2013")
	YearRangeDelimiters = "–-"

	// MaxYearRangeSpan is the widest start–end distance accepted as a year range
	MaxYearRangeSpan = 200
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Cache constants
const (
	// CacheTTL is the lifetime of memoized facet lists. The catalog is
	// immutable, so entries only go stale on reload, which clears the cache.
	CacheTTL = 1 * time.Hour

	// CacheCleanupInterval is how often expired cache entries are removed
	CacheCleanupInterval = 10 * time.Minute
)

// Default values
const (
	// DefaultConfigName is the config file name looked up in $HOME and the working directory
	DefaultConfigName = ".moviemap"

	// DefaultShutdownTimeout bounds graceful shutdown after a failed command
	DefaultShutdownTimeout = 5 * time.Second
)
