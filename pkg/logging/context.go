package logging

import (
	"context"

	"github.com/rs/zerolog"
)

type contextKey int

const loggerKey contextKey = iota

// WithLogger attaches logger to ctx. A nil logger attaches the default.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached to ctx, or the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}

// Ctx is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

func withField(ctx context.Context, key, value string) context.Context {
	logger := FromContext(ctx).With().Str(key, value).Logger()
	return WithLogger(ctx, &logger)
}

// WithMovie tags the context logger with an imdbID.
func WithMovie(ctx context.Context, movieID string) context.Context {
	return withField(ctx, "movie_id", movieID)
}

// WithCategory tags the context logger with a facet category.
func WithCategory(ctx context.Context, category string) context.Context {
	return withField(ctx, "category", category)
}

// WithQuery tags the context logger with a search query.
func WithQuery(ctx context.Context, query string) context.Context {
	return withField(ctx, "query", query)
}

// WithSource tags the context logger with a dataset source.
func WithSource(ctx context.Context, source string) context.Context {
	return withField(ctx, "source", source)
}

// WithOperation tags the context logger with an operation name.
func WithOperation(ctx context.Context, operation string) context.Context {
	return withField(ctx, "operation", operation)
}
