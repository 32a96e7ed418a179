package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agentstation/moviemap/pkg/logging"
)

func TestFromContext(t *testing.T) {
	assert.Same(t, logging.Default(), logging.FromContext(context.Background()))
	//nolint:staticcheck // nil context is handled explicitly
	assert.Same(t, logging.Default(), logging.FromContext(nil))

	tl := logging.NewTestLogger(t)
	ctx := logging.WithLogger(context.Background(), tl.Logger)
	assert.Same(t, tl.Logger, logging.FromContext(ctx))
	assert.Same(t, tl.Logger, logging.Ctx(ctx))

	assert.Same(t, logging.Default(), logging.FromContext(logging.WithLogger(context.Background(), nil)))
}

func TestContextFields(t *testing.T) {
	tl := logging.NewTestLogger(t)

	ctx := logging.WithLogger(context.Background(), tl.Logger)
	ctx = logging.WithCategory(ctx, "genre")
	ctx = logging.WithMovie(ctx, "tt0468569")
	ctx = logging.WithQuery(ctx, "batman")
	ctx = logging.WithSource(ctx, "embedded")
	ctx = logging.WithOperation(ctx, "search")

	logging.Ctx(ctx).Info().Msg("searching")

	tl.AssertContains(t, `"category":"genre"`)
	tl.AssertContains(t, `"movie_id":"tt0468569"`)
	tl.AssertContains(t, `"query":"batman"`)
	tl.AssertContains(t, `"source":"embedded"`)
	tl.AssertContains(t, `"operation":"search"`)
	tl.AssertContains(t, "searching")
}
