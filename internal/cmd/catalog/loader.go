// Package catalog provides common catalog operations for CLI commands.
package catalog

import (
	"github.com/agentstation/moviemap"
	"github.com/agentstation/moviemap/internal/appcontext"
	"github.com/agentstation/moviemap/pkg/catalogs"
	"github.com/agentstation/moviemap/pkg/errors"
)

// Load returns the application's client together with its loaded snapshot.
// A client whose dataset failed to load is reported as an error so commands
// exit non-zero instead of printing an empty result.
func Load(appCtx appcontext.Interface) (moviemap.Client, *catalogs.Catalog, error) {
	client, err := appCtx.Client()
	if err != nil {
		return nil, nil, errors.WrapResource("create", "client", "", err)
	}
	if client == nil {
		return nil, nil, errors.ErrNotLoaded
	}

	cat, err := client.Catalog()
	if err != nil {
		return nil, nil, errors.WrapResource("get", "catalog", "", err)
	}

	return client, cat, nil
}
