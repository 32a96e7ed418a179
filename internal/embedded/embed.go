// Package embedded holds the movie dataset compiled into the binary.
package embedded

import (
	"embed"
)

// FS embeds the catalog directory, which contains the bundled movies.json dataset.
//
//go:embed catalog/*
var FS embed.FS
