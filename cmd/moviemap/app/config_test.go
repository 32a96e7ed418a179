package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/moviemap/pkg/constants"
	"github.com/agentstation/moviemap/pkg/errors"
)

// TestLoadConfig verifies basic config loading.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	require.NoError(t, err)
	require.NotNil(t, config)

	assert.Equal(t, constants.CacheTTL, config.FacetCacheTTL)
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	t.Setenv("MOVIEMAP_VERBOSE", "true")
	t.Setenv("MOVIEMAP_FORMAT", "json")
	t.Setenv("MOVIEMAP_DATASET", "/tmp/movies.yaml")
	t.Setenv("MOVIEMAP_FACET_CACHE_TTL", "5m")
	t.Setenv("LOG_LEVEL", "error")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, config.Verbose)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "/tmp/movies.yaml", config.Dataset)
	assert.Equal(t, 5*time.Minute, config.FacetCacheTTL)
	assert.Equal(t, "error", config.LogLevel)
}

// TestLoadConfigFile verifies an explicit config file is read.
func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moviemap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: yaml\nquiet: true\ndataset: ./movies.json\nlog_format: json\n"), 0o600))

	config, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, path, config.ConfigFile)
	assert.Equal(t, "yaml", config.Format)
	assert.True(t, config.Quiet)
	assert.Equal(t, "./movies.json", config.Dataset)
	assert.Equal(t, "json", config.LogFormat)
}

// TestLoadConfigFile_Missing verifies an explicit but absent config file fails.
func TestLoadConfigFile_Missing(t *testing.T) {
	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)

	var configErr *errors.ConfigError
	assert.ErrorAs(t, err, &configErr)
}

// TestConfig_UpdateFromFlags verifies flag values override loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{Format: "yaml", Dataset: "a.json", LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "", "", "")
	assert.True(t, config.Verbose)
	assert.True(t, config.NoColor)
	assert.Equal(t, "yaml", config.Format, "empty flag keeps loaded value")
	assert.Equal(t, "a.json", config.Dataset)
	assert.Equal(t, "info", config.LogLevel)

	config.UpdateFromFlags(false, true, false, "json", "debug", "b.yaml")
	assert.True(t, config.Quiet)
	assert.Equal(t, "json", config.Format)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "b.yaml", config.Dataset)
}
