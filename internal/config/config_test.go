package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{}).WithDefaults()
	assert.Equal(t, "catalog.yaml", cfg.Catalog)

	cfg = (&Config{Catalog: "custom.yaml"}).WithDefaults()
	assert.Equal(t, "custom.yaml", cfg.Catalog)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
catalog: /srv/catalog.yaml
hostVersion: 2.16.1
runtimeVersion: "17"
log:
  timestamps: false
`), 0o644))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/catalog.yaml", cfg.Catalog)
	assert.Equal(t, "2.16.1", cfg.HostVersion)
	assert.Equal(t, "17", cfg.RuntimeVersion)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.False(t, *cfg.Log.Timestamps)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "catalog.yaml", cfg.Catalog)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("APM_CATALOG", "/env/catalog.yaml")
	t.Setenv("APM_HOST_VERSION", "2.15.0")

	cfg, err := NewLoader().LoadWithDefaults(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "/env/catalog.yaml", cfg.Catalog)
	assert.Equal(t, "2.15.0", cfg.HostVersion)
}

func TestGetConfigFile(t *testing.T) {
	t.Setenv("APM_CONFIG", "/etc/apm/config.yaml")
	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/etc/apm/config.yaml", path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	expanded, err := ExpandPath("~/catalog.yaml")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "catalog.yaml"), expanded)

	plain, err := ExpandPath("/abs/path.yaml")
	require.NoError(t, err)
	assert.Equal(t, "/abs/path.yaml", plain)
}
