package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saml1211/mcp-config-watcher/internal/settings"
)

func TestStore_MissingFileReturnsDefaults(t *testing.T) {
	store := settings.NewStore(filepath.Join(t.TempDir(), "absent.yaml"))
	cfg, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, settings.DefaultSettings(), cfg)
}

func TestStore_YAMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	store := settings.NewStore(path)

	in := settings.DefaultSettings()
	in.ConfigPath = "/tmp/claude_desktop_config.json"
	in.Discovery.TimeoutMs = 2500
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_TOMLRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	store := settings.NewStore(path)

	in := settings.DefaultSettings()
	in.DocsPath = "out.md"
	require.NoError(t, store.Save(in))

	out, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestStore_YAMLAndTOMLParseEquivalently(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "a.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("config_path: /x.json\ndiscovery:\n  timeout_ms: 1234\n"), 0644))

	tomlPath := filepath.Join(dir, "a.toml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("config_path = \"/x.json\"\n\n[discovery]\ntimeout_ms = 1234\n"), 0644))

	fromYAML, err := settings.NewStore(yamlPath).Load()
	require.NoError(t, err)
	fromTOML, err := settings.NewStore(tomlPath).Load()
	require.NoError(t, err)

	assert.Equal(t, fromYAML, fromTOML)
}

func TestStore_PartialFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("config_path: /x.json\n"), 0644))

	cfg, err := settings.NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "/x.json", cfg.ConfigPath)
	assert.Equal(t, 10000, cfg.Discovery.TimeoutMs)
	assert.Equal(t, 500, cfg.Discovery.GraceMs)
	assert.Equal(t, 500, cfg.DebounceMs)
}

func TestSettings_DurationHelpers(t *testing.T) {
	cfg := settings.DefaultSettings()
	assert.Equal(t, int64(10000), cfg.Timeout().Milliseconds())
	assert.Equal(t, int64(500), cfg.Grace().Milliseconds())
}
