package mcpconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
)

const sampleConfig = `{
  "mcpServers": {
    "filesystem": {
      "command": "npx",
      "args": ["-y", "@modelcontextprotocol/server-filesystem", "/tmp"],
      "env": {"DEBUG": "1"}
    },
    "disabled-one": {
      "command": "uvx mcp-server-fetch",
      "disabled": true
    }
  }
}`

func writeSample(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "claude_desktop_config.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := mcpconfig.Load(writeSample(t))
	require.NoError(t, err)

	require.Len(t, cfg.McpServers, 2)
	fs := cfg.McpServers["filesystem"]
	assert.Equal(t, "npx", fs.Command)
	assert.Equal(t, []string{"-y", "@modelcontextprotocol/server-filesystem", "/tmp"}, fs.Args)
	assert.Equal(t, "1", fs.Env["DEBUG"])
	assert.True(t, cfg.McpServers["disabled-one"].Disabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := mcpconfig.Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, err := mcpconfig.Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeSample(t)
	cfg, err := mcpconfig.Load(path)
	require.NoError(t, err)

	cfg.McpServers["new"] = mcpconfig.ServerConfig{Command: "deno run server.ts"}
	require.NoError(t, mcpconfig.Save(path, cfg))

	reloaded, err := mcpconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.McpServers, reloaded.McpServers)
}

func TestServerNames_Sorted(t *testing.T) {
	cfg := &mcpconfig.Config{McpServers: map[string]mcpconfig.ServerConfig{
		"zeta": {Command: "z"}, "alpha": {Command: "a"}, "mid": {Command: "m"},
	}}
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, cfg.ServerNames())
}

func TestEnabledServers(t *testing.T) {
	cfg, err := mcpconfig.Load(writeSample(t))
	require.NoError(t, err)

	enabled := cfg.EnabledServers()
	assert.Contains(t, enabled, "filesystem")
	assert.NotContains(t, enabled, "disabled-one")
}
