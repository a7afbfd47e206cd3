package docs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saml1211/mcp-config-watcher/internal/docs"
	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
)

func testConfig() *mcpconfig.Config {
	return &mcpconfig.Config{
		McpServers: map[string]mcpconfig.ServerConfig{
			"files": {Command: "npx", Args: []string{"-y", "@modelcontextprotocol/server-filesystem"}},
			"web":   {Command: "uvx", Args: []string{"mcp-server-fetch"}},
		},
	}
}

func TestRender_ContainsManagedBlocks(t *testing.T) {
	doc := docs.Render(testConfig(), map[string][]string{
		"files": {"read_file", "write_file"},
	})

	assert.Contains(t, doc, "<!-- mcp-watcher:begin files -->")
	assert.Contains(t, doc, "<!-- mcp-watcher:begin web -->")
	assert.Contains(t, doc, "| read_file |")
	assert.Contains(t, doc, "_No tools discovered._")
}

func TestMerge_PreservesTextOutsideBlocks(t *testing.T) {
	cfg := testConfig()
	tools := map[string][]string{"files": {"read_file"}}

	original := docs.Render(cfg, tools)
	edited := "My own intro paragraph.\n\n" + original + "\nTrailing notes I wrote.\n"

	merged := docs.Merge(edited, cfg, tools)

	assert.True(t, strings.HasPrefix(merged, "My own intro paragraph."))
	assert.Contains(t, merged, "Trailing notes I wrote.")
}

func TestMerge_PreservesToolNotes(t *testing.T) {
	cfg := testConfig()
	tools := map[string][]string{"files": {"read_file", "write_file"}}

	original := docs.Render(cfg, tools)
	edited := strings.Replace(original, "| read_file |  |", "| read_file | careful with this one |", 1)

	merged := docs.Merge(edited, cfg, tools)

	assert.Contains(t, merged, "| read_file | careful with this one |")
	assert.Contains(t, merged, "| write_file |")
}

func TestMerge_RemovesDeletedServers(t *testing.T) {
	cfg := testConfig()
	doc := docs.Render(cfg, nil)

	delete(cfg.McpServers, "web")
	merged := docs.Merge(doc, cfg, nil)

	assert.NotContains(t, merged, "mcp-watcher:begin web")
	assert.Contains(t, merged, "mcp-watcher:begin files")
}

func TestMerge_AppendsNewServers(t *testing.T) {
	cfg := testConfig()
	doc := docs.Render(cfg, nil)

	cfg.McpServers["db"] = mcpconfig.ServerConfig{Command: "mcp-server-sqlite"}
	merged := docs.Merge(doc, cfg, map[string][]string{"db": {"query"}})

	assert.Contains(t, merged, "mcp-watcher:begin db")
	assert.Contains(t, merged, "| query |")
}

func TestMerge_EmptyExistingFallsBackToRender(t *testing.T) {
	cfg := testConfig()
	assert.Equal(t, docs.Render(cfg, nil), docs.Merge("", cfg, nil))
}

func TestUpdate_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "SERVERS.md")
	cfg := testConfig()

	require.NoError(t, docs.Update(path, cfg, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mcp-watcher:begin files")
}
