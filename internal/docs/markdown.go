// Package docs renders a markdown inventory of configured MCP servers
// and their discovered tools. Each server lives in a managed block
// delimited by marker comments; regeneration rewrites only those
// blocks, so surrounding prose and per-tool notes survive.
package docs

import (
	"fmt"
	"strings"

	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
)

const (
	beginMarker = "<!-- mcp-watcher:begin %s -->"
	endMarker   = "<!-- mcp-watcher:end -->"
)

const header = `# MCP Servers

This file is maintained by mcp-config-watcher. Blocks between the
mcp-watcher markers are rewritten on every config change; anything you
write outside them, and the Notes column inside tool tables, is
preserved.
`

// Render produces a fresh document for the given config and discovery
// results. Tool notes are empty; Merge carries notes over from an
// existing document.
func Render(cfg *mcpconfig.Config, tools map[string][]string) string {
	var b strings.Builder
	b.WriteString(header)

	for _, name := range cfg.ServerNames() {
		b.WriteString("\n")
		b.WriteString(renderServer(name, cfg.McpServers[name], tools[name], nil))
	}
	return b.String()
}

func renderServer(name string, sc mcpconfig.ServerConfig, tools []string, notes map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, beginMarker+"\n", name)
	fmt.Fprintf(&b, "## %s\n\n", name)
	fmt.Fprintf(&b, "- Command: `%s`\n", sc.Command)
	if len(sc.Args) > 0 {
		fmt.Fprintf(&b, "- Args: `%s`\n", strings.Join(sc.Args, " "))
	}
	if len(sc.Env) > 0 {
		fmt.Fprintf(&b, "- Env: %d variable(s)\n", len(sc.Env))
	}
	if sc.Disabled {
		b.WriteString("- Status: disabled\n")
	}

	if len(tools) == 0 {
		b.WriteString("\n_No tools discovered._\n")
	} else {
		b.WriteString("\n| Tool | Notes |\n|------|-------|\n")
		for _, tool := range tools {
			fmt.Fprintf(&b, "| %s | %s |\n", tool, notes[tool])
		}
	}

	b.WriteString(endMarker + "\n")
	return b.String()
}
