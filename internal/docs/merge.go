package docs

import (
	"os"
	"regexp"
	"strings"

	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
)

var (
	blockRe = regexp.MustCompile(`(?s)<!-- mcp-watcher:begin (\S+) -->.*?<!-- mcp-watcher:end -->\n?`)
	rowRe   = regexp.MustCompile(`(?m)^\|\s*([^|]+?)\s*\|\s*(.*?)\s*\|\s*$`)
)

// Merge regenerates the managed blocks of an existing document. Text
// outside managed blocks is left untouched; blocks for servers that no
// longer exist are removed; new servers are appended; per-tool Notes
// cells are carried over for tools that are still present.
func Merge(existing string, cfg *mcpconfig.Config, tools map[string][]string) string {
	if strings.TrimSpace(existing) == "" {
		return Render(cfg, tools)
	}

	oldNotes := make(map[string]map[string]string)
	for _, m := range blockRe.FindAllStringSubmatch(existing, -1) {
		oldNotes[m[1]] = tableNotes(m[0])
	}

	fresh := func(name string) string {
		return renderServer(name, cfg.McpServers[name], tools[name], oldNotes[name])
	}

	seen := make(map[string]bool)
	merged := blockRe.ReplaceAllStringFunc(existing, func(block string) string {
		name := blockRe.FindStringSubmatch(block)[1]
		if _, ok := cfg.McpServers[name]; !ok {
			return "" // server removed from config
		}
		seen[name] = true
		return fresh(name)
	})

	// Append blocks for servers that were not in the document yet.
	var appended strings.Builder
	appended.WriteString(merged)
	for _, name := range cfg.ServerNames() {
		if !seen[name] {
			appended.WriteString("\n")
			appended.WriteString(fresh(name))
		}
	}
	return appended.String()
}

// Update reads the document at path (if any), merges, and writes it
// back.
func Update(path string, cfg *mcpconfig.Config, tools map[string][]string) error {
	existing := ""
	if data, err := os.ReadFile(path); err == nil {
		existing = string(data)
	}
	return os.WriteFile(path, []byte(Merge(existing, cfg, tools)), 0644)
}

// tableNotes pulls tool -> Notes pairs out of a managed block's table.
func tableNotes(block string) map[string]string {
	notes := make(map[string]string)
	for _, m := range rowRe.FindAllStringSubmatch(block, -1) {
		tool, note := m[1], m[2]
		if tool == "Tool" || strings.HasPrefix(tool, "---") {
			continue
		}
		if note != "" {
			notes[tool] = note
		}
	}
	return notes
}
