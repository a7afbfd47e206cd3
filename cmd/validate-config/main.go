// validate-config is a standalone checker for MCP config files, handy
// in CI for repos that version their claude_desktop_config.json.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: validate-config <config.json> [more...]")
		os.Exit(2)
	}

	failed := 0
	for _, path := range os.Args[1:] {
		if ok := validateFile(os.Stdout, path); !ok {
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func validateFile(out io.Writer, path string) bool {
	cfg, err := mcpconfig.Load(path)
	if err != nil {
		fmt.Fprintf(out, "%s: %v\n", path, err)
		return false
	}

	result := mcpconfig.Validate(cfg)
	if result.Valid {
		fmt.Fprintf(out, "%s: ok (%d servers)\n", path, len(cfg.McpServers))
	} else {
		fmt.Fprintf(out, "%s: invalid\n", path)
	}
	for _, e := range result.Errors {
		fmt.Fprintf(out, "  error: %s\n", e.Error())
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(out, "  warning: %s\n", w.Error())
	}
	return result.Valid
}
