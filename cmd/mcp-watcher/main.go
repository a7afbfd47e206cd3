package main

import (
	"os"

	"github.com/Saml1211/mcp-config-watcher/internal/cli/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
