package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Saml1211/mcp-config-watcher/internal/docs"
	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
)

var docsSkipDiscovery bool

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Regenerate the markdown server inventory once",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		cfg, err := mcpconfig.Load(s.ConfigPath)
		if err != nil {
			return err
		}

		results := map[string][]string{}
		if !docsSkipDiscovery {
			engine, err := newEngine(s)
			if err != nil {
				return err
			}
			enabled := cfg.EnabledServers()
			targets := make([]string, 0, len(enabled))
			for name := range enabled {
				targets = append(targets, name)
			}
			results = discoverAll(cmd.Context(), engine, cfg, targets)
		}

		if err := docs.Update(s.DocsPath, cfg, results); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", s.DocsPath)
		return nil
	},
}

func init() {
	docsCmd.Flags().BoolVar(&docsSkipDiscovery, "no-discovery", false, "render from config only, without probing servers")
	rootCmd.AddCommand(docsCmd)
}
