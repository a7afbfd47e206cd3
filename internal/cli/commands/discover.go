package commands

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cobra"

	"github.com/Saml1211/mcp-config-watcher/internal/domain/discovery"
	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
)

var discoverCmd = &cobra.Command{
	Use:   "discover [server...]",
	Short: "Probe configured servers for the tools they expose",
	Long: `Launches each named server (or every enabled server when none are
named) in discovery mode, captures its output, and extracts the tool
names it advertises.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		cfg, err := mcpconfig.Load(s.ConfigPath)
		if err != nil {
			return err
		}
		engine, err := newEngine(s)
		if err != nil {
			return err
		}

		targets := args
		if len(targets) == 0 {
			for name := range cfg.EnabledServers() {
				targets = append(targets, name)
			}
		}
		for _, name := range targets {
			if _, ok := cfg.McpServers[name]; !ok {
				return fmt.Errorf("server %q not found in %s", name, s.ConfigPath)
			}
		}

		results := discoverAll(cmd.Context(), engine, cfg, targets)
		newFormatter().FormatTools(results)
		return nil
	},
}

// discoverAll probes the given servers concurrently; each probe owns
// its own subprocess.
func discoverAll(ctx context.Context, engine *discovery.Engine, cfg *mcpconfig.Config, targets []string) map[string][]string {
	results := make(map[string][]string, len(targets))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, name := range targets {
		wg.Add(1)
		go func(name string, sc mcpconfig.ServerConfig) {
			defer wg.Done()
			tools := engine.DiscoverTools(ctx, name, sc)
			mu.Lock()
			results[name] = tools
			mu.Unlock()
		}(name, cfg.McpServers[name])
	}
	wg.Wait()
	return results
}

func init() {
	rootCmd.AddCommand(discoverCmd)
}
