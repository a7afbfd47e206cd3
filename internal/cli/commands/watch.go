package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Saml1211/mcp-config-watcher/internal/docs"
	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
	"github.com/Saml1211/mcp-config-watcher/internal/logger"
	"github.com/Saml1211/mcp-config-watcher/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the MCP config and keep the docs in sync",
	Long: `Runs until interrupted. On every real change to the MCP config file
the server list is re-probed and the markdown inventory regenerated,
preserving manual edits outside the managed blocks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		engine, err := newEngine(s)
		if err != nil {
			return err
		}
		sink := logger.NewSink("watch")

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		refresh := func() {
			cfg, err := mcpconfig.Load(s.ConfigPath)
			if err != nil {
				sink.Errorf("config reload failed: %v", err)
				return
			}
			// Changed config invalidates every memoized probe.
			engine.ClearCache()

			enabled := cfg.EnabledServers()
			targets := make([]string, 0, len(enabled))
			for name := range enabled {
				targets = append(targets, name)
			}
			results := discoverAll(ctx, engine, cfg, targets)

			if err := docs.Update(s.DocsPath, cfg, results); err != nil {
				sink.Errorf("docs update failed: %v", err)
				return
			}
			sink.Infof("docs updated: %s", s.DocsPath)
		}

		refresh()

		w := watcher.New(s.ConfigPath, s.Debounce(), func(string) { refresh() }, sink)
		if err := w.Start(ctx); err != nil {
			return err
		}

		<-ctx.Done()
		sink.Infof("shutting down")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
