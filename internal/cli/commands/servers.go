package commands

import (
	"github.com/spf13/cobra"

	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
)

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "List the servers in the watched config",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		cfg, err := mcpconfig.Load(s.ConfigPath)
		if err != nil {
			return err
		}

		newFormatter().FormatServers(cfg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serversCmd)
}
