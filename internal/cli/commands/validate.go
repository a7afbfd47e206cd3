package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the watched MCP config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}
		cfg, err := mcpconfig.Load(s.ConfigPath)
		if err != nil {
			return err
		}

		result := mcpconfig.Validate(cfg)
		newFormatter().FormatValidation(result)
		if !result.Valid {
			return fmt.Errorf("%s failed validation", s.ConfigPath)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
