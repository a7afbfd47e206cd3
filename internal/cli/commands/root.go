package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	clierrors "github.com/Saml1211/mcp-config-watcher/internal/cli/errors"
	"github.com/Saml1211/mcp-config-watcher/internal/cli/output"
	"github.com/Saml1211/mcp-config-watcher/internal/domain/discovery"
	"github.com/Saml1211/mcp-config-watcher/internal/domain/mcpconfig"
	"github.com/Saml1211/mcp-config-watcher/internal/logger"
	"github.com/Saml1211/mcp-config-watcher/internal/settings"
)

var (
	settingsFile string
	configFile   string
	jsonOutput   bool
	verbose      bool
	timeoutMs    int
)

var rootCmd = &cobra.Command{
	Use:   "mcp-watcher",
	Short: "Watch an MCP config file and keep its tool documentation current",
	Long: `mcp-config-watcher observes an MCP server configuration file (the
Claude Desktop claude_desktop_config.json format), probes the configured
servers to discover which tools they expose, and maintains a markdown
inventory that survives manual edits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVerbose(verbose)
		return logger.Init(appDir())
	},
}

// Execute runs the CLI.
func Execute() error {
	defer logger.Close()
	if err := rootCmd.Execute(); err != nil {
		newFormatter().FormatError(clierrors.Classify(err))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file (default is $XDG_CONFIG_HOME/mcp-config-watcher/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "MCP config file to watch (default is the Claude Desktop location)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug diagnostics")
	rootCmd.PersistentFlags().IntVar(&timeoutMs, "timeout", 0, "discovery timeout in milliseconds (overrides settings)")
}

func appDir() string {
	if dir := os.Getenv("MCP_WATCHER_CONFIG_DIR"); dir != "" {
		return dir
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = "."
	}
	return filepath.Join(configDir, "mcp-config-watcher")
}

// loadSettings reads the settings file and applies flag overrides.
func loadSettings() (settings.Settings, error) {
	path := settingsFile
	if path == "" {
		path = filepath.Join(appDir(), "config.yaml")
	}
	s, err := settings.NewStore(path).Load()
	if err != nil {
		return settings.Settings{}, err
	}

	if configFile != "" {
		s.ConfigPath = configFile
	}
	if s.ConfigPath == "" {
		s.ConfigPath, err = mcpconfig.DefaultPath()
		if err != nil {
			return settings.Settings{}, fmt.Errorf("could not determine config path: %w", err)
		}
	}
	if timeoutMs > 0 {
		s.Discovery.TimeoutMs = timeoutMs
	}
	return s, nil
}

// newEngine builds a discovery engine from settings.
func newEngine(s settings.Settings) (*discovery.Engine, error) {
	opts := []discovery.Option{
		discovery.WithTimeout(s.Timeout()),
		discovery.WithGrace(s.Grace()),
		discovery.WithSink(logger.NewSink("discovery")),
	}
	if s.Discovery.ScriptPath != "" {
		script, err := discovery.LoadScriptStrategy(s.Discovery.ScriptPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, discovery.WithScript(script))
	}
	return discovery.NewEngine(opts...), nil
}

func newFormatter() *output.Formatter {
	format := output.FormatText
	if jsonOutput {
		format = output.FormatJSON
	}
	return output.NewFormatter(os.Stdout, format, !jsonOutput)
}
