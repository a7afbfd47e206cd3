// Package settings persists the watcher's own configuration, separate
// from the MCP config file it watches.
package settings

import "time"

// DiscoverySettings tunes the tool-discovery engine.
type DiscoverySettings struct {
	TimeoutMs  int    `yaml:"timeout_ms" toml:"timeout_ms" json:"timeout_ms"`
	GraceMs    int    `yaml:"grace_ms" toml:"grace_ms" json:"grace_ms"`
	ScriptPath string `yaml:"script_path,omitempty" toml:"script_path,omitempty" json:"script_path,omitempty"`
}

// Settings represents global application configuration.
type Settings struct {
	ConfigPath string            `yaml:"config_path" toml:"config_path" json:"config_path"`
	DocsPath   string            `yaml:"docs_path" toml:"docs_path" json:"docs_path"`
	DebounceMs int               `yaml:"debounce_ms" toml:"debounce_ms" json:"debounce_ms"`
	Discovery  DiscoverySettings `yaml:"discovery" toml:"discovery" json:"discovery"`
}

// DefaultSettings returns the standard configuration.
func DefaultSettings() Settings {
	return Settings{
		DocsPath:   "MCP_SERVERS.md",
		DebounceMs: 500,
		Discovery: DiscoverySettings{
			TimeoutMs: 10000,
			GraceMs:   500,
		},
	}
}

// Timeout returns the discovery deadline as a duration.
func (s Settings) Timeout() time.Duration {
	return time.Duration(s.Discovery.TimeoutMs) * time.Millisecond
}

// Grace returns the pre-request grace delay as a duration.
func (s Settings) Grace() time.Duration {
	return time.Duration(s.Discovery.GraceMs) * time.Millisecond
}

// Debounce returns the watcher debounce window as a duration.
func (s Settings) Debounce() time.Duration {
	return time.Duration(s.DebounceMs) * time.Millisecond
}
