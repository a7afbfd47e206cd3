// Package mcpconfig models the MCP server configuration file this tool
// watches: the Claude Desktop style JSON document mapping server names
// to launch instructions.
package mcpconfig

import "sort"

// ServerConfig describes how to launch a single MCP server.
type ServerConfig struct {
	Command  string            `json:"command"`
	Args     []string          `json:"args,omitempty"`
	Env      map[string]string `json:"env,omitempty"`
	Disabled bool              `json:"disabled,omitempty"`
}

// Config is the top-level structure of the watched file.
type Config struct {
	McpServers map[string]ServerConfig `json:"mcpServers"`
}

// ServerNames returns the configured server names in sorted order.
func (c *Config) ServerNames() []string {
	names := make([]string, 0, len(c.McpServers))
	for name := range c.McpServers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EnabledServers returns the subset of servers not marked disabled.
func (c *Config) EnabledServers() map[string]ServerConfig {
	out := make(map[string]ServerConfig, len(c.McpServers))
	for name, sc := range c.McpServers {
		if !sc.Disabled {
			out[name] = sc
		}
	}
	return out
}
