package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Store handles persistence of settings to a YAML or TOML file,
// selected by extension.
type Store struct {
	path string
}

// NewStore creates a settings store for the given file.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load reads settings from the file. A missing file is not an error:
// defaults are returned. Zero-valued fields are filled with defaults.
func (s *Store) Load() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return Settings{}, err
	}

	var cfg Settings
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("failed to parse settings %s: %w", s.path, err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

// Save writes settings to the file in the format its extension implies.
func (s *Store) Save(cfg Settings) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".toml":
		data, err = toml.Marshal(cfg)
	default:
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

func applyDefaults(cfg *Settings) {
	def := DefaultSettings()
	if cfg.DocsPath == "" {
		cfg.DocsPath = def.DocsPath
	}
	if cfg.DebounceMs == 0 {
		cfg.DebounceMs = def.DebounceMs
	}
	if cfg.Discovery.TimeoutMs == 0 {
		cfg.Discovery.TimeoutMs = def.Discovery.TimeoutMs
	}
	if cfg.Discovery.GraceMs == 0 {
		cfg.Discovery.GraceMs = def.Discovery.GraceMs
	}
}
