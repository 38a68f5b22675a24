package cli

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config are the optional settings read from ~/.family-tree/config.yaml.
// Flags and environment variables take precedence.
type Config struct {
	DBPath      string `yaml:"db_path"`
	GeocoderURL string `yaml:"geocoder_url"`
}

func loadConfig() Config {
	var cfg Config
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	b, err := os.ReadFile(filepath.Join(home, ".family-tree", "config.yaml"))
	if err != nil {
		return cfg
	}
	// A broken config file falls back to defaults rather than blocking
	// every command.
	yaml.Unmarshal(b, &cfg)
	return cfg
}
