// Package config handles optional page configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config controls presentation of the generated page. Every field is
// optional; zero values keep the compiled-in defaults. The category set,
// keyword rules, and base palette are fixed constants, not configuration.
type Config struct {
	Title     string            `yaml:"title,omitempty"`     // page <title> and heading
	Highlight []string          `yaml:"highlight,omitempty"` // regex patterns bolded in author lines
	Layout    string            `yaml:"layout,omitempty"`    // default layout when --layout is not given
	Colors    map[string]string `yaml:"colors,omitempty"`    // per-category accent color overrides
	Tints     map[string]string `yaml:"tints,omitempty"`     // per-category card background overrides
}

const (
	// ConfigFile is the default config file name, looked up next to the
	// input file when neither --config nor EnvConfig is set.
	ConfigFile = "pubpage.yml"
	// EnvConfig names the environment variable holding a config path.
	EnvConfig = "PUBPAGE_CONFIG"
)

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{
		Title: "Publications",
	}
}

// ResolvePath decides which config file to load: the explicit flag value
// wins, then the EnvConfig environment variable, then ConfigFile next to
// the input file.
func ResolvePath(flagPath, inputPath string) string {
	if flagPath != "" {
		return flagPath
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return filepath.Join(filepath.Dir(inputPath), ConfigFile)
}

// Load reads the config file at path. A missing file yields the defaults,
// not an error; a file that exists but does not parse is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}
