// Package config loads and saves the YAML configuration that describes a
// host's registered literal types, their default values, and the scanning
// leniency the pattern matcher should apply.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// TypeConfig describes one registered literal type.
type TypeConfig struct {
	// Plural overrides the trailing-"s" pluralization rule for this
	// type's placeholder name: "always" or "never" forces the
	// plurality, empty means "use the default rule".
	Plural string `yaml:"plural,omitempty"`
	// Default, if set, registers a default provider for this type that
	// always resolves to this literal text.
	Default string `yaml:"default,omitempty"`
}

// Config is the top-level `.exprscript.yaml` shape.
type Config struct {
	Name  string                `yaml:"name"`
	Types map[string]TypeConfig `yaml:"types"`
	// LenientQuotes enables the quote-aware wildcard scanning the literal
	// list parser and placeholder resolver use by default; disabling it is
	// only useful for hosts whose script text never contains quoted spans.
	LenientQuotes bool `yaml:"lenient_quotes"`
}

// Default returns the starter configuration `exprscript init` writes out.
func Default() *Config {
	return &Config{
		Name:          "exprscript",
		Types:         map[string]TypeConfig{},
		LenientQuotes: true,
	}
}

// Load reads and parses a YAML config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &c, nil
}

// Save marshals c and writes it to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
