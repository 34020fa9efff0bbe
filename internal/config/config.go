package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatYAML     = "yaml"
	FormatJSON     = "json"
	FormatDocument = "document"
)

// Config is the root of a configuration file.
type Config struct {
	Version string  `yaml:"version" validate:"required,oneof=1"`
	Mapper  Mapper  `yaml:"mapper"`
	Output  Output  `yaml:"output"`
	Logging Logging `yaml:"logging"`
}

// Mapper holds the tree mapper options.
type Mapper struct {
	// MaxDepth of 0 means unlimited.
	MaxDepth   int  `yaml:"max_depth" validate:"gte=0"`
	WrapColumn int  `yaml:"wrap_column" validate:"gte=0"`
	ShowValues bool `yaml:"show_values"`
	// Suppress is a space-delimited list of IdShort or semantic id fragments.
	Suppress string `yaml:"suppress,omitempty"`
	// Include is a boolean expression selecting extra nodes to materialize.
	Include          string   `yaml:"include,omitempty"`
	ContainmentKinds []string `yaml:"containment_kinds,omitempty" validate:"dive,required"`
	// Hints maps a key kind to the style hints of its artifacts.
	Hints map[string]map[string]string `yaml:"hints,omitempty"`
}

// Output selects the result encoding.
type Output struct {
	Format string `yaml:"format" validate:"oneof=yaml json document"`
}

// Logging configures the logger.
type Logging struct {
	Level  string `yaml:"level" validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	var c Config
	applyDefaults(&c)

	return &c
}

// LoadFile loads and parses a YAML configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a Config, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config

	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&c)

	if err := Validate(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(c *Config) {
	if c.Version == "" {
		c.Version = "1"
	}

	if c.Mapper.ContainmentKinds == nil {
		c.Mapper.ContainmentKinds = []string{"Entity"}
	}

	if c.Output.Format == "" {
		c.Output.Format = FormatYAML
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
}

// Marshal serializes a Config to YAML.
func Marshal(c *Config) ([]byte, error) {
	return yaml.Marshal(c)
}
