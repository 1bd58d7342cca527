// Package config reads chain definitions from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/MasterOfBinary/itemchain/processor"
)

// ChainConfig represents a processor chain as written in YAML.
type ChainConfig struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	LogLevel    string       `yaml:"log_level,omitempty"` // Level for per-step logging, empty to disable
	Steps       []StepConfig `yaml:"steps"`
}

// StepConfig represents one step of a chain.
type StepConfig struct {
	Name   string                 `yaml:"name,omitempty"`
	Type   string                 `yaml:"type"`             // Registered step type
	Config map[string]interface{} `yaml:"config,omitempty"` // Type-specific settings
}

// DisplayName returns the step name, or "<type>#<index>" if it has none.
func (s StepConfig) DisplayName(index int) string {
	if s.Name != "" {
		return s.Name
	}
	return fmt.Sprintf("%s#%d", s.Type, index)
}

// Validate checks the chain definition. An empty step list is reported as a
// *processor.ConfigurationError, the same error a Composite without
// processors produces.
func (c *ChainConfig) Validate() error {
	if c.Name == "" {
		return errors.New("chain name is required")
	}

	if len(c.Steps) == 0 {
		return &processor.ConfigurationError{Field: "Steps", Index: -1, Err: processor.ErrNoProcessors}
	}

	for i, step := range c.Steps {
		if step.Type == "" {
			return &processor.ConfigurationError{
				Field: "Steps",
				Index: i,
				Err:   fmt.Errorf("step '%s' has no type", step.DisplayName(i)),
			}
		}
	}

	if c.LogLevel != "" {
		if _, err := processor.ParseLogLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid log_level: %w", err)
		}
	}

	return nil
}

// Parse decodes and validates a chain definition. Unknown fields are
// rejected.
func Parse(data []byte) (*ChainConfig, error) {
	var cfg ChainConfig

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse chain YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid chain '%s': %w", cfg.Name, err)
	}

	return &cfg, nil
}

// LoadFile reads and parses the chain definition at path.
func LoadFile(path string) (*ChainConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read chain file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
