package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FromYAML parses an indentation configuration from YAML bytes.
// Missing fields keep their defaults; the result is validated.
func FromYAML(data []byte) (Indentation, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Indentation{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Indentation{}, err
	}
	return cfg, nil
}

// Load reads and parses an indentation configuration file.
func Load(path string) (Indentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Indentation{}, fmt.Errorf("read config: %w", err)
	}
	return FromYAML(data)
}

// ToYAML serializes the configuration to YAML format.
func (c Indentation) ToYAML() ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}

	return buf.Bytes(), nil
}
