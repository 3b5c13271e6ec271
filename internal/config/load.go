package config

import (
	"fmt"
	"os"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"
)

// LoadFile reads a description from a YAML file. Unknown keys are dropped
// silently: the description is shaped, not validated. The missing-account-id
// precondition is enforced by the reconciler, not here.
func LoadFile(path string) (*Description, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read description file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML description.
func Parse(data []byte) (*Description, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var desc Description
	if err := mapstructure.Decode(raw, &desc); err != nil {
		return nil, fmt.Errorf("failed to decode description: %w", err)
	}

	applyDefaults(&desc)
	return &desc, nil
}

// WriteFile renders the description as YAML to path.
func WriteFile(desc *Description, path string) error {
	data, err := yaml.Marshal(desc)
	if err != nil {
		return fmt.Errorf("failed to marshal description: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write description file: %w", err)
	}
	return nil
}

func applyDefaults(desc *Description) {
	if desc.WebProperty != nil {
		shapeWebProperty(desc.WebProperty)
	}
	for i := range desc.Views {
		shapeView(&desc.Views[i])
	}
}
