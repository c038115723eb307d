package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Manager struct {
	specs map[string]*ServiceSpec
}

func NewManager() *Manager {
	return &Manager{
		specs: make(map[string]*ServiceSpec),
	}
}

// LoadServiceSpec reads and parses a service file. Parsed specs are kept so
// repeated lookups during one invocation hit the same instance.
func (m *Manager) LoadServiceSpec(path string) (*ServiceSpec, error) {
	if spec, exists := m.specs[path]; exists {
		return spec, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read service file: %w", err)
	}

	var spec ServiceSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("failed to unmarshal service file: %w", err)
	}

	m.specs[path] = &spec
	return &spec, nil
}
