package template

import (
	_ "embed"
	"fmt"
	"os"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ResourceName is the logical id of the distribution resource in the base
// template. The stack output that carries the live domain name uses the same
// key.
const ResourceName = "ApiDistribution"

// DistributionConfigPath locates the distribution configuration inside the
// base template.
const DistributionConfigPath = "Resources." + ResourceName + ".Properties.DistributionConfig"

//go:embed distribution.yml
var baseTemplate []byte

// LoadBase parses the embedded placeholder template. Every configurable
// sub-block is present so the pipeline can populate or delete it.
func LoadBase() (map[string]interface{}, error) {
	return parse(baseTemplate)
}

// LoadFile parses a template from disk, for callers that override the
// embedded base.
func LoadFile(path string) (map[string]interface{}, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (map[string]interface{}, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal template: %w", err)
	}
	return doc, nil
}

// Merge deep-merges src into dst. Fields from src win over fields already in
// dst, matching how a generated resource is layered over a deployment
// document.
func Merge(dst, src map[string]interface{}) error {
	if err := mergo.Merge(&dst, src, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge templates: %w", err)
	}
	return nil
}

// Marshal renders a template document as YAML.
func Marshal(doc map[string]interface{}) ([]byte, error) {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal template: %w", err)
	}
	return data, nil
}
