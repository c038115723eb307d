package transform

import (
	"fmt"

	"github.com/reedyrm/serverless-api-cloudfront/internal/config"
	"github.com/reedyrm/serverless-api-cloudfront/internal/resource"
	"github.com/reedyrm/serverless-api-cloudfront/internal/template"
)

// Input carries everything the pipeline reads: the user configuration and
// the platform-supplied naming inputs.
type Input struct {
	Config  *config.Resolver
	Stage   string
	APIName string
}

// NewInput wires an Input from a parsed service spec.
func NewInput(spec *config.ServiceSpec) *Input {
	return &Input{
		Config:  config.NewResolver(spec),
		Stage:   spec.Stage(),
		APIName: spec.APIName(),
	}
}

type step func(p *resource.Patch, in *Input)

// pipeline lists every transformation in its fixed order. Later steps never
// observe the output of earlier ones, but all of them assume the base
// template's default sub-structures exist until the owning step deletes them.
var pipeline = []step{
	logging,
	aliases,
	priceClass,
	origin,
	cookies,
	headers,
	queryString,
	comment,
	certificate,
	webACL,
	compression,
	cachedMethods,
	ttls,
	rootObject,
	customErrorResponses,
	cacheBehaviors,
}

// Build runs the full step sequence against one distribution configuration
// and returns a new structure. The input is never mutated, so every build
// must start from a fresh base template.
func Build(distConfig map[string]interface{}, in *Input) (map[string]interface{}, error) {
	p := resource.NewPatch()
	for _, s := range pipeline {
		s(p, in)
	}
	return p.Apply(distConfig)
}

// Transform builds the distribution configuration inside a full template
// document and returns a new document with the result in place.
func Transform(doc map[string]interface{}, in *Input) (map[string]interface{}, error) {
	raw, ok := resource.Get(doc, template.DistributionConfigPath)
	if !ok {
		return nil, fmt.Errorf("base template has no %s", template.DistributionConfigPath)
	}
	distConfig, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("base template %s is not a mapping", template.DistributionConfigPath)
	}

	built, err := Build(distConfig, in)
	if err != nil {
		return nil, err
	}

	p := resource.NewPatch()
	p.Set(template.DistributionConfigPath, built)
	return p.Apply(doc)
}
