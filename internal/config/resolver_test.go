package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func specFromYAML(t *testing.T, doc string) *ServiceSpec {
	t.Helper()
	var spec ServiceSpec
	require.NoError(t, yaml.Unmarshal([]byte(doc), &spec))
	return &spec
}

func TestResolve_AbsentReturnsDefault(t *testing.T) {
	spec := specFromYAML(t, `
service: my-service
custom:
  apiCloudFront:
    priceClass: PriceClass_100
`)
	r := NewResolver(spec)

	assert.Equal(t, "fallback", r.Resolve("domain", "fallback", false))
	assert.Equal(t, "fallback", r.Resolve("logging.bucket", "fallback", false))
	assert.Nil(t, r.Resolve("missing.deeply.nested", nil, false))
}

func TestResolve_PresentValuePassesThrough(t *testing.T) {
	spec := specFromYAML(t, `
custom:
  apiCloudFront:
    priceClass: PriceClass_100
    compress: true
    domain:
      - a.example.com
      - b.example.com
    logging:
      bucket: my-bucket.s3.amazonaws.com
`)
	r := NewResolver(spec)

	assert.Equal(t, "PriceClass_100", r.Resolve("priceClass", "PriceClass_All", false))
	assert.Equal(t, true, r.Resolve("compress", false, false))
	assert.Equal(t, "my-bucket.s3.amazonaws.com", r.Resolve("logging.bucket", nil, false))
	assert.Equal(t,
		[]interface{}{"a.example.com", "b.example.com"},
		r.Resolve("domain", nil, false))
}

func TestResolve_FalsyValuesDefaultWithoutAllowEmpty(t *testing.T) {
	spec := specFromYAML(t, `
custom:
  apiCloudFront:
    emptyString: ""
    zero: 0
    disabled: false
    cleared: null
`)
	r := NewResolver(spec)

	assert.Equal(t, "def", r.Resolve("emptyString", "def", false))
	assert.Equal(t, 42, r.Resolve("zero", 42, false))
	assert.Equal(t, true, r.Resolve("disabled", true, false))
	assert.Equal(t, "def", r.Resolve("cleared", "def", false))
}

func TestResolve_AllowEmptyKeepsExplicitlyEmptyValues(t *testing.T) {
	spec := specFromYAML(t, `
custom:
  apiCloudFront:
    emptyString: ""
    emptyList: []
    emptyMap: {}
    cleared: null
`)
	r := NewResolver(spec)

	assert.Equal(t, "", r.Resolve("emptyString", "def", true))
	assert.Equal(t, []interface{}{}, r.Resolve("emptyList", "def", true))
	assert.Equal(t, map[string]interface{}{}, r.Resolve("emptyMap", "def", true))
	assert.Nil(t, r.Resolve("cleared", "def", true))
}

// allowEmpty widens only the empty-value exception. Falsy values that are not
// empty (false, 0) already pass through because the falsy check is gated on
// allowEmpty being false.
func TestResolve_AllowEmptyDoesNotAffectNonEmptyFalsy(t *testing.T) {
	spec := specFromYAML(t, `
custom:
  apiCloudFront:
    disabled: false
    zero: 0
`)
	r := NewResolver(spec)

	assert.Equal(t, false, r.Resolve("disabled", true, true))
	assert.Equal(t, 0, r.Resolve("zero", 42, true))
}

func TestResolve_AbsentBeatsAllowEmpty(t *testing.T) {
	spec := specFromYAML(t, `
custom:
  apiCloudFront: {}
`)
	r := NewResolver(spec)

	assert.Equal(t, "/dev", r.Resolve("originPath", "/dev", true))
}

func TestNewResolver_MissingNamespace(t *testing.T) {
	assert.Equal(t, "def", NewResolver(&ServiceSpec{}).Resolve("domain", "def", false))

	spec := specFromYAML(t, `
custom:
  otherPlugin:
    domain: x.example.com
`)
	assert.Equal(t, "def", NewResolver(spec).Resolve("domain", "def", false))
}

func TestResolve_PathThroughScalarIsAbsent(t *testing.T) {
	spec := specFromYAML(t, `
custom:
  apiCloudFront:
    logging: just-a-string
`)
	r := NewResolver(spec)

	assert.Equal(t, "def", r.Resolve("logging.bucket", "def", false))
}
