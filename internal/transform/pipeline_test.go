package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/reedyrm/serverless-api-cloudfront/internal/config"
	"github.com/reedyrm/serverless-api-cloudfront/internal/resource"
	"github.com/reedyrm/serverless-api-cloudfront/internal/template"
	"github.com/reedyrm/serverless-api-cloudfront/internal/transform"
)

func TestTransform_EndToEnd(t *testing.T) {
	var spec config.ServiceSpec
	require.NoError(t, yaml.Unmarshal([]byte(`
service: widgets-api
provider:
  stage: dev
custom:
  apiCloudFront:
    domain: x.example.com
    cookies: all
    compress: true
`), &spec))

	base, err := template.LoadBase()
	require.NoError(t, err)

	doc, err := transform.Transform(base, transform.NewInput(&spec))
	require.NoError(t, err)

	cfg := template.DistributionConfigPath

	v, ok := resource.Get(doc, cfg+".Aliases")
	require.True(t, ok)
	assert.Equal(t, []interface{}{"x.example.com"}, v)

	v, _ = resource.Get(doc, cfg+".DefaultCacheBehavior.ForwardedValues.Cookies.Forward")
	assert.Equal(t, "all", v)

	v, _ = resource.Get(doc, cfg+".DefaultCacheBehavior.Compress")
	assert.Equal(t, true, v)

	for _, deleted := range []string{
		".Logging",
		".ViewerCertificate",
		".WebACLId",
		".CustomErrorResponses",
		".CacheBehaviors",
	} {
		_, ok := resource.Get(doc, cfg+deleted)
		assert.False(t, ok, "expected %s to be absent", deleted)
	}

	// Outputs from the base template survive the transformation untouched.
	_, ok = resource.Get(doc, "Outputs."+template.ResourceName)
	assert.True(t, ok)
}

func TestTransform_BaseIsNotMutated(t *testing.T) {
	var spec config.ServiceSpec
	require.NoError(t, yaml.Unmarshal([]byte(`
service: widgets-api
custom:
  apiCloudFront:
    domain: x.example.com
`), &spec))

	base, err := template.LoadBase()
	require.NoError(t, err)

	_, err = transform.Transform(base, transform.NewInput(&spec))
	require.NoError(t, err)

	// The base still carries its placeholder blocks, so a second build from
	// the same base behaves identically.
	_, ok := resource.Get(base, template.DistributionConfigPath+".Logging.Bucket")
	assert.True(t, ok)

	doc2, err := transform.Transform(base, transform.NewInput(&spec))
	require.NoError(t, err)

	v, _ := resource.Get(doc2, template.DistributionConfigPath+".Aliases")
	assert.Equal(t, []interface{}{"x.example.com"}, v)
}

func TestTransform_MissingDistributionConfig(t *testing.T) {
	var spec config.ServiceSpec

	_, err := transform.Transform(map[string]interface{}{}, transform.NewInput(&spec))
	assert.Error(t, err)
}

func TestBuild_MissingOriginsFails(t *testing.T) {
	var spec config.ServiceSpec
	require.NoError(t, yaml.Unmarshal([]byte("service: widgets-api"), &spec))

	dist := map[string]interface{}{
		"DefaultCacheBehavior": map[string]interface{}{
			"ForwardedValues": map[string]interface{}{
				"Cookies": map[string]interface{}{},
			},
		},
	}

	_, err := transform.Build(dist, transform.NewInput(&spec))
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	var spec config.ServiceSpec
	require.NoError(t, yaml.Unmarshal([]byte(`
service: widgets-api
provider:
  stage: prod
custom:
  apiCloudFront:
    domain:
      - a.example.com
      - b.example.com
    priceClass: PriceClass_200
    compress: true
`), &spec))

	base, err := template.LoadBase()
	require.NoError(t, err)

	doc, err := transform.Transform(base, transform.NewInput(&spec))
	require.NoError(t, err)

	report := transform.Summarize(doc)
	assert.Equal(t, template.ResourceName, report.Resource)
	assert.Equal(t, []string{"a.example.com", "b.example.com"}, report.Aliases)
	assert.Equal(t, "a.example.com", report.CNAME())
	assert.Equal(t, "PriceClass_200", report.PriceClass)
	assert.Equal(t, "Serverless Managed prod-widgets-api", report.Comment)
	assert.True(t, report.Compress)
}

func TestSummarize_NoAliases(t *testing.T) {
	var spec config.ServiceSpec
	require.NoError(t, yaml.Unmarshal([]byte("service: widgets-api"), &spec))

	base, err := template.LoadBase()
	require.NoError(t, err)

	doc, err := transform.Transform(base, transform.NewInput(&spec))
	require.NoError(t, err)

	report := transform.Summarize(doc)
	assert.Empty(t, report.Aliases)
	assert.Equal(t, "-", report.CNAME())
}
