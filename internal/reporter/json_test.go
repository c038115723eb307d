package reporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reedyrm/serverless-api-cloudfront/internal/transform"
)

func TestJSONReporter_ReportBuild(t *testing.T) {
	var buf bytes.Buffer
	r := &JSONReporter{out: &buf}

	report := &transform.BuildReport{
		Resource:   "ApiDistribution",
		Aliases:    []string{"x.example.com"},
		PriceClass: "PriceClass_All",
		Comment:    "Serverless Managed dev-widgets-api",
		Compress:   true,
	}
	require.NoError(t, r.ReportBuild(report))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "ApiDistribution", decoded["resource"])
	assert.Equal(t, "x.example.com", decoded["cname"])
	assert.Equal(t, true, decoded["compress"])
}

func TestJSONReporter_ReportDeployment_CNAMEFallback(t *testing.T) {
	var buf bytes.Buffer
	r := &JSONReporter{out: &buf}

	require.NoError(t, r.ReportDeployment(&DeploymentInfo{
		DomainName: "d111111abcdef8.cloudfront.net",
	}))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "d111111abcdef8.cloudfront.net", decoded["domainName"])
	assert.Equal(t, "-", decoded["cname"])
}
