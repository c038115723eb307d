package transform

import (
	"github.com/spf13/cast"

	"github.com/reedyrm/serverless-api-cloudfront/internal/resource"
	"github.com/reedyrm/serverless-api-cloudfront/internal/template"
)

// BuildReport is the reportable surface of a generated distribution.
type BuildReport struct {
	Resource   string
	Aliases    []string
	PriceClass string
	Comment    string
	Compress   bool
}

// CNAME returns the primary alias, or "-" when no alias is configured.
func (r *BuildReport) CNAME() string {
	if len(r.Aliases) == 0 {
		return "-"
	}
	return r.Aliases[0]
}

// Summarize extracts the reportable fields from a transformed template
// document. Missing fields stay zero-valued; a summary never fails.
func Summarize(doc map[string]interface{}) *BuildReport {
	report := &BuildReport{Resource: template.ResourceName}

	if v, ok := resource.Get(doc, template.DistributionConfigPath+".Aliases"); ok {
		report.Aliases = cast.ToStringSlice(v)
	}
	if v, ok := resource.Get(doc, template.DistributionConfigPath+".PriceClass"); ok {
		report.PriceClass = cast.ToString(v)
	}
	if v, ok := resource.Get(doc, template.DistributionConfigPath+".Comment"); ok {
		report.Comment = cast.ToString(v)
	}
	if v, ok := resource.Get(doc, template.DistributionConfigPath+".DefaultCacheBehavior.Compress"); ok {
		report.Compress = cast.ToBool(v)
	}

	return report
}
