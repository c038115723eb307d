package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/reedyrm/serverless-api-cloudfront/internal/transform"
)

type JSONReporter struct {
	out io.Writer
}

func NewJSONReporter() *JSONReporter {
	return &JSONReporter{out: os.Stdout}
}

func (r *JSONReporter) ReportBuild(report *transform.BuildReport) error {
	return r.encode(map[string]interface{}{
		"resource":   report.Resource,
		"aliases":    report.Aliases,
		"priceClass": report.PriceClass,
		"comment":    report.Comment,
		"compress":   report.Compress,
		"cname":      report.CNAME(),
	})
}

func (r *JSONReporter) ReportDeployment(info *DeploymentInfo) error {
	cname := info.CNAME
	if cname == "" {
		cname = "-"
	}
	return r.encode(map[string]interface{}{
		"domainName": info.DomainName,
		"cname":      cname,
		"status":     info.Status,
	})
}

func (r *JSONReporter) encode(output map[string]interface{}) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}
