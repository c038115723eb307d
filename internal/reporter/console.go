package reporter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/reedyrm/serverless-api-cloudfront/internal/transform"
)

type ConsoleReporter struct {
	verbose bool
}

func NewConsoleReporter(verbose bool) *ConsoleReporter {
	return &ConsoleReporter{
		verbose: verbose,
	}
}

func (r *ConsoleReporter) ReportBuild(report *transform.BuildReport) error {
	color.Green("✅ %s generated", report.Resource)
	fmt.Println(strings.Repeat("-", 40))

	fmt.Printf("Aliases:     %s\n", r.formatAliases(report.Aliases))
	fmt.Printf("Price class: %s\n", report.PriceClass)
	fmt.Printf("Compress:    %t\n", report.Compress)

	if r.verbose {
		fmt.Printf("Comment:     %s\n", report.Comment)
	}

	return nil
}

func (r *ConsoleReporter) ReportDeployment(info *DeploymentInfo) error {
	fmt.Printf("CloudFront domain name: %s\n", color.CyanString(info.DomainName))
	cname := info.CNAME
	if cname == "" {
		cname = "-"
	}
	fmt.Printf("CNAME: %s\n", cname)

	if r.verbose && info.Status != "" {
		fmt.Printf("Status: %s\n", info.Status)
	}

	return nil
}

func (r *ConsoleReporter) formatAliases(aliases []string) string {
	if len(aliases) == 0 {
		return "-"
	}
	return strings.Join(aliases, ", ")
}
