package reporter

import "github.com/reedyrm/serverless-api-cloudfront/internal/transform"

// DeploymentInfo is the post-deployment state worth telling the user about.
type DeploymentInfo struct {
	DomainName string
	CNAME      string
	Status     string
}

type Reporter interface {
	ReportBuild(report *transform.BuildReport) error
	ReportDeployment(info *DeploymentInfo) error
}
