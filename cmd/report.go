package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reedyrm/serverless-api-cloudfront/internal/aws"
	"github.com/reedyrm/serverless-api-cloudfront/internal/config"
	"github.com/reedyrm/serverless-api-cloudfront/internal/logger"
	"github.com/reedyrm/serverless-api-cloudfront/internal/reporter"
	"github.com/reedyrm/serverless-api-cloudfront/internal/resource"
	"github.com/reedyrm/serverless-api-cloudfront/internal/template"
)

var reportServiceFile string
var stackName string
var distributionID string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Report the deployed distribution's domain name and CNAME",
	Long: `Looks up the deployed stack's outputs and prints the live CloudFront
domain name together with the configured CNAME. Nothing is printed when the
stack carries no distribution output.`,
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportServiceFile, "service", "s", "serverless.yml", "service configuration file")
	reportCmd.Flags().StringVar(&stackName, "stack", "", "stack name (default <service>-<stage>)")
	reportCmd.Flags().StringVar(&distributionID, "distribution-id", "", "also fetch the live distribution state")
}

func runReport(cmd *cobra.Command, args []string) error {
	spec, err := config.NewManager().LoadServiceSpec(reportServiceFile)
	if err != nil {
		return fmt.Errorf("failed to load service file: %w", err)
	}

	stack := stackName
	if stack == "" {
		stack = spec.StackName()
	}

	awsClient, err := aws.NewClient(
		viper.GetString("region"),
		viper.GetString("profile"),
	)
	if err != nil {
		return fmt.Errorf("failed to initialize AWS client: %w", err)
	}

	ctx := context.Background()

	outputs, err := awsClient.GetStackOutputs(ctx, stack)
	if err != nil {
		return fmt.Errorf("failed to fetch stack outputs: %w", err)
	}

	domainName, ok := outputs[template.ResourceName]
	if !ok {
		// Best-effort report: a stack without the distribution output is
		// not an error, there is just nothing to say.
		logger.Debugf("stack %s has no %s output", stack, template.ResourceName)
		return nil
	}

	info := &reporter.DeploymentInfo{
		DomainName: domainName,
		CNAME:      configuredCNAME(spec),
	}

	if distributionID != "" {
		dist, err := awsClient.GetDistribution(ctx, distributionID)
		if err != nil {
			logger.Warnf("could not fetch distribution %s: %v", distributionID, err)
		} else {
			info.Status = dist.Status
		}
	}

	return newReporter().ReportDeployment(info)
}

// configuredCNAME returns the first configured domain alias, if any.
func configuredCNAME(spec *config.ServiceSpec) string {
	v := config.NewResolver(spec).Resolve("domain", nil, false)
	if v == nil {
		return ""
	}
	if seq, ok := resource.Sequence(v); ok {
		if len(seq) == 0 {
			return ""
		}
		return cast.ToString(seq[0])
	}
	return cast.ToString(v)
}
