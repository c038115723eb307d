package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reedyrm/serverless-api-cloudfront/internal/config"
	"github.com/reedyrm/serverless-api-cloudfront/internal/logger"
	"github.com/reedyrm/serverless-api-cloudfront/internal/reporter"
	"github.com/reedyrm/serverless-api-cloudfront/internal/template"
	"github.com/reedyrm/serverless-api-cloudfront/internal/transform"
)

var serviceFile string
var baseTemplateFile string
var deployTemplateFile string
var writeFile string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate the CloudFront distribution resource",
	Long: `Builds a fully populated AWS::CloudFront::Distribution resource from the
apiCloudFront block of the service file and merges it into the deployment
template when one is given.`,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&serviceFile, "service", "s", "serverless.yml", "service configuration file")
	buildCmd.Flags().StringVar(&baseTemplateFile, "base-template", "", "override the built-in distribution template")
	buildCmd.Flags().StringVarP(&deployTemplateFile, "template", "t", "", "deployment template to merge the resource into")
	buildCmd.Flags().StringVarP(&writeFile, "write", "w", "", "write the result to a file instead of stdout")
}

func runBuild(cmd *cobra.Command, args []string) error {
	spec, err := config.NewManager().LoadServiceSpec(serviceFile)
	if err != nil {
		return fmt.Errorf("failed to load service file: %w", err)
	}

	base, err := loadBaseTemplate()
	if err != nil {
		return err
	}

	logger.Debugf("building distribution for %s (stage %s)", spec.APIName(), spec.Stage())

	doc, err := transform.Transform(base, transform.NewInput(spec))
	if err != nil {
		return fmt.Errorf("failed to build distribution: %w", err)
	}

	if deployTemplateFile != "" {
		target, err := template.LoadFile(deployTemplateFile)
		if err != nil {
			return fmt.Errorf("failed to load deployment template: %w", err)
		}
		if err := template.Merge(target, doc); err != nil {
			return err
		}
		doc = target
	}

	data, err := template.Marshal(doc)
	if err != nil {
		return err
	}

	if writeFile == "" {
		fmt.Print(string(data))
		return nil
	}

	if err := os.WriteFile(writeFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write template: %w", err)
	}

	return newReporter().ReportBuild(transform.Summarize(doc))
}

func loadBaseTemplate() (map[string]interface{}, error) {
	if baseTemplateFile != "" {
		return template.LoadFile(baseTemplateFile)
	}
	return template.LoadBase()
}

func newReporter() reporter.Reporter {
	if viper.GetString("output") == "json" {
		return reporter.NewJSONReporter()
	}
	return reporter.NewConsoleReporter(viper.GetBool("verbose"))
}
