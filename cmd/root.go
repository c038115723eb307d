package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reedyrm/serverless-api-cloudfront/internal/logger"
)

var cfgFile string
var verbose bool
var outputFormat string
var region string
var profile string

var rootCmd = &cobra.Command{
	Use:   "api-cloudfront",
	Short: "CloudFront distribution builder for API deployments",
	Long: `api-cloudfront turns a sparse apiCloudFront configuration block into a
fully populated AWS::CloudFront::Distribution resource ready to be merged
into a CloudFormation deployment template.

It can also report the live distribution domain name and the configured
CNAME once a stack has been deployed.`,
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.api-cloudfront.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "console", "output format (console, json)")
	rootCmd.PersistentFlags().StringVarP(&region, "region", "r", "us-east-1", "AWS region")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "AWS profile")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("region", rootCmd.PersistentFlags().Lookup("region"))
	viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".api-cloudfront")
	}

	viper.AutomaticEnv()

	level := "info"
	if verbose {
		level = "debug"
	}
	cobra.CheckErr(logger.Init(level))

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
