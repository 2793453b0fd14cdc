package cmd

import (
	"context"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/elC0mpa/aws-manager/model"
	awsconfig "github.com/elC0mpa/aws-manager/service/aws/config"
	"github.com/elC0mpa/aws-manager/utils"
	"github.com/spf13/cobra"
)

var flags model.Flags

// rootCmd is the main CLI entrypoint
var rootCmd = &cobra.Command{
	Use:           "aws-manager",
	Short:         "Manage AWS resources, costs, usage, and CloudFormation deployments",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		utils.PrintError(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flags.Profile, "profile", "", "AWS named profile to use")
	rootCmd.PersistentFlags().StringVar(&flags.Region, "region", "", "AWS region (overrides profile default)")
	rootCmd.PersistentFlags().StringVar(&flags.HighlightColor, "highlight-color", "cyan", "CLI highlight color (cyan, magenta, green, yellow, blue, red, white)")
}

func loadAWSConfig(ctx context.Context) (aws.Config, error) {
	return awsconfig.NewService().GetAWSCfg(ctx, flags.Region, flags.Profile)
}
