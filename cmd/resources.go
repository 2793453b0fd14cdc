package cmd

import (
	awsec2 "github.com/elC0mpa/aws-manager/service/aws/ec2"
	awslambda "github.com/elC0mpa/aws-manager/service/aws/lambda"
	awsrds "github.com/elC0mpa/aws-manager/service/aws/rds"
	awss3 "github.com/elC0mpa/aws-manager/service/aws/s3"
	awssts "github.com/elC0mpa/aws-manager/service/aws/sts"
	"github.com/elC0mpa/aws-manager/service/orchestrator"
	"github.com/elC0mpa/aws-manager/utils"
	"github.com/spf13/cobra"
)

var resourcesCmd = &cobra.Command{
	Use:   "resources",
	Short: "Inspect active resources across services",
}

var resourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List active EC2, S3, RDS and Lambda resources",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		awsCfg, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		utils.StartSpinner()

		orchestratorService := orchestrator.NewService(
			awsec2.NewService(awsCfg),
			awss3.NewService(awsCfg),
			awsrds.NewService(awsCfg),
			awslambda.NewService(awsCfg),
		)
		report := orchestratorService.BuildInventory(ctx)

		// Identity only decorates the header; listing works without it
		accountID := ""
		if info, err := awssts.NewService(awsCfg).GetAccountInfo(ctx); err == nil {
			accountID = info.AccountID
		}

		utils.StopSpinner()
		utils.DrawInventory(accountID, report, flags.HighlightColor)
		return nil
	},
}

func init() {
	resourcesCmd.AddCommand(resourcesListCmd)
	rootCmd.AddCommand(resourcesCmd)
}
