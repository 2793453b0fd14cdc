package cmd

import (
	"fmt"

	awscostexplorer "github.com/elC0mpa/aws-manager/service/aws/costexplorer"
	"github.com/elC0mpa/aws-manager/utils"
	"github.com/spf13/cobra"
)

var (
	usageTopN  int
	usageChart bool
)

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Cost and usage insights",
}

var billingShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the estimated spend for the current month",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		awsCfg, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		utils.StartSpinner()
		cost, err := awscostexplorer.NewService(awsCfg).GetMonthCost(ctx)
		utils.StopSpinner()
		if err != nil {
			return err
		}

		utils.PrintHeader("Current Month Cost", flags.HighlightColor)
		utils.PrintInfo(fmt.Sprintf("Estimated spend: %s %s", cost.Amount, cost.Unit))
		return nil
	},
}

var billingUsageCmd = &cobra.Command{
	Use:   "usage",
	Short: "Show the top services by usage for the current month",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		awsCfg, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		utils.StartSpinner()
		rows, err := awscostexplorer.NewService(awsCfg).GetTopUsage(ctx, usageTopN)
		utils.StopSpinner()
		if err != nil {
			return err
		}

		utils.DrawUsageTable(rows, flags.HighlightColor)
		if usageChart {
			utils.DrawUsageChart(rows)
		}
		return nil
	},
}

func init() {
	billingUsageCmd.Flags().IntVar(&usageTopN, "top", 10, "Show top N services by usage")
	billingUsageCmd.Flags().BoolVar(&usageChart, "chart", false, "Render the ranking as a bar chart")

	billingCmd.AddCommand(billingShowCmd)
	billingCmd.AddCommand(billingUsageCmd)
	rootCmd.AddCommand(billingCmd)
}
