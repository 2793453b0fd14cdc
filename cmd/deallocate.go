package cmd

import (
	"fmt"
	"strings"

	awsec2 "github.com/elC0mpa/aws-manager/service/aws/ec2"
	awss3 "github.com/elC0mpa/aws-manager/service/aws/s3"
	"github.com/elC0mpa/aws-manager/utils"
	"github.com/spf13/cobra"
)

var (
	deallocateInstanceIDs string
	deallocateStop        bool

	deallocateBucketName string
	deallocateForce      bool
)

var deallocateCmd = &cobra.Command{
	Use:   "deallocate",
	Short: "Deallocate resources (stop/terminate/delete)",
}

var deallocateEc2Cmd = &cobra.Command{
	Use:   "ec2",
	Short: "Terminate or stop EC2 instances",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		awsCfg, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		ids := splitCommaList(deallocateInstanceIDs)
		acted, err := awsec2.NewService(awsCfg).Deallocate(ctx, ids, !deallocateStop)
		if err != nil {
			return err
		}

		action := "terminated"
		if deallocateStop {
			action = "stopped"
		}
		utils.PrintInfo(fmt.Sprintf("Instances %s: %s", action, strings.Join(acted, ", ")))
		return nil
	},
}

var deallocateS3Cmd = &cobra.Command{
	Use:   "s3",
	Short: "Delete an S3 bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		awsCfg, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		if err := awss3.NewService(awsCfg).DeleteBucket(ctx, deallocateBucketName, deallocateForce); err != nil {
			return err
		}

		utils.PrintInfo(fmt.Sprintf("Deleted bucket: %s", deallocateBucketName))
		return nil
	},
}

func init() {
	deallocateEc2Cmd.Flags().StringVar(&deallocateInstanceIDs, "instance-ids", "", "Comma-separated EC2 instance IDs")
	deallocateEc2Cmd.Flags().BoolVar(&deallocateStop, "stop", false, "Stop instead of terminate")
	_ = deallocateEc2Cmd.MarkFlagRequired("instance-ids")

	deallocateS3Cmd.Flags().StringVar(&deallocateBucketName, "name", "", "S3 bucket name")
	deallocateS3Cmd.Flags().BoolVar(&deallocateForce, "force", false, "Delete all objects before deleting bucket")
	_ = deallocateS3Cmd.MarkFlagRequired("name")

	deallocateCmd.AddCommand(deallocateEc2Cmd)
	deallocateCmd.AddCommand(deallocateS3Cmd)
	rootCmd.AddCommand(deallocateCmd)
}
