package cmd

import (
	"fmt"
	"strings"

	"github.com/elC0mpa/aws-manager/model"
	awsec2 "github.com/elC0mpa/aws-manager/service/aws/ec2"
	awss3 "github.com/elC0mpa/aws-manager/service/aws/s3"
	"github.com/elC0mpa/aws-manager/utils"
	"github.com/spf13/cobra"
)

var (
	allocateAmiID        string
	allocateInstanceType string
	allocateKeyName      string
	allocateSgIDs        string
	allocateSubnetID     string
	allocateCount        int32
	allocateNameTag      string

	allocateBucketName string
)

var allocateCmd = &cobra.Command{
	Use:   "allocate",
	Short: "Allocate resources (create/start)",
}

var allocateEc2Cmd = &cobra.Command{
	Use:   "ec2",
	Short: "Launch EC2 instances",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		awsCfg, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		spec := model.Ec2AllocationSpec{
			ImageID:      allocateAmiID,
			InstanceType: allocateInstanceType,
			Count:        allocateCount,
		}
		if allocateKeyName != "" {
			spec.KeyName = &allocateKeyName
		}
		if allocateSgIDs != "" {
			spec.SecurityGroupIDs = splitCommaList(allocateSgIDs)
		}
		if allocateSubnetID != "" {
			spec.SubnetID = &allocateSubnetID
		}
		if allocateNameTag != "" {
			spec.NameTag = &allocateNameTag
		}

		ids, err := awsec2.NewService(awsCfg).Allocate(ctx, spec)
		if err != nil {
			return err
		}

		utils.PrintInfo(fmt.Sprintf("Launched instances: %s", strings.Join(ids, ", ")))
		return nil
	},
}

var allocateS3Cmd = &cobra.Command{
	Use:   "s3",
	Short: "Create an S3 bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		awsCfg, err := loadAWSConfig(ctx)
		if err != nil {
			return err
		}

		if err := awss3.NewService(awsCfg).CreateBucket(ctx, allocateBucketName); err != nil {
			return err
		}

		utils.PrintInfo(fmt.Sprintf("Created bucket: %s", allocateBucketName))
		return nil
	},
}

func splitCommaList(value string) []string {
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}

func init() {
	allocateEc2Cmd.Flags().StringVar(&allocateAmiID, "ami-id", "", "AMI ID")
	allocateEc2Cmd.Flags().StringVar(&allocateInstanceType, "instance-type", "", "EC2 instance type, e.g., t3.micro")
	allocateEc2Cmd.Flags().StringVar(&allocateKeyName, "key-name", "", "EC2 key pair name")
	allocateEc2Cmd.Flags().StringVar(&allocateSgIDs, "sg", "", "Comma-separated security group IDs")
	allocateEc2Cmd.Flags().StringVar(&allocateSubnetID, "subnet-id", "", "Subnet ID")
	allocateEc2Cmd.Flags().Int32Var(&allocateCount, "count", 1, "Number of instances")
	allocateEc2Cmd.Flags().StringVar(&allocateNameTag, "name", "", "Value for Name tag")
	_ = allocateEc2Cmd.MarkFlagRequired("ami-id")
	_ = allocateEc2Cmd.MarkFlagRequired("instance-type")

	allocateS3Cmd.Flags().StringVar(&allocateBucketName, "name", "", "S3 bucket name")
	_ = allocateS3Cmd.MarkFlagRequired("name")

	allocateCmd.AddCommand(allocateEc2Cmd)
	allocateCmd.AddCommand(allocateS3Cmd)
	rootCmd.AddCommand(allocateCmd)
}
