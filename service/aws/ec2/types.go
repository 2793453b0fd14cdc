package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/elC0mpa/aws-manager/model"
)

type service struct {
	client ec2API
}

type ec2API interface {
	DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
	RunInstances(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error)
	TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error)
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
}

type EC2Service interface {
	ListInstances(ctx context.Context) ([]model.Ec2Instance, error)
	Allocate(ctx context.Context, spec model.Ec2AllocationSpec) ([]string, error)
	Deallocate(ctx context.Context, instanceIDs []string, terminate bool) ([]string, error)
}
