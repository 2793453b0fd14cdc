package service

import (
	"context"

	"github.com/elC0mpa/aws-manager/model"
)

// IdentityService provides account identity information
type IdentityService interface {
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}

// ComputeService lists and manages EC2 instances
type ComputeService interface {
	ListInstances(ctx context.Context) ([]model.Ec2Instance, error)
	Allocate(ctx context.Context, spec model.Ec2AllocationSpec) ([]string, error)
	Deallocate(ctx context.Context, instanceIDs []string, terminate bool) ([]string, error)
}

// StorageService lists and manages S3 buckets
type StorageService interface {
	ListBuckets(ctx context.Context) ([]model.S3Bucket, error)
	CreateBucket(ctx context.Context, name string) error
	DeleteBucket(ctx context.Context, name string, force bool) error
}

// DatabaseService lists RDS database instances
type DatabaseService interface {
	ListInstances(ctx context.Context) ([]model.RdsInstance, error)
}

// FunctionService lists Lambda functions
type FunctionService interface {
	ListFunctions(ctx context.Context) ([]model.LambdaFunction, error)
}

// BillingService provides cost and usage insight for the current month
type BillingService interface {
	GetMonthCost(ctx context.Context) (model.MonthCost, error)
	GetTopUsage(ctx context.Context, topN int) ([]model.UsageRow, error)
}

// StackService reconciles CloudFormation stacks against a desired template
type StackService interface {
	EnsureStack(ctx context.Context, input model.StackInput) (string, error)
}
