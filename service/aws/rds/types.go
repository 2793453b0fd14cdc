package awsrds

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/elC0mpa/aws-manager/model"
)

type service struct {
	client rdsAPI
}

type rdsAPI interface {
	DescribeDBInstances(ctx context.Context, params *rds.DescribeDBInstancesInput, optFns ...func(*rds.Options)) (*rds.DescribeDBInstancesOutput, error)
}

type RDSService interface {
	ListInstances(ctx context.Context) ([]model.RdsInstance, error)
}
