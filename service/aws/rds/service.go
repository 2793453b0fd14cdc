package awsrds

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/elC0mpa/aws-manager/model"
	svc "github.com/elC0mpa/aws-manager/service"
)

func NewService(awsconfig aws.Config) *service {
	client := rds.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// ListInstances returns one record per database instance
func (s *service) ListInstances(ctx context.Context) ([]model.RdsInstance, error) {
	output, err := s.client.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{})
	if err != nil {
		return nil, svc.WrapProvider("rds", err)
	}

	instances := []model.RdsInstance{}
	for _, db := range output.DBInstances {
		instances = append(instances, model.RdsInstance{
			Identifier: aws.ToString(db.DBInstanceIdentifier),
			Class:      aws.ToString(db.DBInstanceClass),
			Engine:     aws.ToString(db.Engine),
			Status:     aws.ToString(db.DBInstanceStatus),
			MultiAZ:    aws.ToBool(db.MultiAZ),
		})
	}

	return instances, nil
}
