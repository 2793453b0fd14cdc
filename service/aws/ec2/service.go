package awsec2

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/aws-manager/model"
	svc "github.com/elC0mpa/aws-manager/service"
)

const nameTagKey = "Name"

func NewService(awsconfig aws.Config) *service {
	client := ec2.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// ListInstances flattens every reservation into one sequence of instances.
// No state filtering happens here; callers decide which states to show.
func (s *service) ListInstances(ctx context.Context) ([]model.Ec2Instance, error) {
	output, err := s.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		return nil, svc.WrapProvider("ec2", err)
	}

	instances := []model.Ec2Instance{}
	for _, reservation := range output.Reservations {
		for _, instance := range reservation.Instances {
			record := model.Ec2Instance{
				ID:         aws.ToString(instance.InstanceId),
				Name:       nameFromTags(instance.Tags),
				Type:       string(instance.InstanceType),
				LaunchTime: instance.LaunchTime,
			}
			if instance.State != nil {
				record.State = string(instance.State.Name)
			}
			if instance.Placement != nil {
				record.AvailabilityZone = aws.ToString(instance.Placement.AvailabilityZone)
			}
			instances = append(instances, record)
		}
	}

	return instances, nil
}

// Allocate launches spec.Count instances. Optional fields stay absent from
// the request unless the caller provided them.
func (s *service) Allocate(ctx context.Context, spec model.Ec2AllocationSpec) ([]string, error) {
	if spec.Count < 1 {
		return nil, svc.InvalidArgumentf("instance count must be >= 1, got %d", spec.Count)
	}

	input := &ec2.RunInstancesInput{
		ImageId:      aws.String(spec.ImageID),
		InstanceType: types.InstanceType(spec.InstanceType),
		MinCount:     aws.Int32(spec.Count),
		MaxCount:     aws.Int32(spec.Count),
	}
	if spec.KeyName != nil {
		input.KeyName = spec.KeyName
	}
	if len(spec.SecurityGroupIDs) > 0 {
		input.SecurityGroupIds = spec.SecurityGroupIDs
	}
	if spec.SubnetID != nil {
		input.SubnetId = spec.SubnetID
	}
	if spec.NameTag != nil {
		input.TagSpecifications = []types.TagSpecification{
			{
				ResourceType: types.ResourceTypeInstance,
				Tags: []types.Tag{
					{Key: aws.String(nameTagKey), Value: spec.NameTag},
				},
			},
		}
	}

	output, err := s.client.RunInstances(ctx, input)
	if err != nil {
		return nil, svc.WrapProvider("ec2", err)
	}

	ids := make([]string, 0, len(output.Instances))
	for _, instance := range output.Instances {
		ids = append(ids, aws.ToString(instance.InstanceId))
	}
	return ids, nil
}

// Deallocate terminates or stops the given instances and returns the IDs the
// provider confirms as transitioning.
func (s *service) Deallocate(ctx context.Context, instanceIDs []string, terminate bool) ([]string, error) {
	if len(instanceIDs) == 0 {
		return nil, svc.InvalidArgumentf("no instance IDs given")
	}

	if terminate {
		output, err := s.client.TerminateInstances(ctx, &ec2.TerminateInstancesInput{
			InstanceIds: instanceIDs,
		})
		if err != nil {
			return nil, svc.WrapProvider("ec2", err)
		}

		ids := make([]string, 0, len(output.TerminatingInstances))
		for _, change := range output.TerminatingInstances {
			ids = append(ids, aws.ToString(change.InstanceId))
		}
		return ids, nil
	}

	output, err := s.client.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: instanceIDs,
	})
	if err != nil {
		return nil, svc.WrapProvider("ec2", err)
	}

	ids := make([]string, 0, len(output.StoppingInstances))
	for _, change := range output.StoppingInstances {
		ids = append(ids, aws.ToString(change.InstanceId))
	}
	return ids, nil
}

func nameFromTags(tags []types.Tag) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == nameTagKey {
			return aws.ToString(tag.Value)
		}
	}
	return ""
}
