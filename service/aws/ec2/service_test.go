package awsec2

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/elC0mpa/aws-manager/model"
	svc "github.com/elC0mpa/aws-manager/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEc2API records every request so tests can assert on what would have
// gone over the wire.
type fakeEc2API struct {
	describeOutput *ec2.DescribeInstancesOutput
	describeErr    error

	runInput  *ec2.RunInstancesInput
	runOutput *ec2.RunInstancesOutput
	runErr    error

	terminateInput *ec2.TerminateInstancesInput
	stopInput      *ec2.StopInstancesInput

	calls int
}

func (f *fakeEc2API) DescribeInstances(ctx context.Context, params *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error) {
	f.calls++
	return f.describeOutput, f.describeErr
}

func (f *fakeEc2API) RunInstances(ctx context.Context, params *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error) {
	f.calls++
	f.runInput = params
	return f.runOutput, f.runErr
}

func (f *fakeEc2API) TerminateInstances(ctx context.Context, params *ec2.TerminateInstancesInput, optFns ...func(*ec2.Options)) (*ec2.TerminateInstancesOutput, error) {
	f.calls++
	f.terminateInput = params
	changes := make([]types.InstanceStateChange, 0, len(params.InstanceIds))
	for _, id := range params.InstanceIds {
		changes = append(changes, types.InstanceStateChange{InstanceId: aws.String(id)})
	}
	return &ec2.TerminateInstancesOutput{TerminatingInstances: changes}, nil
}

func (f *fakeEc2API) StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error) {
	f.calls++
	f.stopInput = params
	changes := make([]types.InstanceStateChange, 0, len(params.InstanceIds))
	for _, id := range params.InstanceIds {
		changes = append(changes, types.InstanceStateChange{InstanceId: aws.String(id)})
	}
	return &ec2.StopInstancesOutput{StoppingInstances: changes}, nil
}

func runOutputWithInstances(count int) *ec2.RunInstancesOutput {
	instances := make([]types.Instance, 0, count)
	for i := 0; i < count; i++ {
		instances = append(instances, types.Instance{
			InstanceId: aws.String(fmt.Sprintf("i-%03d", i)),
		})
	}
	return &ec2.RunInstancesOutput{Instances: instances}
}

func TestListInstances_FlattensReservations(t *testing.T) {
	launch := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	api := &fakeEc2API{
		describeOutput: &ec2.DescribeInstancesOutput{
			Reservations: []types.Reservation{
				{
					Instances: []types.Instance{
						{
							InstanceId:   aws.String("i-001"),
							InstanceType: types.InstanceTypeT3Micro,
							State:        &types.InstanceState{Name: types.InstanceStateNameRunning},
							Placement:    &types.Placement{AvailabilityZone: aws.String("us-east-1a")},
							LaunchTime:   aws.Time(launch),
							Tags: []types.Tag{
								{Key: aws.String("env"), Value: aws.String("prod")},
								{Key: aws.String("Name"), Value: aws.String("web-1")},
							},
						},
					},
				},
				{
					Instances: []types.Instance{
						// Provider may omit nearly everything
						{InstanceId: aws.String("i-002")},
					},
				},
			},
		},
	}
	s := &service{client: api}

	instances, err := s.ListInstances(context.Background())

	require.NoError(t, err)
	require.Len(t, instances, 2)
	assert.Equal(t, model.Ec2Instance{
		ID:               "i-001",
		Name:             "web-1",
		Type:             "t3.micro",
		State:            "running",
		AvailabilityZone: "us-east-1a",
		LaunchTime:       aws.Time(launch),
	}, instances[0])
	assert.Equal(t, "i-002", instances[1].ID)
	assert.Empty(t, instances[1].Name)
}

func TestListInstances_EmptyAccount(t *testing.T) {
	api := &fakeEc2API{describeOutput: &ec2.DescribeInstancesOutput{}}
	s := &service{client: api}

	instances, err := s.ListInstances(context.Background())

	require.NoError(t, err)
	assert.Empty(t, instances)
	assert.NotNil(t, instances)
}

func TestAllocate_OmitsAbsentOptionalFields(t *testing.T) {
	api := &fakeEc2API{runOutput: runOutputWithInstances(3)}
	s := &service{client: api}

	ids, err := s.Allocate(context.Background(), model.Ec2AllocationSpec{
		ImageID:      "ami-123",
		InstanceType: "t3.micro",
		Count:        3,
	})

	require.NoError(t, err)
	assert.Len(t, ids, 3)

	require.NotNil(t, api.runInput)
	assert.Nil(t, api.runInput.KeyName, "absent key name must not be sent")
	assert.Nil(t, api.runInput.SubnetId, "absent subnet must not be sent")
	assert.Nil(t, api.runInput.SecurityGroupIds)
	assert.Nil(t, api.runInput.TagSpecifications)
	assert.Equal(t, int32(3), aws.ToInt32(api.runInput.MinCount))
	assert.Equal(t, int32(3), aws.ToInt32(api.runInput.MaxCount))
}

func TestAllocate_SendsProvidedOptionalFields(t *testing.T) {
	api := &fakeEc2API{runOutput: runOutputWithInstances(1)}
	s := &service{client: api}

	_, err := s.Allocate(context.Background(), model.Ec2AllocationSpec{
		ImageID:          "ami-123",
		InstanceType:     "t3.micro",
		KeyName:          aws.String("deploy-key"),
		SecurityGroupIDs: []string{"sg-1", "sg-2"},
		SubnetID:         aws.String("subnet-9"),
		Count:            1,
		NameTag:          aws.String("web"),
	})

	require.NoError(t, err)
	assert.Equal(t, "deploy-key", aws.ToString(api.runInput.KeyName))
	assert.Equal(t, []string{"sg-1", "sg-2"}, api.runInput.SecurityGroupIds)
	assert.Equal(t, "subnet-9", aws.ToString(api.runInput.SubnetId))
	require.Len(t, api.runInput.TagSpecifications, 1)
	require.Len(t, api.runInput.TagSpecifications[0].Tags, 1)
	assert.Equal(t, "Name", aws.ToString(api.runInput.TagSpecifications[0].Tags[0].Key))
	assert.Equal(t, "web", aws.ToString(api.runInput.TagSpecifications[0].Tags[0].Value))
}

func TestAllocate_RejectsInvalidCount(t *testing.T) {
	api := &fakeEc2API{}
	s := &service{client: api}

	_, err := s.Allocate(context.Background(), model.Ec2AllocationSpec{
		ImageID:      "ami-123",
		InstanceType: "t3.micro",
		Count:        0,
	})

	var ia *svc.InvalidArgumentError
	require.ErrorAs(t, err, &ia)
	assert.Zero(t, api.calls, "invalid input must be rejected before any provider call")
}

func TestDeallocate_RejectsEmptyIDs(t *testing.T) {
	api := &fakeEc2API{}
	s := &service{client: api}

	_, err := s.Deallocate(context.Background(), nil, true)

	var ia *svc.InvalidArgumentError
	require.ErrorAs(t, err, &ia)
	assert.Zero(t, api.calls)
}

func TestDeallocate_TerminateVersusStop(t *testing.T) {
	api := &fakeEc2API{}
	s := &service{client: api}

	ids, err := s.Deallocate(context.Background(), []string{"i-001", "i-002"}, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"i-001", "i-002"}, ids)
	assert.NotNil(t, api.terminateInput)
	assert.Nil(t, api.stopInput)

	api = &fakeEc2API{}
	s = &service{client: api}

	ids, err = s.Deallocate(context.Background(), []string{"i-003"}, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"i-003"}, ids)
	assert.Nil(t, api.terminateInput)
	assert.NotNil(t, api.stopInput)
}
