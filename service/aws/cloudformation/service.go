package awscloudformation

import (
	"context"
	"errors"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/aws/aws-sdk-go-v2/service/cloudformation/types"
	"github.com/elC0mpa/aws-manager/model"
	svc "github.com/elC0mpa/aws-manager/service"
)

var errNoStackDescribed = errors.New("describe returned no stacks")

// Upper bound handed to the SDK waiters, matching their default polling cadence
const defaultWaitTimeout = 60 * time.Minute

func NewService(awsconfig aws.Config) *service {
	client := cloudformation.NewFromConfig(awsconfig)
	createWaiter := cloudformation.NewStackCreateCompleteWaiter(client)
	updateWaiter := cloudformation.NewStackUpdateCompleteWaiter(client)

	return &service{
		client: client,
		createWaiter: waiterFunc(func(ctx context.Context, params *cloudformation.DescribeStacksInput, maxWaitDur time.Duration) error {
			return createWaiter.Wait(ctx, params, maxWaitDur)
		}),
		updateWaiter: waiterFunc(func(ctx context.Context, params *cloudformation.DescribeStacksInput, maxWaitDur time.Duration) error {
			return updateWaiter.Wait(ctx, params, maxWaitDur)
		}),
		waitTimeout: defaultWaitTimeout,
	}
}

// EnsureStack creates the stack if absent and updates it if present,
// absorbing the provider's "no updates" signal as success. Identical
// repeated calls return the same stack ID, the second one taking the no-op
// branch.
func (s *service) EnsureStack(ctx context.Context, input model.StackInput) (string, error) {
	exists, err := s.stackExists(ctx, input.Name)
	if err != nil {
		return "", err
	}

	if !exists {
		return s.createStack(ctx, input)
	}
	return s.updateStack(ctx, input)
}

func (s *service) stackExists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		if isStackMissing(err) {
			return false, nil
		}
		return false, svc.WrapProvider("cloudformation", err)
	}
	return true, nil
}

func (s *service) createStack(ctx context.Context, input model.StackInput) (string, error) {
	output, err := s.client.CreateStack(ctx, &cloudformation.CreateStackInput{
		StackName:    aws.String(input.Name),
		TemplateBody: aws.String(input.TemplateBody),
		Parameters:   buildParameters(input.Parameters),
		Capabilities: buildCapabilities(input.Capabilities),
	})
	if err != nil {
		return "", svc.WrapProvider("cloudformation", err)
	}

	err = s.createWaiter.Wait(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(input.Name),
	}, s.waitTimeout)
	if err != nil {
		return "", svc.WrapProvider("cloudformation", err)
	}

	return aws.ToString(output.StackId), nil
}

func (s *service) updateStack(ctx context.Context, input model.StackInput) (string, error) {
	output, err := s.client.UpdateStack(ctx, &cloudformation.UpdateStackInput{
		StackName:    aws.String(input.Name),
		TemplateBody: aws.String(input.TemplateBody),
		Parameters:   buildParameters(input.Parameters),
		Capabilities: buildCapabilities(input.Capabilities),
	})
	if err != nil {
		if isNoUpdates(err) {
			return s.currentStackID(ctx, input.Name)
		}
		return "", svc.WrapProvider("cloudformation", err)
	}

	err = s.updateWaiter.Wait(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(input.Name),
	}, s.waitTimeout)
	if err != nil {
		return "", svc.WrapProvider("cloudformation", err)
	}

	return aws.ToString(output.StackId), nil
}

func (s *service) currentStackID(ctx context.Context, name string) (string, error) {
	output, err := s.client.DescribeStacks(ctx, &cloudformation.DescribeStacksInput{
		StackName: aws.String(name),
	})
	if err != nil {
		return "", svc.WrapProvider("cloudformation", err)
	}
	if len(output.Stacks) == 0 {
		return "", svc.WrapProvider("cloudformation", errNoStackDescribed)
	}
	return aws.ToString(output.Stacks[0].StackId), nil
}

func buildParameters(parameters map[string]string) []types.Parameter {
	if len(parameters) == 0 {
		return nil
	}
	params := make([]types.Parameter, 0, len(parameters))
	for key, value := range parameters {
		params = append(params, types.Parameter{
			ParameterKey:   aws.String(key),
			ParameterValue: aws.String(value),
		})
	}
	return params
}

func buildCapabilities(capabilities []string) []types.Capability {
	caps := make([]types.Capability, 0, len(capabilities))
	for _, capability := range capabilities {
		caps = append(caps, types.Capability(capability))
	}
	return caps
}
