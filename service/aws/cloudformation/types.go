package awscloudformation

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/cloudformation"
	"github.com/elC0mpa/aws-manager/model"
)

type service struct {
	client       cfnAPI
	createWaiter stackWaiter
	updateWaiter stackWaiter
	waitTimeout  time.Duration
}

type cfnAPI interface {
	DescribeStacks(ctx context.Context, params *cloudformation.DescribeStacksInput, optFns ...func(*cloudformation.Options)) (*cloudformation.DescribeStacksOutput, error)
	CreateStack(ctx context.Context, params *cloudformation.CreateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.CreateStackOutput, error)
	UpdateStack(ctx context.Context, params *cloudformation.UpdateStackInput, optFns ...func(*cloudformation.Options)) (*cloudformation.UpdateStackOutput, error)
}

// stackWaiter narrows the SDK waiters to the one call this service makes.
// The create and update waiters carry different option types, so they are
// adapted through waiterFunc instead of being used directly.
type stackWaiter interface {
	Wait(ctx context.Context, params *cloudformation.DescribeStacksInput, maxWaitDur time.Duration) error
}

type waiterFunc func(ctx context.Context, params *cloudformation.DescribeStacksInput, maxWaitDur time.Duration) error

func (f waiterFunc) Wait(ctx context.Context, params *cloudformation.DescribeStacksInput, maxWaitDur time.Duration) error {
	return f(ctx, params, maxWaitDur)
}

type StackService interface {
	EnsureStack(ctx context.Context, input model.StackInput) (string, error)
}
