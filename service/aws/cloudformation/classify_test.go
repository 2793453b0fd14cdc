package awscloudformation

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
)

// These tests pin the exact message substrings CloudFormation is known to
// emit. If the SDK ever changes the prose, classification breaks here first.

func TestIsStackMissing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "validation error with missing-stack message",
			err: &smithy.GenericAPIError{
				Code:    "ValidationError",
				Message: "Stack with id demo-stack does not exist",
			},
			want: true,
		},
		{
			name: "validation error with unrelated message",
			err: &smithy.GenericAPIError{
				Code:    "ValidationError",
				Message: "Template format error",
			},
			want: false,
		},
		{
			name: "other code with matching message",
			err: &smithy.GenericAPIError{
				Code:    "AccessDenied",
				Message: "stack does not exist",
			},
			want: false,
		},
		{
			name: "plain error with matching message",
			err:  errors.New("Stack with id demo-stack does not exist"),
			want: true,
		},
		{
			name: "wrapped api error",
			err: fmt.Errorf("describe failed: %w", &smithy.GenericAPIError{
				Code:    "ValidationError",
				Message: "Stack with id demo-stack does not exist",
			}),
			want: true,
		},
		{
			name: "nil",
			err:  nil,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isStackMissing(tt.err))
		})
	}
}

func TestIsNoUpdates(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "validation error with no-updates message",
			err: &smithy.GenericAPIError{
				Code:    "ValidationError",
				Message: "No updates are to be performed.",
			},
			want: true,
		},
		{
			name: "validation error with missing-stack message",
			err: &smithy.GenericAPIError{
				Code:    "ValidationError",
				Message: "Stack with id demo-stack does not exist",
			},
			want: false,
		},
		{
			name: "throttling error",
			err: &smithy.GenericAPIError{
				Code:    "Throttling",
				Message: "Rate exceeded",
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNoUpdates(tt.err))
		})
	}
}
