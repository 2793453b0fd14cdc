package awslambda

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/lambda/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLambdaAPI pages through the configured outputs the way the service's
// paginator drives it.
type fakeLambdaAPI struct {
	pages map[string]*lambda.ListFunctionsOutput
	calls int
}

func (f *fakeLambdaAPI) ListFunctions(ctx context.Context, params *lambda.ListFunctionsInput, optFns ...func(*lambda.Options)) (*lambda.ListFunctionsOutput, error) {
	f.calls++
	return f.pages[aws.ToString(params.Marker)], nil
}

func TestListFunctions_ExhaustsAllPages(t *testing.T) {
	api := &fakeLambdaAPI{
		pages: map[string]*lambda.ListFunctionsOutput{
			"": {
				Functions: []types.FunctionConfiguration{
					{FunctionName: aws.String("ingest"), Runtime: types.RuntimeProvidedal2023, LastModified: aws.String("2026-01-15T10:00:00.000+0000")},
					{FunctionName: aws.String("transform"), Runtime: types.RuntimePython312},
				},
				NextMarker: aws.String("page-2"),
			},
			"page-2": {
				Functions: []types.FunctionConfiguration{
					{FunctionName: aws.String("notify"), Runtime: types.RuntimeNodejs20x},
				},
			},
		},
	}
	s := &service{client: api}

	functions, err := s.ListFunctions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, api.calls)
	require.Len(t, functions, 3)
	assert.Equal(t, "ingest", functions[0].Name)
	assert.Equal(t, "transform", functions[1].Name)
	assert.Equal(t, "notify", functions[2].Name)
	assert.Equal(t, "provided.al2023", functions[0].Runtime)
	assert.Equal(t, "2026-01-15T10:00:00.000+0000", functions[0].LastModified)
}

func TestListFunctions_EmptyAccount(t *testing.T) {
	api := &fakeLambdaAPI{
		pages: map[string]*lambda.ListFunctionsOutput{
			"": {},
		},
	}
	s := &service{client: api}

	functions, err := s.ListFunctions(context.Background())

	require.NoError(t, err)
	assert.Empty(t, functions)
	assert.NotNil(t, functions)
}
