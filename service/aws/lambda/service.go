package awslambda

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/elC0mpa/aws-manager/model"
	svc "github.com/elC0mpa/aws-manager/service"
)

func NewService(awsconfig aws.Config) *service {
	client := lambda.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// ListFunctions exhausts every result page before returning, preserving the
// provider-given order.
func (s *service) ListFunctions(ctx context.Context) ([]model.LambdaFunction, error) {
	paginator := lambda.NewListFunctionsPaginator(s.client, &lambda.ListFunctionsInput{})

	functions := []model.LambdaFunction{}
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, svc.WrapProvider("lambda", err)
		}

		for _, fn := range page.Functions {
			functions = append(functions, model.LambdaFunction{
				Name:         aws.ToString(fn.FunctionName),
				Runtime:      string(fn.Runtime),
				LastModified: aws.ToString(fn.LastModified),
			})
		}
	}

	return functions, nil
}
