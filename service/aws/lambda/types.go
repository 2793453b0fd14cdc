package awslambda

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/elC0mpa/aws-manager/model"
)

type service struct {
	client lambda.ListFunctionsAPIClient
}

type LambdaService interface {
	ListFunctions(ctx context.Context) ([]model.LambdaFunction, error)
}
