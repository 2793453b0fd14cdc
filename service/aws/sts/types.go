package awssts

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/elC0mpa/aws-manager/model"
)

type service struct {
	client stsAPI
}

type stsAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type STSService interface {
	GetCallerIdentity(ctx context.Context) (*sts.GetCallerIdentityOutput, error)
	GetAccountInfo(ctx context.Context) (*model.AccountInfo, error)
}
