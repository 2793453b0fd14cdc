package awscostexplorer

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/elC0mpa/aws-manager/model"
)

type service struct {
	client costExplorerAPI
}

type costExplorerAPI interface {
	GetCostAndUsage(ctx context.Context, params *costexplorer.GetCostAndUsageInput, optFns ...func(*costexplorer.Options)) (*costexplorer.GetCostAndUsageOutput, error)
}

type CostService interface {
	GetMonthCost(ctx context.Context) (model.MonthCost, error)
	GetTopUsage(ctx context.Context, topN int) ([]model.UsageRow, error)
}
