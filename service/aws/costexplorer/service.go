package awscostexplorer

import (
	"context"
	"sort"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer"
	"github.com/aws/aws-sdk-go-v2/service/costexplorer/types"
	"github.com/elC0mpa/aws-manager/model"
	svc "github.com/elC0mpa/aws-manager/service"
)

const (
	costsAggregation = "UnblendedCost"
	usageAggregation = "UsageQuantity"
	dateLayout       = "2006-01-02"
)

func NewService(awsconfig aws.Config) *service {
	client := costexplorer.NewFromConfig(awsconfig)
	return &service{
		client: client,
	}
}

// GetMonthCost returns the aggregated unblended cost for the elapsed current
// month. An empty result window means no billing data yet and yields a zero
// amount instead of an error.
func (s *service) GetMonthCost(ctx context.Context) (model.MonthCost, error) {
	start, end := s.currentMonthWindow()

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod: &types.DateInterval{
			Start: aws.String(start),
			End:   aws.String(end),
		},
		Metrics: []string{costsAggregation},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return model.MonthCost{}, svc.WrapProvider("costexplorer", err)
	}

	if len(output.ResultsByTime) == 0 {
		return model.MonthCost{Amount: "0.0", Unit: "USD"}, nil
	}

	total, ok := output.ResultsByTime[0].Total[costsAggregation]
	if !ok {
		return model.MonthCost{Amount: "0.0", Unit: "USD"}, nil
	}

	cost := model.MonthCost{Amount: "0.0", Unit: "USD"}
	if total.Amount != nil {
		cost.Amount = *total.Amount
	}
	if total.Unit != nil {
		cost.Unit = *total.Unit
	}
	return cost, nil
}

// GetTopUsage returns the topN services ranked by usage quantity for the
// elapsed current month, descending. Ties keep the provider-given order.
func (s *service) GetTopUsage(ctx context.Context, topN int) ([]model.UsageRow, error) {
	if topN <= 0 {
		return []model.UsageRow{}, nil
	}

	start, end := s.currentMonthWindow()

	input := &costexplorer.GetCostAndUsageInput{
		Granularity: types.GranularityMonthly,
		TimePeriod: &types.DateInterval{
			Start: aws.String(start),
			End:   aws.String(end),
		},
		Metrics: []string{usageAggregation},
		GroupBy: []types.GroupDefinition{
			{
				Key:  aws.String("SERVICE"),
				Type: types.GroupDefinitionTypeDimension,
			},
		},
	}

	output, err := s.client.GetCostAndUsage(ctx, input)
	if err != nil {
		return nil, svc.WrapProvider("costexplorer", err)
	}

	if len(output.ResultsByTime) == 0 {
		return []model.UsageRow{}, nil
	}

	rows := make([]model.UsageRow, 0, len(output.ResultsByTime[0].Groups))
	for _, group := range output.ResultsByTime[0].Groups {
		row := model.UsageRow{}
		if len(group.Keys) > 0 {
			row.Service = group.Keys[0]
		}
		if metric, ok := group.Metrics[usageAggregation]; ok {
			row.Amount, _ = strconv.ParseFloat(aws.ToString(metric.Amount), 64)
			row.Unit = aws.ToString(metric.Unit)
		}
		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Amount > rows[j].Amount
	})

	if topN < len(rows) {
		rows = rows[:topN]
	}
	return rows, nil
}

func (s *service) currentMonthWindow() (string, string) {
	now := time.Now()
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return firstOfMonth.Format(dateLayout), now.Format(dateLayout)
}
