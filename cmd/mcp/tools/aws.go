package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/elC0mpa/aws-manager/cmd/mcp/response"
	awsconfig "github.com/elC0mpa/aws-manager/service/aws/config"
	awscostexplorer "github.com/elC0mpa/aws-manager/service/aws/costexplorer"
	awsec2 "github.com/elC0mpa/aws-manager/service/aws/ec2"
	awslambda "github.com/elC0mpa/aws-manager/service/aws/lambda"
	awsrds "github.com/elC0mpa/aws-manager/service/aws/rds"
	awss3 "github.com/elC0mpa/aws-manager/service/aws/s3"
	awssts "github.com/elC0mpa/aws-manager/service/aws/sts"
	"github.com/elC0mpa/aws-manager/service/orchestrator"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterAWSTools registers the read-only AWS tools with the MCP server.
// Mutations (allocate, deallocate, deploy) stay CLI-only.
func RegisterAWSTools(s *server.MCPServer, region, profile string) {
	s.AddTool(
		mcp.NewTool("aws_get_account_info",
			mcp.WithDescription("Get AWS account identity information including account ID and ARN"),
		),
		makeAccountInfoHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_list_resources",
			mcp.WithDescription("List EC2 instances, S3 buckets, RDS instances and Lambda functions; kinds that cannot be listed are reported as warnings"),
		),
		makeListResourcesHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_get_month_cost",
			mcp.WithDescription("Get the aggregated unblended cost for the elapsed current month"),
		),
		makeMonthCostHandler(region, profile),
	)

	s.AddTool(
		mcp.NewTool("aws_get_top_usage",
			mcp.WithDescription("Get the top services ranked by usage quantity for the current month"),
			mcp.WithNumber("top_n",
				mcp.Description("Number of services to return (default 10)"),
			),
		),
		makeTopUsageHandler(region, profile),
	)
}

func loadConfig(ctx context.Context, region, profile string) (aws.Config, error) {
	return awsconfig.NewService().GetAWSCfg(ctx, region, profile)
}

func makeAccountInfoHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		awsCfg, err := loadConfig(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		info, err := awssts.NewService(awsCfg).GetAccountInfo(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get account info: %v", err)), nil
		}

		resp := response.ConvertAccountInfo(info)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeListResourcesHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		awsCfg, err := loadConfig(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		orchestratorService := orchestrator.NewService(
			awsec2.NewService(awsCfg),
			awss3.NewService(awsCfg),
			awsrds.NewService(awsCfg),
			awslambda.NewService(awsCfg),
		)
		report := orchestratorService.BuildInventory(ctx)

		resp := response.ConvertInventoryReport(report)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeMonthCostHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		awsCfg, err := loadConfig(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		cost, err := awscostexplorer.NewService(awsCfg).GetMonthCost(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get month cost: %v", err)), nil
		}

		data, _ := json.MarshalIndent(response.MonthCost{
			Amount:   cost.Amount,
			Currency: cost.Unit,
		}, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeTopUsageHandler(region, profile string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		awsCfg, err := loadConfig(ctx, region, profile)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to configure AWS: %v", err)), nil
		}

		topN := 10
		if args := request.GetArguments(); args != nil {
			if value, ok := args["top_n"].(float64); ok {
				topN = int(value)
			}
		}

		rows, err := awscostexplorer.NewService(awsCfg).GetTopUsage(ctx, topN)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to get usage: %v", err)), nil
		}

		resp := response.ConvertUsageRows(rows)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
