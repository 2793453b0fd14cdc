package orchestrator

import (
	"context"

	"github.com/elC0mpa/aws-manager/model"
	"github.com/elC0mpa/aws-manager/service"
)

func NewService(computeService service.ComputeService, storageService service.StorageService, databaseService service.DatabaseService, functionService service.FunctionService) *orchestratorService {
	return &orchestratorService{
		computeService:  computeService,
		storageService:  storageService,
		databaseService: databaseService,
		functionService: functionService,
	}
}

// BuildInventory queries every resource kind in turn. A kind that fails is
// recorded in the report's Failures and never stops the remaining kinds, so
// a missing permission on one service still yields a usable report.
func (s *orchestratorService) BuildInventory(ctx context.Context) *model.InventoryReport {
	report := &model.InventoryReport{}

	instances, err := s.computeService.ListInstances(ctx)
	if err != nil {
		report.Failures = append(report.Failures, model.KindFailure{Kind: "EC2", Err: err})
	} else {
		report.Instances = instances
	}

	buckets, err := s.storageService.ListBuckets(ctx)
	if err != nil {
		report.Failures = append(report.Failures, model.KindFailure{Kind: "S3", Err: err})
	} else {
		report.Buckets = buckets
	}

	databases, err := s.databaseService.ListInstances(ctx)
	if err != nil {
		report.Failures = append(report.Failures, model.KindFailure{Kind: "RDS", Err: err})
	} else {
		report.Databases = databases
	}

	functions, err := s.functionService.ListFunctions(ctx)
	if err != nil {
		report.Failures = append(report.Failures, model.KindFailure{Kind: "Lambda", Err: err})
	} else {
		report.Functions = functions
	}

	return report
}
