package orchestrator

import (
	"context"

	"github.com/elC0mpa/aws-manager/model"
	"github.com/elC0mpa/aws-manager/service"
)

type orchestratorService struct {
	computeService  service.ComputeService
	storageService  service.StorageService
	databaseService service.DatabaseService
	functionService service.FunctionService
}

type OrchestratorService interface {
	BuildInventory(ctx context.Context) *model.InventoryReport
}
