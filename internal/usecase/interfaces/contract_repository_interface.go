package interfaces

import (
	"context"

	"gestao_manutencao/internal/domain/entities"
)

// IContractRepository reads maintenance contracts for the cost rollup and
// for monthly billing. Contract CRUD lives in the management app.

type IContractRepository interface {
	GetByID(ctx context.Context, id string) (entities.MaintenanceContract, error)
}

// IContractChargeRepository persists billing charges created for contracts.

type IContractChargeRepository interface {
	Create(ctx context.Context, c entities.ContractCharge) (entities.ContractCharge, error)
	ListByContractID(ctx context.Context, contractID string) ([]entities.ContractCharge, error)
}
