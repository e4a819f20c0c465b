package interfaces

import (
	"context"
	"time"

	"gestao_manutencao/internal/domain/entities"
)

// IWorkOrderRepository abstracts DynamoDB persistence for WorkOrder.
//
// Update is a compare-and-swap: it persists the order only when the stored
// version matches expectedVersion, incrementing it on success. A stale
// expectedVersion returns a zero-ID order (no error), so the use case can
// surface a conflict instead of silently overwriting a concurrent editor.

type IWorkOrderRepository interface {
	Create(ctx context.Context, w entities.WorkOrder) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	Update(ctx context.Context, w entities.WorkOrder, expectedVersion int) (entities.WorkOrder, error)
	ListByAssetID(ctx context.Context, assetID string, createdSince time.Time) ([]entities.WorkOrder, error)
}
