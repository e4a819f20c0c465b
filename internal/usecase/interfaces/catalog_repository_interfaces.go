package interfaces

import (
	"context"

	"gestao_manutencao/internal/domain/entities"
)

// IProductRepository reads the parts catalog (price + current stock).
// A zero-ID product means "not found"; callers decide whether that is an
// error (parts entry) or a zero contribution (rollup).

type IProductRepository interface {
	GetByID(ctx context.Context, id string) (entities.Product, error)
}

// ITechnicianRepository reads technician records for labor costing.

type ITechnicianRepository interface {
	GetByID(ctx context.Context, id string) (entities.Technician, error)
}
