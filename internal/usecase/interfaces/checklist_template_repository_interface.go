package interfaces

import (
	"context"

	"gestao_manutencao/internal/domain/entities"
)

// IChecklistTemplateRepository reads immutable checklist templates.
// Templates are authored elsewhere; this service only binds them.

type IChecklistTemplateRepository interface {
	GetByID(ctx context.Context, id string) (entities.ChecklistTemplate, error)
}
