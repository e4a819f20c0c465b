package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_manutencao/internal/domain/entities"
	"gestao_manutencao/internal/usecase/interfaces"
)

var (
	ErrInvalidTemplateID = errors.New("invalid checklist template id")
	ErrTemplateNotFound  = errors.New("checklist template not found")
	ErrCommentRequired   = errors.New("comment required for item marked NÃO OK")
	ErrIndexOutOfRange   = errors.New("checklist index out of range")
	ErrInvalidItemStatus = errors.New("invalid checklist item status")
	ErrNoChecklistBound  = errors.New("work order has no checklist")
)

// IChecklistUseCase binds templates to work orders and updates item answers.
//
//   - BindTemplate deep-copies the template once; a second bind is a no-op.
//   - SetItemStatus enforces the NÃO OK comment rule at entry time. The same
//     rule is re-checked by the completion gate, which is the authoritative
//     enforcement point.

type IChecklistUseCase interface {
	BindTemplate(ctx context.Context, workOrderID, templateID string) (entities.WorkOrder, error)
	SetItemStatus(ctx context.Context, workOrderID string, groupIndex, itemIndex int, status entities.ChecklistItemStatus, comment string) (entities.WorkOrder, error)
}

type ChecklistUseCase struct {
	orders    interfaces.IWorkOrderRepository
	templates interfaces.IChecklistTemplateRepository
}

var _ IChecklistUseCase = (*ChecklistUseCase)(nil)

func NewChecklistUseCase(orders interfaces.IWorkOrderRepository, templates interfaces.IChecklistTemplateRepository) *ChecklistUseCase {
	return &ChecklistUseCase{orders: orders, templates: templates}
}

func (u *ChecklistUseCase) BindTemplate(ctx context.Context, workOrderID, templateID string) (entities.WorkOrder, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	templateID = strings.TrimSpace(templateID)
	if workOrderID == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if templateID == "" {
		return entities.WorkOrder{}, ErrInvalidTemplateID
	}

	w, err := u.orders.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	if w.Checklist != nil {
		// Idempotent: the order already owns a checklist instance.
		return w, nil
	}

	t, err := u.templates.GetByID(ctx, templateID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if t.ID == "" {
		return entities.WorkOrder{}, ErrTemplateNotFound
	}

	next := w.Clone()
	instance := t.Instantiate()
	next.Checklist = &instance
	next.UpdatedAt = time.Now().UTC()

	saved, err := u.orders.Update(ctx, next, w.Version)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if saved.ID == "" {
		return entities.WorkOrder{}, ErrVersionConflict
	}
	return saved, nil
}

// SetItemStatus records an answer for one checklist item. Indices out of
// range indicate a caller defect and fail loudly; the comment rule is a
// business rejection recovered by the caller.
func (u *ChecklistUseCase) SetItemStatus(ctx context.Context, workOrderID string, groupIndex, itemIndex int, status entities.ChecklistItemStatus, comment string) (entities.WorkOrder, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if !status.Valid() {
		return entities.WorkOrder{}, ErrInvalidItemStatus
	}
	if status == entities.ChecklistItemStatusNaoOK && strings.TrimSpace(comment) == "" {
		return entities.WorkOrder{}, ErrCommentRequired
	}

	w, err := u.orders.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	if w.Checklist == nil {
		return entities.WorkOrder{}, ErrNoChecklistBound
	}
	if groupIndex < 0 || groupIndex >= len(w.Checklist.Groups) {
		return entities.WorkOrder{}, ErrIndexOutOfRange
	}
	if itemIndex < 0 || itemIndex >= len(w.Checklist.Groups[groupIndex].Items) {
		return entities.WorkOrder{}, ErrIndexOutOfRange
	}

	next := w.Clone()
	item := &next.Checklist.Groups[groupIndex].Items[itemIndex]
	item.Status = status
	item.Comment = strings.TrimSpace(comment)
	next.UpdatedAt = time.Now().UTC()

	saved, err := u.orders.Update(ctx, next, w.Version)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if saved.ID == "" {
		return entities.WorkOrder{}, ErrVersionConflict
	}
	return saved, nil
}
