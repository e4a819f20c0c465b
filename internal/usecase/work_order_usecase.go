package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"gestao_manutencao/internal/domain/entities"
	"gestao_manutencao/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrWorkOrderNotFound  = errors.New("work order not found")
	ErrInvalidWorkOrderID = errors.New("invalid work order id")
	ErrInvalidAssetID     = errors.New("invalid asset_id")
	ErrInvalidTitle       = errors.New("invalid title")
	ErrInvalidPriority    = errors.New("invalid priority")
	ErrInvalidTechnician  = errors.New("invalid technician id")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrVersionConflict    = errors.New("work order version conflict")

	// Completion gate failures. Each one identifies which gate rejected the
	// transition so the caller can present an actionable message.
	ErrMediaRequired            = errors.New("before/after photos required")
	ErrChecklistCommentRequired = errors.New("checklist item marked NÃO OK requires a comment")
	ErrSignaturesRequired       = errors.New("technician and client signatures required")
	ErrIllegalTransition        = errors.New("illegal status transition")

	ErrInvalidPhotoKind = errors.New("invalid photo kind")
	ErrInvalidPhotoURL  = errors.New("invalid photo url")
)

// PhotoKind selects which half of the before/after evidence a photo fills.

type PhotoKind string

const (
	PhotoKindAntes  PhotoKind = "antes"
	PhotoKindDepois PhotoKind = "depois"
)

// CreateWorkOrderInput carries the creation-time fields. MediaObrigatoria is
// fixed here and never toggled afterwards.
type CreateWorkOrderInput struct {
	Title            string
	Description      string
	AssetID          string
	ClientID         string
	CreatedByUserID  string
	ResponsibleID    string
	Priority         entities.WorkOrderPriority
	MediaObrigatoria bool
	ScheduledDate    *time.Time
}

// IWorkOrderUseCase exposes the work order lifecycle operations.
//
//   - Create opens a ticket in ABERTA.
//   - RequestTransition owns the state machine and the completion gates.
//   - AttachPhoto fills the before/after evidence over time.
//   - AssignResponsible sets the technician used later for labor costing.

type IWorkOrderUseCase interface {
	Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error)
	GetByID(ctx context.Context, id string) (entities.WorkOrder, error)
	RequestTransition(ctx context.Context, id string, target entities.WorkOrderStatus) (entities.WorkOrder, error)
	AttachPhoto(ctx context.Context, id string, kind PhotoKind, url string) (entities.WorkOrder, error)
	AssignResponsible(ctx context.Context, id string, technicianID string) (entities.WorkOrder, error)
}

type WorkOrderUseCase struct {
	repo interfaces.IWorkOrderRepository
}

var _ IWorkOrderUseCase = (*WorkOrderUseCase)(nil)

func NewWorkOrderUseCase(repo interfaces.IWorkOrderRepository) *WorkOrderUseCase {
	return &WorkOrderUseCase{repo: repo}
}

func (u *WorkOrderUseCase) Create(ctx context.Context, in CreateWorkOrderInput) (entities.WorkOrder, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.AssetID = strings.TrimSpace(in.AssetID)
	if in.Title == "" {
		return entities.WorkOrder{}, ErrInvalidTitle
	}
	if in.AssetID == "" {
		return entities.WorkOrder{}, ErrInvalidAssetID
	}
	if in.Priority == "" {
		in.Priority = entities.WorkOrderPriorityMedia
	}
	if !in.Priority.Valid() {
		return entities.WorkOrder{}, ErrInvalidPriority
	}

	now := time.Now().UTC()
	w := entities.WorkOrder{
		ID:               uuid.NewString(),
		Status:           entities.WorkOrderStatusAberta,
		Priority:         in.Priority,
		AssetID:          in.AssetID,
		ClientID:         strings.TrimSpace(in.ClientID),
		CreatedByUserID:  strings.TrimSpace(in.CreatedByUserID),
		ResponsibleID:    strings.TrimSpace(in.ResponsibleID),
		CreationDate:     now,
		ScheduledDate:    in.ScheduledDate,
		Title:            in.Title,
		Description:      strings.TrimSpace(in.Description),
		MediaObrigatoria: in.MediaObrigatoria,
		Version:          1,
		UpdatedAt:        now,
	}
	created, err := u.repo.Create(ctx, w)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	log.Info().Str("work_order_id", created.ID).Str("asset_id", created.AssetID).Msg("work order created")
	return created, nil
}

func (u *WorkOrderUseCase) GetByID(ctx context.Context, id string) (entities.WorkOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	w, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}
	return w, nil
}

// RequestTransition loads the order, applies the pure transition and saves it
// with a compare-and-swap on the version. A rejected transition never writes.
func (u *WorkOrderUseCase) RequestTransition(ctx context.Context, id string, target entities.WorkOrderStatus) (entities.WorkOrder, error) {
	w, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}

	next, err := ApplyTransition(w, target, time.Now().UTC())
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if next.Status == w.Status {
		// Idempotent no-op: nothing changed, nothing to persist.
		return w, nil
	}
	log.Info().Str("work_order_id", w.ID).
		Str("from", string(w.Status)).Str("to", string(next.Status)).
		Msg("work order transition")
	return u.save(ctx, next, w.Version)
}

// ApplyTransition is the pure state machine: it returns the mutated copy of
// the order, or the error identifying the rejected gate/transition. The
// input order is never modified.
//
// Rules:
//   - same-status requests are no-ops, including on terminal orders;
//   - any other request on a terminal order is illegal;
//   - CANCELADA is reachable from any non-terminal state, ungated;
//   - CONCLUIDA only from EM_ANDAMENTO, gated on media, checklist comments
//     and both signatures (checked in that order);
//   - EM_ANDAMENTO from ABERTA or any waiting state; sets StartDate once;
//   - ABERTA (pause/reopen) from EM_ANDAMENTO or any waiting state;
//   - waiting states from ABERTA or EM_ANDAMENTO.
func ApplyTransition(w entities.WorkOrder, target entities.WorkOrderStatus, now time.Time) (entities.WorkOrder, error) {
	if !target.Valid() {
		return entities.WorkOrder{}, ErrInvalidStatus
	}
	if target == w.Status {
		return w, nil
	}
	if w.Status.Terminal() {
		return entities.WorkOrder{}, ErrIllegalTransition
	}

	next := w.Clone()
	switch target {
	case entities.WorkOrderStatusCancelada:
		// ungated

	case entities.WorkOrderStatusConcluida:
		if w.Status != entities.WorkOrderStatusEmAndamento {
			return entities.WorkOrder{}, ErrIllegalTransition
		}
		if !w.MediaSatisfied() {
			return entities.WorkOrder{}, ErrMediaRequired
		}
		if !w.ChecklistCommentsSatisfied() {
			return entities.WorkOrder{}, ErrChecklistCommentRequired
		}
		if !w.SignaturesComplete() {
			return entities.WorkOrder{}, ErrSignaturesRequired
		}
		if next.EndDate == nil {
			end := now
			next.EndDate = &end
		}

	case entities.WorkOrderStatusEmAndamento:
		if w.Status != entities.WorkOrderStatusAberta && !w.Status.Waiting() {
			return entities.WorkOrder{}, ErrIllegalTransition
		}
		if next.StartDate == nil {
			start := now
			next.StartDate = &start
		}

	case entities.WorkOrderStatusAberta:
		if w.Status != entities.WorkOrderStatusEmAndamento && !w.Status.Waiting() {
			return entities.WorkOrder{}, ErrIllegalTransition
		}
		// pause keeps StartDate

	default: // waiting states
		if w.Status != entities.WorkOrderStatusAberta && w.Status != entities.WorkOrderStatusEmAndamento {
			return entities.WorkOrder{}, ErrIllegalTransition
		}
	}

	next.Status = target
	next.UpdatedAt = now
	return next, nil
}

func (u *WorkOrderUseCase) AttachPhoto(ctx context.Context, id string, kind PhotoKind, url string) (entities.WorkOrder, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return entities.WorkOrder{}, ErrInvalidPhotoURL
	}
	if kind != PhotoKindAntes && kind != PhotoKindDepois {
		return entities.WorkOrder{}, ErrInvalidPhotoKind
	}

	w, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.Status.Terminal() {
		return entities.WorkOrder{}, ErrIllegalTransition
	}

	next := w.Clone()
	if kind == PhotoKindAntes {
		next.FotosAntesDepois.Antes = url
	} else {
		next.FotosAntesDepois.Depois = url
	}
	next.UpdatedAt = time.Now().UTC()
	return u.save(ctx, next, w.Version)
}

func (u *WorkOrderUseCase) AssignResponsible(ctx context.Context, id string, technicianID string) (entities.WorkOrder, error) {
	technicianID = strings.TrimSpace(technicianID)
	if technicianID == "" {
		return entities.WorkOrder{}, ErrInvalidTechnician
	}

	w, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.Status.Terminal() {
		return entities.WorkOrder{}, ErrIllegalTransition
	}

	next := w.Clone()
	next.ResponsibleID = technicianID
	next.UpdatedAt = time.Now().UTC()
	return u.save(ctx, next, w.Version)
}

// save performs the conditional write shared by every mutation path.
func (u *WorkOrderUseCase) save(ctx context.Context, w entities.WorkOrder, expectedVersion int) (entities.WorkOrder, error) {
	saved, err := u.repo.Update(ctx, w, expectedVersion)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if saved.ID == "" {
		return entities.WorkOrder{}, ErrVersionConflict
	}
	return saved, nil
}
