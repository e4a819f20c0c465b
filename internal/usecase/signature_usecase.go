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
	ErrAlreadySigned       = errors.New("signature already captured for this role")
	ErrInvalidSignRole     = errors.New("invalid signature role")
	ErrInvalidSignatureURL = errors.New("invalid signature url")
)

// SignRole identifies which party is signing the work order.

type SignRole string

const (
	SignRoleTecnico SignRole = "tecnico"
	SignRoleCliente SignRole = "cliente"
)

// ISignatureUseCase captures the dual signatures required for closure.
//
// Each signature pair (URL + timestamp) is recorded together, exactly once.
// Re-signature requires a new ticket in this design.

type ISignatureUseCase interface {
	Capture(ctx context.Context, workOrderID string, role SignRole, signatureURL string) (entities.WorkOrder, error)
}

type SignatureUseCase struct {
	orders interfaces.IWorkOrderRepository
}

var _ ISignatureUseCase = (*SignatureUseCase)(nil)

func NewSignatureUseCase(orders interfaces.IWorkOrderRepository) *SignatureUseCase {
	return &SignatureUseCase{orders: orders}
}

func (u *SignatureUseCase) Capture(ctx context.Context, workOrderID string, role SignRole, signatureURL string) (entities.WorkOrder, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	signatureURL = strings.TrimSpace(signatureURL)
	if workOrderID == "" {
		return entities.WorkOrder{}, ErrInvalidWorkOrderID
	}
	if signatureURL == "" {
		return entities.WorkOrder{}, ErrInvalidSignatureURL
	}
	if role != SignRoleTecnico && role != SignRoleCliente {
		return entities.WorkOrder{}, ErrInvalidSignRole
	}

	w, err := u.orders.GetByID(ctx, workOrderID)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if w.ID == "" {
		return entities.WorkOrder{}, ErrWorkOrderNotFound
	}

	next := w.Clone()
	now := time.Now().UTC()
	switch role {
	case SignRoleTecnico:
		if w.AssinaturaTecnicoURL != "" {
			return entities.WorkOrder{}, ErrAlreadySigned
		}
		next.AssinaturaTecnicoURL = signatureURL
		next.DataAssinaturaTecnico = &now
	case SignRoleCliente:
		if w.AssinaturaClienteURL != "" {
			return entities.WorkOrder{}, ErrAlreadySigned
		}
		next.AssinaturaClienteURL = signatureURL
		next.DataAssinaturaCliente = &now
	}
	next.UpdatedAt = now

	saved, err := u.orders.Update(ctx, next, w.Version)
	if err != nil {
		return entities.WorkOrder{}, err
	}
	if saved.ID == "" {
		return entities.WorkOrder{}, ErrVersionConflict
	}
	return saved, nil
}
