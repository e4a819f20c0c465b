package usecase

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"gestao_manutencao/internal/domain/entities"
	"gestao_manutencao/internal/usecase/interfaces"
)

var (
	ErrInvalidProductID    = errors.New("invalid product_id")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrPartIndexOutOfRange = errors.New("part line index out of range")
	ErrInsufficientStock   = errors.New("insufficient stock for part line")
)

// StockPolicy decides how an insufficient-stock evaluation is handled when a
// parts line is saved. The policy never participates in the completion gate.

type StockPolicy string

const (
	StockPolicyWarn  StockPolicy = "warn"
	StockPolicyBlock StockPolicy = "block"
)

// StockPolicyFromEnv reads STOCK_POLICY; anything other than "block" means
// the default soft-allocation behavior.
func StockPolicyFromEnv() StockPolicy {
	if strings.EqualFold(strings.TrimSpace(os.Getenv("STOCK_POLICY")), string(StockPolicyBlock)) {
		return StockPolicyBlock
	}
	return StockPolicyWarn
}

// PartResult pairs the saved order with the stock evaluation of the touched
// line, so callers can surface the warning without a second lookup.
type PartResult struct {
	WorkOrder  entities.WorkOrder
	Evaluation entities.StockEvaluation
}

// IPartsUseCase manages the parts-consumption lines of a work order.

type IPartsUseCase interface {
	AddPart(ctx context.Context, workOrderID, productID string) (PartResult, error)
	SetQuantity(ctx context.Context, workOrderID string, lineIndex, quantity int) (PartResult, error)
}

type PartsUseCase struct {
	orders   interfaces.IWorkOrderRepository
	products interfaces.IProductRepository
	policy   StockPolicy
}

var _ IPartsUseCase = (*PartsUseCase)(nil)

func NewPartsUseCase(orders interfaces.IWorkOrderRepository, products interfaces.IProductRepository, policy StockPolicy) *PartsUseCase {
	if policy == "" {
		policy = StockPolicyWarn
	}
	return &PartsUseCase{orders: orders, products: products, policy: policy}
}

// AddPart appends a line with quantity 1 for the product.
func (u *PartsUseCase) AddPart(ctx context.Context, workOrderID, productID string) (PartResult, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	productID = strings.TrimSpace(productID)
	if workOrderID == "" {
		return PartResult{}, ErrInvalidWorkOrderID
	}
	if productID == "" {
		return PartResult{}, ErrInvalidProductID
	}

	w, err := u.orders.GetByID(ctx, workOrderID)
	if err != nil {
		return PartResult{}, err
	}
	if w.ID == "" {
		return PartResult{}, ErrWorkOrderNotFound
	}
	if w.Status.Terminal() {
		return PartResult{}, ErrIllegalTransition
	}

	line := entities.WorkOrderPart{ProductID: productID, Quantity: 1}
	eval, err := u.evaluate(ctx, line)
	if err != nil {
		return PartResult{}, err
	}
	if u.policy == StockPolicyBlock && !eval.Sufficient {
		return PartResult{}, ErrInsufficientStock
	}

	next := w.Clone()
	next.Parts = append(next.Parts, line)
	next.UpdatedAt = time.Now().UTC()

	saved, err := u.orders.Update(ctx, next, w.Version)
	if err != nil {
		return PartResult{}, err
	}
	if saved.ID == "" {
		return PartResult{}, ErrVersionConflict
	}
	return PartResult{WorkOrder: saved, Evaluation: eval}, nil
}

// SetQuantity updates one line; quantities below 1 are rejected.
func (u *PartsUseCase) SetQuantity(ctx context.Context, workOrderID string, lineIndex, quantity int) (PartResult, error) {
	workOrderID = strings.TrimSpace(workOrderID)
	if workOrderID == "" {
		return PartResult{}, ErrInvalidWorkOrderID
	}
	if quantity < 1 {
		return PartResult{}, ErrInvalidQuantity
	}

	w, err := u.orders.GetByID(ctx, workOrderID)
	if err != nil {
		return PartResult{}, err
	}
	if w.ID == "" {
		return PartResult{}, ErrWorkOrderNotFound
	}
	if w.Status.Terminal() {
		return PartResult{}, ErrIllegalTransition
	}
	if lineIndex < 0 || lineIndex >= len(w.Parts) {
		return PartResult{}, ErrPartIndexOutOfRange
	}

	line := entities.WorkOrderPart{ProductID: w.Parts[lineIndex].ProductID, Quantity: quantity}
	eval, err := u.evaluate(ctx, line)
	if err != nil {
		return PartResult{}, err
	}
	if u.policy == StockPolicyBlock && !eval.Sufficient {
		return PartResult{}, ErrInsufficientStock
	}

	next := w.Clone()
	next.Parts[lineIndex] = line
	next.UpdatedAt = time.Now().UTC()

	saved, err := u.orders.Update(ctx, next, w.Version)
	if err != nil {
		return PartResult{}, err
	}
	if saved.ID == "" {
		return PartResult{}, ErrVersionConflict
	}
	return PartResult{WorkOrder: saved, Evaluation: eval}, nil
}

// evaluate checks the line against current stock. An unknown product counts
// as zero stock: the line is still a valid declaration, the warning just
// reflects that nothing is on hand.
func (u *PartsUseCase) evaluate(ctx context.Context, line entities.WorkOrderPart) (entities.StockEvaluation, error) {
	p, err := u.products.GetByID(ctx, line.ProductID)
	if err != nil {
		return entities.StockEvaluation{}, err
	}
	return entities.EvaluateStock(line, p.Stock), nil
}
