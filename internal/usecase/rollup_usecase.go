package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gestao_manutencao/internal/domain/entities"
	"gestao_manutencao/internal/usecase/interfaces"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidContractID = errors.New("invalid contract id")
	ErrContractNotFound  = errors.New("contract not found")
	ErrInvalidWindow     = errors.New("invalid rollup window")
)

const (
	// DefaultWindowDays is the trailing lookback used when the caller does
	// not pick one.
	DefaultWindowDays = 90

	rollupCacheTTL = 5 * time.Minute
)

var thirtyDays = decimal.NewFromInt(30)

// RollupResult is the trailing-window revenue/cost/margin figure for one
// contract. Margin is undefined (not 0%) when revenue is zero.
type RollupResult struct {
	ContractID    string          `json:"contract_id"`
	WindowDays    int             `json:"window_days"`
	Revenue       decimal.Decimal `json:"revenue"`
	PartsCost     decimal.Decimal `json:"parts_cost"`
	LaborCost     decimal.Decimal `json:"labor_cost"`
	Costs         decimal.Decimal `json:"costs"`
	Margin        decimal.Decimal `json:"margin"`
	MarginDefined bool            `json:"margin_defined"`
}

// IRollupUseCase is the independent read-side aggregator over work orders.
// It performs no writes besides the optional cache fill.

type IRollupUseCase interface {
	Rollup(ctx context.Context, contractID string, windowDays int) (RollupResult, error)
}

type RollupUseCase struct {
	contracts   interfaces.IContractRepository
	orders      interfaces.IWorkOrderRepository
	products    interfaces.IProductRepository
	technicians interfaces.ITechnicianRepository
	cache       interfaces.IRollupCache
}

var _ IRollupUseCase = (*RollupUseCase)(nil)

// NewRollupUseCase wires the read-side dependencies. cache may be nil.
func NewRollupUseCase(
	contracts interfaces.IContractRepository,
	orders interfaces.IWorkOrderRepository,
	products interfaces.IProductRepository,
	technicians interfaces.ITechnicianRepository,
	cache interfaces.IRollupCache,
) *RollupUseCase {
	return &RollupUseCase{contracts: contracts, orders: orders, products: products, technicians: technicians, cache: cache}
}

func (u *RollupUseCase) Rollup(ctx context.Context, contractID string, windowDays int) (RollupResult, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return RollupResult{}, ErrInvalidContractID
	}
	if windowDays == 0 {
		windowDays = DefaultWindowDays
	}
	if windowDays < 0 {
		return RollupResult{}, ErrInvalidWindow
	}

	cacheKey := fmt.Sprintf("rollup:%s:%d", contractID, windowDays)
	if u.cache != nil {
		if b, err := u.cache.Get(ctx, cacheKey); err == nil && len(b) > 0 {
			var cached RollupResult
			if err := json.Unmarshal(b, &cached); err == nil {
				return cached, nil
			}
		}
	}

	contract, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return RollupResult{}, err
	}
	if contract.ID == "" {
		return RollupResult{}, ErrContractNotFound
	}

	now := time.Now().UTC()
	since := now.AddDate(0, 0, -windowDays)

	var orders []entities.WorkOrder
	for _, assetID := range contract.CoveredAssetIDs {
		batch, err := u.orders.ListByAssetID(ctx, assetID, since)
		if err != nil {
			return RollupResult{}, err
		}
		orders = append(orders, batch...)
	}

	products, err := u.loadProducts(ctx, contract, orders)
	if err != nil {
		return RollupResult{}, err
	}
	technicians, err := u.loadTechnicians(ctx, orders)
	if err != nil {
		return RollupResult{}, err
	}

	result := ComputeRollup(contract, windowDays, now, orders, products, technicians)

	if u.cache != nil {
		if b, err := json.Marshal(result); err == nil {
			if err := u.cache.Set(ctx, cacheKey, b, rollupCacheTTL); err != nil {
				log.Warn().Err(err).Str("contract_id", contractID).Msg("rollup cache fill failed")
			}
		}
	}
	return result, nil
}

// ComputeRollup is the pure aggregation: deterministic and side-effect-free
// over explicit inputs.
//
//   - revenue = monthlyValue * windowDays/30
//   - candidates: orders on covered assets created inside [now-window, now]
//   - partsCost only for Integral contracts; unknown products contribute 0
//   - laborCost = (end-start hours) * technician rate; orders missing dates,
//     responsible or rate contribute 0, silently
func ComputeRollup(
	contract entities.MaintenanceContract,
	windowDays int,
	now time.Time,
	orders []entities.WorkOrder,
	products map[string]entities.Product,
	technicians map[string]entities.Technician,
) RollupResult {
	revenue := decimal.NewFromFloat(contract.MonthlyValue).
		Mul(decimal.NewFromInt(int64(windowDays))).
		Div(thirtyDays)

	since := now.AddDate(0, 0, -windowDays)
	partsCost := decimal.Zero
	laborCost := decimal.Zero

	for _, w := range orders {
		if !contract.CoversAsset(w.AssetID) {
			continue
		}
		if w.CreationDate.Before(since) || w.CreationDate.After(now) {
			continue
		}

		if contract.ContractType == entities.ContractTypeIntegral {
			for _, line := range w.Parts {
				p, ok := products[line.ProductID]
				if !ok {
					continue
				}
				partsCost = partsCost.Add(
					decimal.NewFromFloat(p.Price).Mul(decimal.NewFromInt(int64(line.Quantity))))
			}
		}

		if w.StartDate == nil || w.EndDate == nil || w.ResponsibleID == "" {
			continue
		}
		tech, ok := technicians[w.ResponsibleID]
		if !ok || tech.CostPerHour == nil {
			continue
		}
		hours := w.EndDate.Sub(*w.StartDate).Hours()
		if hours < 0 {
			continue
		}
		laborCost = laborCost.Add(
			decimal.NewFromFloat(hours).Mul(decimal.NewFromFloat(*tech.CostPerHour)))
	}

	costs := partsCost.Add(laborCost)
	result := RollupResult{
		ContractID: contract.ID,
		WindowDays: windowDays,
		Revenue:    revenue,
		PartsCost:  partsCost,
		LaborCost:  laborCost,
		Costs:      costs,
	}
	if revenue.IsPositive() {
		result.Margin = revenue.Sub(costs).Div(revenue)
		result.MarginDefined = true
	}
	return result
}

func (u *RollupUseCase) loadProducts(ctx context.Context, contract entities.MaintenanceContract, orders []entities.WorkOrder) (map[string]entities.Product, error) {
	out := map[string]entities.Product{}
	if contract.ContractType != entities.ContractTypeIntegral {
		return out, nil
	}
	for _, w := range orders {
		for _, line := range w.Parts {
			if _, seen := out[line.ProductID]; seen {
				continue
			}
			p, err := u.products.GetByID(ctx, line.ProductID)
			if err != nil {
				return nil, err
			}
			if p.ID == "" {
				continue
			}
			out[line.ProductID] = p
		}
	}
	return out, nil
}

func (u *RollupUseCase) loadTechnicians(ctx context.Context, orders []entities.WorkOrder) (map[string]entities.Technician, error) {
	out := map[string]entities.Technician{}
	for _, w := range orders {
		if w.ResponsibleID == "" {
			continue
		}
		if _, seen := out[w.ResponsibleID]; seen {
			continue
		}
		t, err := u.technicians.GetByID(ctx, w.ResponsibleID)
		if err != nil {
			return nil, err
		}
		if t.ID == "" {
			continue
		}
		out[w.ResponsibleID] = t
	}
	return out, nil
}
