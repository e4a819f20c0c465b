package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"gestao_manutencao/internal/domain/entities"
	mock_interfaces "gestao_manutencao/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func rollupFixture(now time.Time) (entities.MaintenanceContract, []entities.WorkOrder, map[string]entities.Product, map[string]entities.Technician) {
	contract := entities.MaintenanceContract{
		ID:              "ct-1",
		MonthlyValue:    750,
		ContractType:    entities.ContractTypeIntegral,
		CoveredAssetIDs: []string{"a1"},
	}

	partsOrder := entities.WorkOrder{
		ID:           "wo-parts",
		AssetID:      "a1",
		CreationDate: now.AddDate(0, 0, -10),
		Parts:        []entities.WorkOrderPart{{ProductID: "p1", Quantity: 2}},
	}

	start := now.AddDate(0, 0, -5)
	end := start.Add(2 * time.Hour)
	laborOrder := entities.WorkOrder{
		ID:            "wo-labor",
		AssetID:       "a1",
		CreationDate:  now.AddDate(0, 0, -5),
		ResponsibleID: "tec-1",
		StartDate:     &start,
		EndDate:       &end,
	}

	rate := 75.0
	products := map[string]entities.Product{"p1": {ID: "p1", Price: 50}}
	technicians := map[string]entities.Technician{"tec-1": {ID: "tec-1", CostPerHour: &rate}}

	return contract, []entities.WorkOrder{partsOrder, laborOrder}, products, technicians
}

func TestComputeRollup_WorkedExample(t *testing.T) {
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	contract, orders, products, technicians := rollupFixture(now)

	res := ComputeRollup(contract, 90, now, orders, products, technicians)

	if !res.Revenue.Equal(decimal.NewFromInt(2250)) {
		t.Fatalf("expected revenue 2250, got %s", res.Revenue)
	}
	if !res.PartsCost.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected parts cost 100, got %s", res.PartsCost)
	}
	if !res.LaborCost.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected labor cost 150, got %s", res.LaborCost)
	}
	if !res.Costs.Equal(decimal.NewFromInt(250)) {
		t.Fatalf("expected costs 250, got %s", res.Costs)
	}
	if !res.MarginDefined {
		t.Fatalf("expected defined margin")
	}
	margin, _ := res.Margin.Float64()
	if margin < 0.8888 || margin > 0.8890 {
		t.Fatalf("expected margin ≈ 0.8889, got %v", margin)
	}
}

func TestComputeRollup_Policies(t *testing.T) {
	now := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)

	t.Run("labor-only contract skips parts", func(t *testing.T) {
		contract, orders, products, technicians := rollupFixture(now)
		contract.ContractType = entities.ContractTypeMaoDeObra

		res := ComputeRollup(contract, 90, now, orders, products, technicians)
		if !res.PartsCost.IsZero() {
			t.Fatalf("expected zero parts cost, got %s", res.PartsCost)
		}
		if !res.LaborCost.Equal(decimal.NewFromInt(150)) {
			t.Fatalf("labor cost must still count, got %s", res.LaborCost)
		}
	})

	t.Run("orders outside the window are ignored", func(t *testing.T) {
		contract, orders, products, technicians := rollupFixture(now)
		orders[0].CreationDate = now.AddDate(0, 0, -120)

		res := ComputeRollup(contract, 90, now, orders, products, technicians)
		if !res.PartsCost.IsZero() {
			t.Fatalf("expected stale order excluded, got %s", res.PartsCost)
		}
	})

	t.Run("uncovered asset excluded", func(t *testing.T) {
		contract, orders, products, technicians := rollupFixture(now)
		orders[1].AssetID = "a2"

		res := ComputeRollup(contract, 90, now, orders, products, technicians)
		if !res.LaborCost.IsZero() {
			t.Fatalf("expected uncovered order excluded, got %s", res.LaborCost)
		}
	})

	t.Run("missing prerequisites degrade to zero", func(t *testing.T) {
		contract, orders, products, technicians := rollupFixture(now)
		orders[1].EndDate = nil // incomplete
		delete(products, "p1")  // unknown product
		res := ComputeRollup(contract, 90, now, orders, products, technicians)
		if !res.Costs.IsZero() {
			t.Fatalf("expected zero costs, got %s", res.Costs)
		}
	})

	t.Run("zero revenue yields undefined margin, not a division error", func(t *testing.T) {
		contract, orders, products, technicians := rollupFixture(now)
		contract.MonthlyValue = 0

		res := ComputeRollup(contract, 90, now, orders, products, technicians)
		if res.MarginDefined {
			t.Fatalf("expected undefined margin sentinel")
		}
		if !res.Margin.IsZero() {
			t.Fatalf("undefined margin must stay zero-valued, got %s", res.Margin)
		}
	})

	t.Run("deterministic over identical inputs", func(t *testing.T) {
		contract, orders, products, technicians := rollupFixture(now)
		a := ComputeRollup(contract, 90, now, orders, products, technicians)
		b := ComputeRollup(contract, 90, now, orders, products, technicians)
		if !reflect.DeepEqual(a, b) {
			t.Fatalf("rollup is not deterministic: %+v vs %+v", a, b)
		}
	})
}

func TestRollupUseCase_Rollup(t *testing.T) {
	t.Run("invalid contract id", func(t *testing.T) {
		uc := NewRollupUseCase(nil, nil, nil, nil, nil)
		_, err := uc.Rollup(context.Background(), "  ", 90)
		if !errors.Is(err, ErrInvalidContractID) {
			t.Fatalf("expected ErrInvalidContractID, got %v", err)
		}
	})

	t.Run("contract not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewRollupUseCase(contracts, nil, nil, nil, nil)

		contracts.EXPECT().GetByID(gomock.Any(), "ct-x").Return(entities.MaintenanceContract{}, nil)

		_, err := uc.Rollup(context.Background(), "ct-x", 90)
		if !errors.Is(err, ErrContractNotFound) {
			t.Fatalf("expected ErrContractNotFound, got %v", err)
		}
	})

	t.Run("aggregates through repositories and fills the cache", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		technicians := mock_interfaces.NewMockITechnicianRepository(ctrl)
		cache := mock_interfaces.NewMockIRollupCache(ctrl)
		uc := NewRollupUseCase(contracts, orders, products, technicians, cache)

		now := time.Now().UTC()
		contract, orderList, productMap, technicianMap := rollupFixture(now)

		cache.EXPECT().Get(gomock.Any(), "rollup:ct-1:90").Return(nil, nil)
		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(contract, nil)
		orders.EXPECT().ListByAssetID(gomock.Any(), "a1", gomock.Any()).Return(orderList, nil)
		products.EXPECT().GetByID(gomock.Any(), "p1").Return(productMap["p1"], nil)
		technicians.EXPECT().GetByID(gomock.Any(), "tec-1").Return(technicianMap["tec-1"], nil)
		cache.EXPECT().Set(gomock.Any(), "rollup:ct-1:90", gomock.Any(), rollupCacheTTL).Return(nil)

		res, err := uc.Rollup(context.Background(), "ct-1", 90)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Revenue.Equal(decimal.NewFromInt(2250)) || !res.Costs.Equal(decimal.NewFromInt(250)) {
			t.Fatalf("unexpected rollup: %+v", res)
		}
	})

	t.Run("cache hit skips the repositories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		cache := mock_interfaces.NewMockIRollupCache(ctrl)
		uc := NewRollupUseCase(nil, nil, nil, nil, cache)

		cached := RollupResult{ContractID: "ct-1", WindowDays: 90, Revenue: decimal.NewFromInt(2250), MarginDefined: true}
		b, _ := json.Marshal(cached)
		cache.EXPECT().Get(gomock.Any(), "rollup:ct-1:90").Return(b, nil)

		res, err := uc.Rollup(context.Background(), "ct-1", 90)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Revenue.Equal(decimal.NewFromInt(2250)) {
			t.Fatalf("unexpected cached rollup: %+v", res)
		}
	})

	t.Run("defaults the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		uc := NewRollupUseCase(contracts, nil, nil, nil, nil)

		contract := entities.MaintenanceContract{ID: "ct-1", MonthlyValue: 100, ContractType: entities.ContractTypeMaoDeObra}
		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(contract, nil)

		res, err := uc.Rollup(context.Background(), "ct-1", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.WindowDays != DefaultWindowDays {
			t.Fatalf("expected default window, got %d", res.WindowDays)
		}
	})
}
