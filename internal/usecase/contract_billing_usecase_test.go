package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"gestao_manutencao/internal/domain/entities"
	mock_interfaces "gestao_manutencao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestContractBillingUseCase_CreateMonthlyCharge(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewContractBillingUseCase(nil, nil, nil)
		_, err := uc.CreateMonthlyCharge(context.Background(), "ct-1")
		if !errors.Is(err, ErrGatewayNotConfigured) {
			t.Fatalf("expected ErrGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("contract without billable value", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewContractBillingUseCase(contracts, nil, gateway)

		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(entities.MaintenanceContract{ID: "ct-1"}, nil)

		_, err := uc.CreateMonthlyCharge(context.Background(), "ct-1")
		if !errors.Is(err, ErrInvalidContractValue) {
			t.Fatalf("expected ErrInvalidContractValue, got %v", err)
		}
	})

	t.Run("creates approved charge", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		charges := mock_interfaces.NewMockIContractChargeRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewContractBillingUseCase(contracts, charges, gateway)

		contract := entities.MaintenanceContract{ID: "ct-1", MonthlyValue: 750, ContractType: entities.ContractTypeIntegral}
		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(contract, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				if err := json.Unmarshal(payload, &req); err != nil {
					t.Fatalf("invalid gateway payload: %v", err)
				}
				if req["transaction_amount"] != 750.0 || req["external_reference"] != "ct-1" {
					t.Fatalf("unexpected payload: %v", req)
				}
				return "mp-1", "approved", json.RawMessage(`{"id":"mp-1"}`), nil
			},
		)
		charges.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.ContractCharge{})).DoAndReturn(
			func(_ context.Context, c entities.ContractCharge) (entities.ContractCharge, error) {
				if c.Status != entities.ChargeStatusAprovado || c.Amount != 750 || c.ProviderPaymentID != "mp-1" {
					t.Fatalf("unexpected charge: %+v", c)
				}
				return c, nil
			},
		)

		res, err := uc.CreateMonthlyCharge(context.Background(), "ct-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated charge id")
		}
	})

	t.Run("gateway failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		contracts := mock_interfaces.NewMockIContractRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewContractBillingUseCase(contracts, nil, gateway)

		contract := entities.MaintenanceContract{ID: "ct-1", MonthlyValue: 750}
		contracts.EXPECT().GetByID(gomock.Any(), "ct-1").Return(contract, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("mp down"))

		_, err := uc.CreateMonthlyCharge(context.Background(), "ct-1")
		if err == nil || err.Error() != "mp down" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}
