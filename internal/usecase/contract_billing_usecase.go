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

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrInvalidContractValue = errors.New("contract has no billable monthly value")
)

// IContractBillingUseCase creates the monthly charge for a maintenance
// contract through the payment gateway and records the provider outcome.

type IContractBillingUseCase interface {
	CreateMonthlyCharge(ctx context.Context, contractID string) (entities.ContractCharge, error)
	ListCharges(ctx context.Context, contractID string) ([]entities.ContractCharge, error)
}

type ContractBillingUseCase struct {
	contracts interfaces.IContractRepository
	charges   interfaces.IContractChargeRepository
	gateway   interfaces.IPaymentGateway
}

var _ IContractBillingUseCase = (*ContractBillingUseCase)(nil)

func NewContractBillingUseCase(contracts interfaces.IContractRepository, charges interfaces.IContractChargeRepository, gateway interfaces.IPaymentGateway) *ContractBillingUseCase {
	return &ContractBillingUseCase{contracts: contracts, charges: charges, gateway: gateway}
}

func (u *ContractBillingUseCase) CreateMonthlyCharge(ctx context.Context, contractID string) (entities.ContractCharge, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return entities.ContractCharge{}, ErrInvalidContractID
	}
	if u.gateway == nil {
		return entities.ContractCharge{}, ErrGatewayNotConfigured
	}

	contract, err := u.contracts.GetByID(ctx, contractID)
	if err != nil {
		return entities.ContractCharge{}, err
	}
	if contract.ID == "" {
		return entities.ContractCharge{}, ErrContractNotFound
	}
	if contract.MonthlyValue <= 0 {
		return entities.ContractCharge{}, ErrInvalidContractValue
	}

	payload, err := json.Marshal(map[string]any{
		"transaction_amount": contract.MonthlyValue,
		"description":        fmt.Sprintf("Mensalidade contrato %s", contract.ID),
		"external_reference": contract.ID,
	})
	if err != nil {
		return entities.ContractCharge{}, err
	}

	providerID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Error().Err(err).Str("contract_id", contract.ID).Msg("monthly charge failed at gateway")
		return entities.ContractCharge{}, err
	}

	status := entities.ChargeStatusPendente
	switch providerStatus {
	case "approved":
		status = entities.ChargeStatusAprovado
	case "rejected", "cancelled":
		status = entities.ChargeStatusNegado
	}

	charge := entities.ContractCharge{
		ID:                uuid.NewString(),
		ContractID:        contract.ID,
		Amount:            contract.MonthlyValue,
		Date:              time.Now().UTC(),
		Status:            status,
		ProviderPaymentID: providerID,
		ProviderResponse:  providerResp,
	}
	created, err := u.charges.Create(ctx, charge)
	if err != nil {
		return entities.ContractCharge{}, err
	}
	log.Info().Str("contract_id", contract.ID).Str("charge_id", created.ID).
		Str("provider_status", providerStatus).Msg("monthly charge created")
	return created, nil
}

func (u *ContractBillingUseCase) ListCharges(ctx context.Context, contractID string) ([]entities.ContractCharge, error) {
	contractID = strings.TrimSpace(contractID)
	if contractID == "" {
		return nil, ErrInvalidContractID
	}
	return u.charges.ListByContractID(ctx, contractID)
}
