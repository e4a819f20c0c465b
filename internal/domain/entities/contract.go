package entities

import (
	"encoding/json"
	"time"
)

// ContractType drives which cost components the rollup bills.
//
//   - Integral: parts + labor are billed against the contract.
//   - Mão de Obra: labor only; parts never enter the rollup.

type ContractType string

const (
	ContractTypeIntegral  ContractType = "Integral"
	ContractTypeMaoDeObra ContractType = "Mão de Obra"
)

func (t ContractType) Valid() bool {
	return t == ContractTypeIntegral || t == ContractTypeMaoDeObra
}

// MaintenancePlan is a recurring scheduled service definition attached to a
// contract. Scheduling/dispatch lives outside this service; the plan only
// exists here as contract data.
type MaintenancePlan struct {
	ID            string `json:"id"`
	Description   string `json:"description"`
	Periodicidade string `json:"periodicidade,omitempty"`
}

// MaintenanceContract is the recurring service agreement persisted in
// DynamoDB (PK: id). CoveredAssetIDs bounds which work orders the cost
// rollup considers.
type MaintenanceContract struct {
	ID              string            `json:"id"`
	ClientID        string            `json:"client_id"`
	MonthlyValue    float64           `json:"monthly_value"`
	ContractType    ContractType      `json:"contract_type"`
	CoveredAssetIDs []string          `json:"covered_asset_ids"`
	StartDate       time.Time         `json:"start_date"`
	EndDate         *time.Time        `json:"end_date,omitempty"`
	Plans           []MaintenancePlan `json:"plans,omitempty"`
}

// CoversAsset reports whether the asset is covered by this contract.
func (c MaintenanceContract) CoversAsset(assetID string) bool {
	for _, id := range c.CoveredAssetIDs {
		if id == assetID {
			return true
		}
	}
	return false
}

// ChargeStatus mirrors the payment provider outcome for a contract charge.

type ChargeStatus string

const (
	ChargeStatusPendente ChargeStatus = "pendente"
	ChargeStatusAprovado ChargeStatus = "aprovado"
	ChargeStatusNegado   ChargeStatus = "negado"
)

// ContractCharge is one monthly billing charge created for a contract
// through the payment gateway (PK: id, GSI1 contract_id-index: contract_id).
//
// ProviderResponse keeps the raw provider body (JSON) for traceability.
type ContractCharge struct {
	ID                string          `json:"id"`
	ContractID        string          `json:"contract_id"`
	Amount            float64         `json:"amount"`
	Date              time.Time       `json:"date"`
	Status            ChargeStatus    `json:"status"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`
	ProviderResponse  json.RawMessage `json:"provider_response,omitempty"`
}
