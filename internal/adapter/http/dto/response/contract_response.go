package response

import (
	"time"

	"gestao_manutencao/internal/domain/entities"
	"gestao_manutencao/internal/usecase"
)

// RollupResponse renders monetary figures as plain JSON numbers. Margin is
// omitted entirely when undefined rather than reported as zero.
type RollupResponse struct {
	ContractID string   `json:"contract_id"`
	WindowDays int      `json:"window_days"`
	Revenue    float64  `json:"revenue"`
	PartsCost  float64  `json:"parts_cost"`
	LaborCost  float64  `json:"labor_cost"`
	Costs      float64  `json:"costs"`
	Margin     *float64 `json:"margin,omitempty"`
}

func FromRollup(r usecase.RollupResult) RollupResponse {
	resp := RollupResponse{
		ContractID: r.ContractID,
		WindowDays: r.WindowDays,
		Revenue:    r.Revenue.InexactFloat64(),
		PartsCost:  r.PartsCost.InexactFloat64(),
		LaborCost:  r.LaborCost.InexactFloat64(),
		Costs:      r.Costs.InexactFloat64(),
	}
	if r.MarginDefined {
		margin := r.Margin.InexactFloat64()
		resp.Margin = &margin
	}
	return resp
}

type ContractChargeResponse struct {
	ID                string    `json:"id"`
	ContractID        string    `json:"contract_id"`
	Amount            float64   `json:"amount"`
	Date              time.Time `json:"date"`
	Status            string    `json:"status"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
}

func FromContractCharge(c entities.ContractCharge) ContractChargeResponse {
	return ContractChargeResponse{
		ID:                c.ID,
		ContractID:        c.ContractID,
		Amount:            c.Amount,
		Date:              c.Date,
		Status:            string(c.Status),
		ProviderPaymentID: c.ProviderPaymentID,
	}
}

func FromContractCharges(charges []entities.ContractCharge) []ContractChargeResponse {
	out := make([]ContractChargeResponse, 0, len(charges))
	for _, c := range charges {
		out = append(out, FromContractCharge(c))
	}
	return out
}
