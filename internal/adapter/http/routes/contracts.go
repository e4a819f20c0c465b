package routes

import (
	"gestao_manutencao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathContracts = "/contracts"
)

func addContractRoutes(rg *gin.RouterGroup, h *handlers.ContractHandler) {
	contracts := rg.Group(PathContracts)
	{
		contracts.GET("/:id/rollup", h.GetRollup)
		contracts.POST("/:id/charges", h.CreateCharge)
		contracts.GET("/:id/charges", h.ListCharges)
	}
}
