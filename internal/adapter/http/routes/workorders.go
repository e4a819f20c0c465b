package routes

import (
	"gestao_manutencao/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWorkOrders = "/workorders"
)

func addWorkOrderRoutes(rg *gin.RouterGroup, h *handlers.WorkOrderHandler) {
	workorders := rg.Group(PathWorkOrders)
	{
		workorders.POST("", h.CreateWorkOrder)
		workorders.GET("/:id", h.GetWorkOrderByID)
		workorders.PATCH("/:id/status", h.UpdateStatus)
		workorders.PATCH("/:id/responsible", h.AssignResponsible)

		workorders.POST("/:id/checklist", h.BindChecklist)
		workorders.PATCH("/:id/checklist/items", h.SetChecklistItem)

		workorders.POST("/:id/parts", h.AddPart)
		workorders.PATCH("/:id/parts/:index", h.SetPartQuantity)

		workorders.POST("/:id/photos", h.AttachPhoto)
		workorders.POST("/:id/signatures", h.CaptureSignature)
	}
}
