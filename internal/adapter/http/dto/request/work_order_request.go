package request

import (
	"strings"
	"time"

	"gestao_manutencao/internal/domain/entities"
	"gestao_manutencao/internal/usecase"
)

// CreateWorkOrderRequest opens a new work order ticket. MediaObrigatoria is
// fixed at creation and cannot be toggled later.
type CreateWorkOrderRequest struct {
	Title            string     `json:"title" binding:"required"`
	Description      string     `json:"description"`
	AssetID          string     `json:"asset_id" binding:"required"`
	ClientID         string     `json:"client_id"`
	CreatedByUserID  string     `json:"created_by_user_id"`
	ResponsibleID    string     `json:"responsible_id"`
	Priority         string     `json:"priority" binding:"required"`
	MediaObrigatoria bool       `json:"media_obrigatoria"`
	ScheduledDate    *time.Time `json:"scheduled_date"`
}

func (r CreateWorkOrderRequest) ToInput() usecase.CreateWorkOrderInput {
	return usecase.CreateWorkOrderInput{
		Title:            strings.TrimSpace(r.Title),
		Description:      strings.TrimSpace(r.Description),
		AssetID:          strings.TrimSpace(r.AssetID),
		ClientID:         strings.TrimSpace(r.ClientID),
		CreatedByUserID:  strings.TrimSpace(r.CreatedByUserID),
		ResponsibleID:    strings.TrimSpace(r.ResponsibleID),
		Priority:         entities.WorkOrderPriority(strings.TrimSpace(r.Priority)),
		MediaObrigatoria: r.MediaObrigatoria,
		ScheduledDate:    r.ScheduledDate,
	}
}

// UpdateStatusRequest asks the state machine for a transition to the target
// status. Gate failures come back as 422 with the failing gate named.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AssignResponsibleRequest struct {
	TechnicianID string `json:"technician_id" binding:"required"`
}

type BindChecklistRequest struct {
	TemplateID string `json:"template_id" binding:"required"`
}

// ChecklistItemRequest answers one checklist item, addressed by group/item
// position within the bound checklist.
type ChecklistItemRequest struct {
	GroupIndex int    `json:"group_index"`
	ItemIndex  int    `json:"item_index"`
	Status     string `json:"status" binding:"required"`
	Comment    string `json:"comment"`
}

type AddPartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type SetPartQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

type AttachPhotoRequest struct {
	Kind string `json:"kind" binding:"required"`
	URL  string `json:"url" binding:"required"`
}

type SignatureRequest struct {
	Role string `json:"role" binding:"required"`
	URL  string `json:"url" binding:"required"`
}
