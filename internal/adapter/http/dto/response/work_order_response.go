package response

import (
	"time"

	"gestao_manutencao/internal/domain/entities"
	"gestao_manutencao/internal/usecase"
)

type ChecklistItemResponse struct {
	Text    string `json:"text"`
	Status  string `json:"status"`
	Comment string `json:"comment,omitempty"`
}

type ChecklistGroupResponse struct {
	Title string                  `json:"title"`
	Items []ChecklistItemResponse `json:"items"`
}

type ChecklistResponse struct {
	TemplateID string                   `json:"template_id"`
	Groups     []ChecklistGroupResponse `json:"groups"`
}

type WorkOrderPartResponse struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type SignatureResponse struct {
	URL      string     `json:"url"`
	SignedAt *time.Time `json:"signed_at,omitempty"`
}

type WorkOrderResponse struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Priority string `json:"priority"`

	AssetID         string `json:"asset_id"`
	ClientID        string `json:"client_id,omitempty"`
	CreatedByUserID string `json:"created_by_user_id,omitempty"`
	ResponsibleID   string `json:"responsible_id,omitempty"`

	Title               string `json:"title"`
	Description         string `json:"description,omitempty"`
	InternalObservation string `json:"internal_observation,omitempty"`
	RootCause           string `json:"root_cause,omitempty"`
	RecommendedAction   string `json:"recommended_action,omitempty"`

	CreationDate  time.Time  `json:"creation_date"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`

	MediaObrigatoria bool   `json:"media_obrigatoria"`
	FotoAntes        string `json:"foto_antes,omitempty"`
	FotoDepois       string `json:"foto_depois,omitempty"`

	Checklist *ChecklistResponse      `json:"checklist,omitempty"`
	Parts     []WorkOrderPartResponse `json:"parts,omitempty"`

	AssinaturaTecnico *SignatureResponse `json:"assinatura_tecnico,omitempty"`
	AssinaturaCliente *SignatureResponse `json:"assinatura_cliente,omitempty"`

	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromWorkOrder(w entities.WorkOrder) WorkOrderResponse {
	resp := WorkOrderResponse{
		ID:                  w.ID,
		Status:              string(w.Status),
		Priority:            string(w.Priority),
		AssetID:             w.AssetID,
		ClientID:            w.ClientID,
		CreatedByUserID:     w.CreatedByUserID,
		ResponsibleID:       w.ResponsibleID,
		Title:               w.Title,
		Description:         w.Description,
		InternalObservation: w.InternalObservation,
		RootCause:           w.RootCause,
		RecommendedAction:   w.RecommendedAction,
		CreationDate:        w.CreationDate,
		ScheduledDate:       w.ScheduledDate,
		StartDate:           w.StartDate,
		EndDate:             w.EndDate,
		MediaObrigatoria:    w.MediaObrigatoria,
		FotoAntes:           w.FotosAntesDepois.Antes,
		FotoDepois:          w.FotosAntesDepois.Depois,
		Version:             w.Version,
		UpdatedAt:           w.UpdatedAt,
	}

	if w.Checklist != nil {
		resp.Checklist = fromChecklist(*w.Checklist)
	}
	for _, p := range w.Parts {
		resp.Parts = append(resp.Parts, WorkOrderPartResponse{ProductID: p.ProductID, Quantity: p.Quantity})
	}
	if w.AssinaturaTecnicoURL != "" {
		resp.AssinaturaTecnico = &SignatureResponse{URL: w.AssinaturaTecnicoURL, SignedAt: w.DataAssinaturaTecnico}
	}
	if w.AssinaturaClienteURL != "" {
		resp.AssinaturaCliente = &SignatureResponse{URL: w.AssinaturaClienteURL, SignedAt: w.DataAssinaturaCliente}
	}
	return resp
}

func fromChecklist(c entities.Checklist) *ChecklistResponse {
	out := &ChecklistResponse{TemplateID: c.TemplateID, Groups: make([]ChecklistGroupResponse, len(c.Groups))}
	for gi, g := range c.Groups {
		items := make([]ChecklistItemResponse, len(g.Items))
		for ii, it := range g.Items {
			items[ii] = ChecklistItemResponse{Text: it.Text, Status: string(it.Status), Comment: it.Comment}
		}
		out.Groups[gi] = ChecklistGroupResponse{Title: g.Title, Items: items}
	}
	return out
}

// PartLineResponse carries the updated order plus the stock evaluation of the
// touched line, so field techs see shortfall warnings immediately.
type PartLineResponse struct {
	WorkOrder       WorkOrderResponse `json:"work_order"`
	StockSufficient bool              `json:"stock_sufficient"`
	StockShortfall  int               `json:"stock_shortfall,omitempty"`
}

func FromPartResult(r usecase.PartResult) PartLineResponse {
	return PartLineResponse{
		WorkOrder:       FromWorkOrder(r.WorkOrder),
		StockSufficient: r.Evaluation.Sufficient,
		StockShortfall:  r.Evaluation.Shortfall,
	}
}
