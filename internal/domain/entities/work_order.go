package entities

import (
	"strings"
	"time"
)

// WorkOrderStatus represents the lifecycle of a work order (ordem de serviço).
//
// Domain notes:
//   - CONCLUIDA and CANCELADA are terminal; a terminal order only accepts
//     idempotent same-status requests.
//   - The waiting statuses (EM_ESPERA_PECAS, AGUARDANDO_APROVACAO,
//     PENDENTE_RETORNO) are legitimate non-terminal parking states; their
//     business triggers live outside this service.

type WorkOrderStatus string

const (
	WorkOrderStatusAberta              WorkOrderStatus = "ABERTA"
	WorkOrderStatusEmAndamento         WorkOrderStatus = "EM_ANDAMENTO"
	WorkOrderStatusEmEsperaPecas       WorkOrderStatus = "EM_ESPERA_PECAS"
	WorkOrderStatusAguardandoAprovacao WorkOrderStatus = "AGUARDANDO_APROVACAO"
	WorkOrderStatusPendenteRetorno     WorkOrderStatus = "PENDENTE_RETORNO"
	WorkOrderStatusConcluida           WorkOrderStatus = "CONCLUIDA"
	WorkOrderStatusCancelada           WorkOrderStatus = "CANCELADA"
)

func (s WorkOrderStatus) Valid() bool {
	switch s {
	case WorkOrderStatusAberta, WorkOrderStatusEmAndamento, WorkOrderStatusEmEsperaPecas,
		WorkOrderStatusAguardandoAprovacao, WorkOrderStatusPendenteRetorno,
		WorkOrderStatusConcluida, WorkOrderStatusCancelada:
		return true
	}
	return false
}

func (s WorkOrderStatus) Terminal() bool {
	return s == WorkOrderStatusConcluida || s == WorkOrderStatusCancelada
}

// Waiting reports whether the status is one of the non-terminal parking states.
func (s WorkOrderStatus) Waiting() bool {
	switch s {
	case WorkOrderStatusEmEsperaPecas, WorkOrderStatusAguardandoAprovacao, WorkOrderStatusPendenteRetorno:
		return true
	}
	return false
}

// WorkOrderPriority is an ordered enum: Baixa < Média < Alta < Urgente.

type WorkOrderPriority string

const (
	WorkOrderPriorityBaixa   WorkOrderPriority = "Baixa"
	WorkOrderPriorityMedia   WorkOrderPriority = "Média"
	WorkOrderPriorityAlta    WorkOrderPriority = "Alta"
	WorkOrderPriorityUrgente WorkOrderPriority = "Urgente"
)

var priorityRank = map[WorkOrderPriority]int{
	WorkOrderPriorityBaixa:   0,
	WorkOrderPriorityMedia:   1,
	WorkOrderPriorityAlta:    2,
	WorkOrderPriorityUrgente: 3,
}

func (p WorkOrderPriority) Valid() bool {
	_, ok := priorityRank[p]
	return ok
}

// Rank returns the ordering position of the priority (-1 when unknown).
func (p WorkOrderPriority) Rank() int {
	if r, ok := priorityRank[p]; ok {
		return r
	}
	return -1
}

// FotosAntesDepois carries the mandatory photographic evidence URLs.
type FotosAntesDepois struct {
	Antes  string `json:"antes,omitempty"`
	Depois string `json:"depois,omitempty"`
}

// WorkOrderPart is a declaration of parts consumption against the catalog.
// It is not an inventory transaction: stock is read, never decremented here.
type WorkOrderPart struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// StockEvaluation is the result of checking one parts line against current
// stock. Insufficient stock surfaces as a warning under the default policy.
type StockEvaluation struct {
	Sufficient bool `json:"sufficient"`
	Shortfall  int  `json:"shortfall"`
}

// EvaluateStock is a pure, side-effect-free check of a parts line against the
// product's current stock level.
func EvaluateStock(p WorkOrderPart, currentStock int) StockEvaluation {
	if p.Quantity <= currentStock {
		return StockEvaluation{Sufficient: true}
	}
	return StockEvaluation{Sufficient: false, Shortfall: p.Quantity - currentStock}
}

// WorkOrder is the maintenance ticket persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (asset_id-index): asset_id
//
// Concurrency:
//   - Version is an optimistic-concurrency counter; every repository update
//     is conditional on the expected version and increments it.
//
// Invariants:
//   - StartDate is set exactly once, on the first transition into
//     EM_ANDAMENTO; pausing back to ABERTA never clears it.
//   - EndDate is set exactly once, on the transition into CONCLUIDA.
//   - MediaObrigatoria is fixed at creation.
//   - Each signature pair (URL + timestamp) is set together, exactly once.

type WorkOrder struct {
	ID       string            `json:"id"`
	Status   WorkOrderStatus   `json:"status"`
	Priority WorkOrderPriority `json:"priority"`

	AssetID         string `json:"asset_id"`
	ClientID        string `json:"client_id,omitempty"`
	CreatedByUserID string `json:"created_by_user_id,omitempty"`
	ResponsibleID   string `json:"responsible_id,omitempty"`

	CreationDate  time.Time  `json:"creation_date"`
	ScheduledDate *time.Time `json:"scheduled_date,omitempty"`
	StartDate     *time.Time `json:"start_date,omitempty"`
	EndDate       *time.Time `json:"end_date,omitempty"`

	Title               string `json:"title"`
	Description         string `json:"description,omitempty"`
	InternalObservation string `json:"internal_observation,omitempty"`
	RootCause           string `json:"root_cause,omitempty"`
	RecommendedAction   string `json:"recommended_action,omitempty"`

	Checklist *Checklist      `json:"checklist,omitempty"`
	Parts     []WorkOrderPart `json:"parts,omitempty"`

	MediaObrigatoria bool             `json:"media_obrigatoria"`
	FotosAntesDepois FotosAntesDepois `json:"fotos_antes_depois"`

	AssinaturaTecnicoURL  string     `json:"assinatura_tecnico_url,omitempty"`
	DataAssinaturaTecnico *time.Time `json:"data_assinatura_tecnico,omitempty"`
	AssinaturaClienteURL  string     `json:"assinatura_cliente_url,omitempty"`
	DataAssinaturaCliente *time.Time `json:"data_assinatura_cliente,omitempty"`

	Version   int       `json:"version"`
	UpdatedAt time.Time `json:"updated_at"`
}

// MediaSatisfied is the media gate: it passes unless the order requires
// mandatory evidence and either photo is missing.
func (w WorkOrder) MediaSatisfied() bool {
	if !w.MediaObrigatoria {
		return true
	}
	return strings.TrimSpace(w.FotosAntesDepois.Antes) != "" &&
		strings.TrimSpace(w.FotosAntesDepois.Depois) != ""
}

// SignaturesComplete is the signature gate: both technician and client
// signatures must be present.
func (w WorkOrder) SignaturesComplete() bool {
	return w.AssinaturaTecnicoURL != "" && w.AssinaturaClienteURL != ""
}

// ChecklistCommentsSatisfied is the checklist gate: every item marked
// NÃO OK must carry a non-blank comment. An order without a checklist passes.
func (w WorkOrder) ChecklistCommentsSatisfied() bool {
	if w.Checklist == nil {
		return true
	}
	return w.Checklist.CommentsSatisfied()
}

// Clone returns a deep copy of the order, including checklist and parts.
// Mutating callers work on the copy so a rejected transition leaves the
// original untouched.
func (w WorkOrder) Clone() WorkOrder {
	out := w
	out.ScheduledDate = cloneTime(w.ScheduledDate)
	out.StartDate = cloneTime(w.StartDate)
	out.EndDate = cloneTime(w.EndDate)
	out.DataAssinaturaTecnico = cloneTime(w.DataAssinaturaTecnico)
	out.DataAssinaturaCliente = cloneTime(w.DataAssinaturaCliente)
	if w.Checklist != nil {
		c := w.Checklist.Clone()
		out.Checklist = &c
	}
	if w.Parts != nil {
		out.Parts = make([]WorkOrderPart, len(w.Parts))
		copy(out.Parts, w.Parts)
	}
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
