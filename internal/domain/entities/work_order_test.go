package entities

import (
	"testing"
	"time"
)

func TestWorkOrderStatus(t *testing.T) {
	if !WorkOrderStatusConcluida.Terminal() || !WorkOrderStatusCancelada.Terminal() {
		t.Fatalf("expected terminal statuses")
	}
	if WorkOrderStatusAberta.Terminal() {
		t.Fatalf("ABERTA must not be terminal")
	}
	if !WorkOrderStatusEmEsperaPecas.Waiting() || WorkOrderStatusEmAndamento.Waiting() {
		t.Fatalf("unexpected waiting classification")
	}
	if WorkOrderStatus("EM_FERIAS").Valid() {
		t.Fatalf("unknown status must be invalid")
	}
}

func TestWorkOrderPriorityOrdering(t *testing.T) {
	order := []WorkOrderPriority{WorkOrderPriorityBaixa, WorkOrderPriorityMedia, WorkOrderPriorityAlta, WorkOrderPriorityUrgente}
	for i := 1; i < len(order); i++ {
		if order[i-1].Rank() >= order[i].Rank() {
			t.Fatalf("expected %s < %s", order[i-1], order[i])
		}
	}
	if WorkOrderPriority("Crítica").Rank() != -1 {
		t.Fatalf("unknown priority must rank -1")
	}
}

func TestMediaSatisfied(t *testing.T) {
	w := WorkOrder{MediaObrigatoria: false}
	if !w.MediaSatisfied() {
		t.Fatalf("optional media must always pass")
	}

	w.MediaObrigatoria = true
	if w.MediaSatisfied() {
		t.Fatalf("mandatory media with no photos must fail")
	}
	w.FotosAntesDepois.Antes = "https://files/a.jpg"
	if w.MediaSatisfied() {
		t.Fatalf("missing depois photo must fail")
	}
	w.FotosAntesDepois.Depois = "https://files/d.jpg"
	if !w.MediaSatisfied() {
		t.Fatalf("both photos must pass")
	}
}

func TestEvaluateStock(t *testing.T) {
	if ev := EvaluateStock(WorkOrderPart{ProductID: "p1", Quantity: 3}, 5); !ev.Sufficient || ev.Shortfall != 0 {
		t.Fatalf("expected sufficient, got %+v", ev)
	}
	if ev := EvaluateStock(WorkOrderPart{ProductID: "p1", Quantity: 8}, 5); ev.Sufficient || ev.Shortfall != 3 {
		t.Fatalf("expected shortfall 3, got %+v", ev)
	}
}

func TestWorkOrderClone(t *testing.T) {
	start := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	w := WorkOrder{
		ID:        "wo-1",
		StartDate: &start,
		Parts:     []WorkOrderPart{{ProductID: "p1", Quantity: 1}},
		Checklist: &Checklist{Groups: []ChecklistGroup{{Items: []ChecklistItem{{Text: "Freio"}}}}},
	}

	c := w.Clone()
	c.Parts[0].Quantity = 9
	c.Checklist.Groups[0].Items[0].Status = ChecklistItemStatusNaoOK
	*c.StartDate = c.StartDate.Add(time.Hour)

	if w.Parts[0].Quantity != 1 {
		t.Fatalf("clone shares parts slice")
	}
	if w.Checklist.Groups[0].Items[0].Status != ChecklistItemStatusPendente {
		t.Fatalf("clone shares checklist")
	}
	if !w.StartDate.Equal(start) {
		t.Fatalf("clone shares start date pointer")
	}
}
