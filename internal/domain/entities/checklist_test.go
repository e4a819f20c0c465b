package entities

import "testing"

func TestChecklistTemplateInstantiate(t *testing.T) {
	tpl := ChecklistTemplate{
		ID: "tpl-1",
		Groups: []ChecklistTemplateGroup{
			{Title: "Poço", Items: []ChecklistTemplateItem{{Text: "Amortecedores"}, {Text: "Iluminação"}}},
		},
	}

	c := tpl.Instantiate()
	if c.TemplateID != "tpl-1" || len(c.Groups) != 1 || len(c.Groups[0].Items) != 2 {
		t.Fatalf("unexpected instance: %+v", c)
	}
	for _, it := range c.Groups[0].Items {
		if it.Status != ChecklistItemStatusPendente || it.Comment != "" {
			t.Fatalf("expected pending item, got %+v", it)
		}
	}

	c.Groups[0].Items[0].Text = "alterado"
	if tpl.Groups[0].Items[0].Text != "Amortecedores" {
		t.Fatalf("instance mutation leaked into the template")
	}
}

func TestChecklistCommentsSatisfied(t *testing.T) {
	c := Checklist{Groups: []ChecklistGroup{{
		Items: []ChecklistItem{
			{Text: "Freio", Status: ChecklistItemStatusOK},
			{Text: "Polia", Status: ChecklistItemStatusNA},
		},
	}}}
	if !c.CommentsSatisfied() {
		t.Fatalf("OK/N.A. items must satisfy the rule")
	}

	c.Groups[0].Items = append(c.Groups[0].Items, ChecklistItem{Text: "Cabo", Status: ChecklistItemStatusNaoOK, Comment: "  "})
	if c.CommentsSatisfied() {
		t.Fatalf("NÃO OK with blank comment must fail")
	}

	c.Groups[0].Items[2].Comment = "trocar cabo"
	if !c.CommentsSatisfied() {
		t.Fatalf("NÃO OK with comment must pass")
	}
}
