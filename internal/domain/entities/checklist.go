package entities

import "strings"

// ChecklistItemStatus is the tri-state answer for a checklist item. The
// stored values match the labels technicians see in the field app.

type ChecklistItemStatus string

const (
	ChecklistItemStatusPendente ChecklistItemStatus = ""
	ChecklistItemStatusOK       ChecklistItemStatus = "OK"
	ChecklistItemStatusNaoOK    ChecklistItemStatus = "NÃO OK"
	ChecklistItemStatusNA       ChecklistItemStatus = "N/A"
)

func (s ChecklistItemStatus) Valid() bool {
	switch s {
	case ChecklistItemStatusOK, ChecklistItemStatusNaoOK, ChecklistItemStatusNA:
		return true
	}
	return false
}

// ChecklistTemplate is the immutable, reusable inspection definition per
// equipment segment. Binding copies it; templates are never mutated.
type ChecklistTemplate struct {
	ID      string                   `json:"id"`
	Segment string                   `json:"segment,omitempty"`
	Title   string                   `json:"title"`
	Groups  []ChecklistTemplateGroup `json:"groups"`
}

type ChecklistTemplateGroup struct {
	Title string                  `json:"title"`
	Items []ChecklistTemplateItem `json:"items"`
}

type ChecklistTemplateItem struct {
	Text string `json:"text"`
}

// Instantiate deep-copies the template into a fresh checklist instance with
// every item pending.
func (t ChecklistTemplate) Instantiate() Checklist {
	c := Checklist{
		TemplateID: t.ID,
		Groups:     make([]ChecklistGroup, len(t.Groups)),
	}
	for gi, g := range t.Groups {
		items := make([]ChecklistItem, len(g.Items))
		for ii, it := range g.Items {
			items[ii] = ChecklistItem{Text: it.Text, Status: ChecklistItemStatusPendente}
		}
		c.Groups[gi] = ChecklistGroup{Title: g.Title, Items: items}
	}
	return c
}

// Checklist is the mutable instance owned by exactly one work order.
type Checklist struct {
	TemplateID string           `json:"template_id"`
	Groups     []ChecklistGroup `json:"groups"`
}

type ChecklistGroup struct {
	Title string          `json:"title"`
	Items []ChecklistItem `json:"items"`
}

type ChecklistItem struct {
	Text    string              `json:"text"`
	Status  ChecklistItemStatus `json:"status,omitempty"`
	Comment string              `json:"comment,omitempty"`
}

// CommentsSatisfied reports whether every NÃO OK item carries a non-blank
// comment. This is the authoritative precondition for completing the order.
func (c Checklist) CommentsSatisfied() bool {
	for _, g := range c.Groups {
		for _, it := range g.Items {
			if it.Status == ChecklistItemStatusNaoOK && strings.TrimSpace(it.Comment) == "" {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of the checklist.
func (c Checklist) Clone() Checklist {
	out := Checklist{TemplateID: c.TemplateID, Groups: make([]ChecklistGroup, len(c.Groups))}
	for gi, g := range c.Groups {
		items := make([]ChecklistItem, len(g.Items))
		copy(items, g.Items)
		out.Groups[gi] = ChecklistGroup{Title: g.Title, Items: items}
	}
	return out
}
