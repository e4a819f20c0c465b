package usecase

import (
	"context"
	"errors"
	"testing"

	"gestao_manutencao/internal/domain/entities"
	mock_interfaces "gestao_manutencao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sampleTemplate() entities.ChecklistTemplate {
	return entities.ChecklistTemplate{
		ID:      "tpl-1",
		Segment: "elevadores",
		Title:   "Preventiva mensal",
		Groups: []entities.ChecklistTemplateGroup{
			{Title: "Casa de máquinas", Items: []entities.ChecklistTemplateItem{{Text: "Freio"}, {Text: "Polia"}}},
			{Title: "Cabine", Items: []entities.ChecklistTemplateItem{{Text: "Botoeira"}}},
		},
	}
}

func TestChecklistUseCase_BindTemplate(t *testing.T) {
	t.Run("invalid ids", func(t *testing.T) {
		uc := NewChecklistUseCase(nil, nil)
		if _, err := uc.BindTemplate(context.Background(), " ", "tpl-1"); !errors.Is(err, ErrInvalidWorkOrderID) {
			t.Fatalf("expected ErrInvalidWorkOrderID, got %v", err)
		}
		if _, err := uc.BindTemplate(context.Background(), "wo-1", ""); !errors.Is(err, ErrInvalidTemplateID) {
			t.Fatalf("expected ErrInvalidTemplateID, got %v", err)
		}
	})

	t.Run("template not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		templates := mock_interfaces.NewMockIChecklistTemplateRepository(ctrl)
		uc := NewChecklistUseCase(orders, templates)

		orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openOrder(), nil)
		templates.EXPECT().GetByID(gomock.Any(), "tpl-x").Return(entities.ChecklistTemplate{}, nil)

		_, err := uc.BindTemplate(context.Background(), "wo-1", "tpl-x")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Fatalf("expected ErrTemplateNotFound, got %v", err)
		}
	})

	t.Run("binds a deep copy with pending items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		templates := mock_interfaces.NewMockIChecklistTemplateRepository(ctrl)
		uc := NewChecklistUseCase(orders, templates)

		w := openOrder()
		tpl := sampleTemplate()
		orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil)
		templates.EXPECT().GetByID(gomock.Any(), "tpl-1").Return(tpl, nil)
		orders.EXPECT().Update(gomock.Any(), gomock.Any(), w.Version).DoAndReturn(
			func(_ context.Context, next entities.WorkOrder, _ int) (entities.WorkOrder, error) {
				if next.Checklist == nil || next.Checklist.TemplateID != "tpl-1" {
					t.Fatalf("expected bound checklist, got %+v", next.Checklist)
				}
				if len(next.Checklist.Groups) != 2 || len(next.Checklist.Groups[0].Items) != 2 {
					t.Fatalf("unexpected checklist shape: %+v", next.Checklist)
				}
				if next.Checklist.Groups[0].Items[0].Status != entities.ChecklistItemStatusPendente {
					t.Fatalf("expected pending items")
				}
				// instance must be an independent copy
				next.Checklist.Groups[0].Items[0].Text = "alterado"
				if tpl.Groups[0].Items[0].Text != "Freio" {
					t.Fatalf("template was mutated by binding")
				}
				return next, nil
			},
		)

		if _, err := uc.BindTemplate(context.Background(), "wo-1", "tpl-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("second bind is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		templates := mock_interfaces.NewMockIChecklistTemplateRepository(ctrl)
		uc := NewChecklistUseCase(orders, templates)

		w := openOrder()
		w.Checklist = &entities.Checklist{TemplateID: "tpl-1"}
		orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil)
		// neither template read nor update may happen

		res, err := uc.BindTemplate(context.Background(), "wo-1", "tpl-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Checklist.TemplateID != "tpl-1" {
			t.Fatalf("existing checklist was replaced")
		}
	})
}

func TestChecklistUseCase_SetItemStatus(t *testing.T) {
	boundOrder := func() entities.WorkOrder {
		w := openOrder()
		instance := sampleTemplate().Instantiate()
		w.Checklist = &instance
		return w
	}

	t.Run("NÃO OK with empty comment fails", func(t *testing.T) {
		uc := NewChecklistUseCase(nil, nil)
		_, err := uc.SetItemStatus(context.Background(), "wo-1", 0, 0, entities.ChecklistItemStatusNaoOK, "   ")
		if !errors.Is(err, ErrCommentRequired) {
			t.Fatalf("expected ErrCommentRequired, got %v", err)
		}
	})

	t.Run("invalid status fails", func(t *testing.T) {
		uc := NewChecklistUseCase(nil, nil)
		_, err := uc.SetItemStatus(context.Background(), "wo-1", 0, 0, "TALVEZ", "")
		if !errors.Is(err, ErrInvalidItemStatus) {
			t.Fatalf("expected ErrInvalidItemStatus, got %v", err)
		}
	})

	t.Run("index out of range fails loudly", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewChecklistUseCase(orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(boundOrder(), nil).Times(2)

		if _, err := uc.SetItemStatus(context.Background(), "wo-1", 5, 0, entities.ChecklistItemStatusOK, ""); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange for group, got %v", err)
		}
		if _, err := uc.SetItemStatus(context.Background(), "wo-1", 0, 9, entities.ChecklistItemStatusOK, ""); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("expected ErrIndexOutOfRange for item, got %v", err)
		}
	})

	t.Run("no checklist bound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewChecklistUseCase(orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(openOrder(), nil)

		_, err := uc.SetItemStatus(context.Background(), "wo-1", 0, 0, entities.ChecklistItemStatusOK, "")
		if !errors.Is(err, ErrNoChecklistBound) {
			t.Fatalf("expected ErrNoChecklistBound, got %v", err)
		}
	})

	t.Run("NÃO OK with comment succeeds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewChecklistUseCase(orders, nil)

		w := boundOrder()
		orders.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil)
		orders.EXPECT().Update(gomock.Any(), gomock.Any(), w.Version).DoAndReturn(
			func(_ context.Context, next entities.WorkOrder, _ int) (entities.WorkOrder, error) {
				item := next.Checklist.Groups[0].Items[0]
				if item.Status != entities.ChecklistItemStatusNaoOK || item.Comment != "freio desgastado" {
					t.Fatalf("unexpected item: %+v", item)
				}
				return next, nil
			},
		)

		if _, err := uc.SetItemStatus(context.Background(), "wo-1", 0, 0, entities.ChecklistItemStatusNaoOK, " freio desgastado "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
