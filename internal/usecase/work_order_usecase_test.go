package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_manutencao/internal/domain/entities"
	mock_interfaces "gestao_manutencao/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func openOrder() entities.WorkOrder {
	return entities.WorkOrder{
		ID:           "wo-1",
		Status:       entities.WorkOrderStatusAberta,
		Priority:     entities.WorkOrderPriorityMedia,
		AssetID:      "asset-1",
		Title:        "Troca de cabo de tração",
		CreationDate: time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC),
		Version:      1,
	}
}

func inProgressOrder() entities.WorkOrder {
	w := openOrder()
	w.Status = entities.WorkOrderStatusEmAndamento
	start := time.Date(2026, 5, 10, 10, 0, 0, 0, time.UTC)
	w.StartDate = &start
	w.Version = 2
	return w
}

func completableOrder() entities.WorkOrder {
	w := inProgressOrder()
	w.AssinaturaTecnicoURL = "https://files/sig-tec.png"
	w.AssinaturaClienteURL = "https://files/sig-cli.png"
	return w
}

func TestWorkOrderUseCase_Create(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil)
		_, err := uc.Create(context.Background(), CreateWorkOrderInput{AssetID: "asset-1"})
		if !errors.Is(err, ErrInvalidTitle) {
			t.Fatalf("expected ErrInvalidTitle, got %v", err)
		}
	})

	t.Run("missing asset", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil)
		_, err := uc.Create(context.Background(), CreateWorkOrderInput{Title: "Manutenção"})
		if !errors.Is(err, ErrInvalidAssetID) {
			t.Fatalf("expected ErrInvalidAssetID, got %v", err)
		}
	})

	t.Run("unknown priority", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil)
		_, err := uc.Create(context.Background(), CreateWorkOrderInput{Title: "Manutenção", AssetID: "asset-1", Priority: "Crítica"})
		if !errors.Is(err, ErrInvalidPriority) {
			t.Fatalf("expected ErrInvalidPriority, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{})).DoAndReturn(
			func(_ context.Context, w entities.WorkOrder) (entities.WorkOrder, error) {
				if w.ID == "" || w.Status != entities.WorkOrderStatusAberta || w.Version != 1 {
					t.Fatalf("unexpected order: %+v", w)
				}
				if !w.MediaObrigatoria {
					t.Fatalf("expected media flag fixed at creation")
				}
				if w.CreationDate.IsZero() {
					t.Fatalf("expected creation date")
				}
				return w, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateWorkOrderInput{
			Title:            " Troca de cabo ",
			AssetID:          "asset-1",
			MediaObrigatoria: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Priority != entities.WorkOrderPriorityMedia {
			t.Fatalf("expected default priority Média, got %s", res.Priority)
		}
	})
}

func TestApplyTransition_StartAndPause(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("open to in-progress sets start date once", func(t *testing.T) {
		next, err := ApplyTransition(openOrder(), entities.WorkOrderStatusEmAndamento, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.StartDate == nil || !next.StartDate.Equal(now) {
			t.Fatalf("expected start date set to now, got %v", next.StartDate)
		}
	})

	t.Run("pause keeps start date", func(t *testing.T) {
		w := inProgressOrder()
		next, err := ApplyTransition(w, entities.WorkOrderStatusAberta, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.StartDate == nil || !next.StartDate.Equal(*w.StartDate) {
			t.Fatalf("pause must not clear start date")
		}
	})

	t.Run("restart does not overwrite start date", func(t *testing.T) {
		w := inProgressOrder()
		paused, err := ApplyTransition(w, entities.WorkOrderStatusAberta, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		restarted, err := ApplyTransition(paused, entities.WorkOrderStatusEmAndamento, now.Add(2*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !restarted.StartDate.Equal(*w.StartDate) {
			t.Fatalf("restart overwrote start date: %v", restarted.StartDate)
		}
	})
}

func TestApplyTransition_CompletionGates(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("media gate blocks when antes photo missing", func(t *testing.T) {
		w := completableOrder()
		w.MediaObrigatoria = true
		w.FotosAntesDepois = entities.FotosAntesDepois{Depois: "https://files/depois.jpg"}

		_, err := ApplyTransition(w, entities.WorkOrderStatusConcluida, now)
		if !errors.Is(err, ErrMediaRequired) {
			t.Fatalf("expected ErrMediaRequired, got %v", err)
		}
	})

	t.Run("checklist gate blocks NÃO OK without comment", func(t *testing.T) {
		w := completableOrder()
		w.Checklist = &entities.Checklist{Groups: []entities.ChecklistGroup{{
			Title: "Casa de máquinas",
			Items: []entities.ChecklistItem{{Text: "Freio", Status: entities.ChecklistItemStatusNaoOK}},
		}}}

		_, err := ApplyTransition(w, entities.WorkOrderStatusConcluida, now)
		if !errors.Is(err, ErrChecklistCommentRequired) {
			t.Fatalf("expected ErrChecklistCommentRequired, got %v", err)
		}
	})

	t.Run("signature gate blocks single signature", func(t *testing.T) {
		w := inProgressOrder()
		w.AssinaturaTecnicoURL = "https://files/sig-tec.png"

		_, err := ApplyTransition(w, entities.WorkOrderStatusConcluida, now)
		if !errors.Is(err, ErrSignaturesRequired) {
			t.Fatalf("expected ErrSignaturesRequired, got %v", err)
		}
	})

	t.Run("gates are monotone: all satisfied completes", func(t *testing.T) {
		w := completableOrder()
		w.MediaObrigatoria = true
		w.FotosAntesDepois = entities.FotosAntesDepois{Antes: "https://files/a.jpg", Depois: "https://files/d.jpg"}
		w.Checklist = &entities.Checklist{Groups: []entities.ChecklistGroup{{
			Items: []entities.ChecklistItem{{Text: "Freio", Status: entities.ChecklistItemStatusNaoOK, Comment: "pastilha gasta"}},
		}}}

		next, err := ApplyTransition(w, entities.WorkOrderStatusConcluida, now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if next.Status != entities.WorkOrderStatusConcluida {
			t.Fatalf("expected CONCLUIDA, got %s", next.Status)
		}
		if next.EndDate == nil || !next.EndDate.Equal(now) {
			t.Fatalf("expected end date set, got %v", next.EndDate)
		}
	})

	t.Run("completion only from in-progress", func(t *testing.T) {
		w := openOrder()
		_, err := ApplyTransition(w, entities.WorkOrderStatusConcluida, now)
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})
}

func TestApplyTransition_TerminalAndWaiting(t *testing.T) {
	now := time.Now().UTC()

	t.Run("terminal states are stable", func(t *testing.T) {
		for _, status := range []entities.WorkOrderStatus{entities.WorkOrderStatusConcluida, entities.WorkOrderStatusCancelada} {
			w := openOrder()
			w.Status = status

			if _, err := ApplyTransition(w, entities.WorkOrderStatusEmAndamento, now); !errors.Is(err, ErrIllegalTransition) {
				t.Fatalf("%s: expected ErrIllegalTransition, got %v", status, err)
			}
			// same-status request is an idempotent no-op
			next, err := ApplyTransition(w, status, now)
			if err != nil || next.Status != status {
				t.Fatalf("%s: expected no-op, got %v %v", status, next.Status, err)
			}
		}
	})

	t.Run("cancel from any non-terminal state", func(t *testing.T) {
		for _, status := range []entities.WorkOrderStatus{
			entities.WorkOrderStatusAberta,
			entities.WorkOrderStatusEmAndamento,
			entities.WorkOrderStatusEmEsperaPecas,
			entities.WorkOrderStatusAguardandoAprovacao,
			entities.WorkOrderStatusPendenteRetorno,
		} {
			w := openOrder()
			w.Status = status
			next, err := ApplyTransition(w, entities.WorkOrderStatusCancelada, now)
			if err != nil {
				t.Fatalf("%s: unexpected error: %v", status, err)
			}
			if next.Status != entities.WorkOrderStatusCancelada {
				t.Fatalf("%s: expected CANCELADA", status)
			}
		}
	})

	t.Run("waiting states reachable from open and in-progress", func(t *testing.T) {
		for _, target := range []entities.WorkOrderStatus{
			entities.WorkOrderStatusEmEsperaPecas,
			entities.WorkOrderStatusAguardandoAprovacao,
			entities.WorkOrderStatusPendenteRetorno,
		} {
			if _, err := ApplyTransition(openOrder(), target, now); err != nil {
				t.Fatalf("open -> %s: unexpected error: %v", target, err)
			}
			if _, err := ApplyTransition(inProgressOrder(), target, now); err != nil {
				t.Fatalf("in-progress -> %s: unexpected error: %v", target, err)
			}
		}
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		if _, err := ApplyTransition(openOrder(), "EM_FERIAS", now); !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("rejected transition does not mutate the input", func(t *testing.T) {
		w := inProgressOrder()
		before := w.Clone()
		_, err := ApplyTransition(w, entities.WorkOrderStatusConcluida, now)
		if !errors.Is(err, ErrSignaturesRequired) {
			t.Fatalf("expected ErrSignaturesRequired, got %v", err)
		}
		if w.Status != before.Status || w.EndDate != nil {
			t.Fatalf("input order was mutated: %+v", w)
		}
	})
}

func TestWorkOrderUseCase_RequestTransition(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "wo-x").Return(entities.WorkOrder{}, nil)

		_, err := uc.RequestTransition(context.Background(), "wo-x", entities.WorkOrderStatusEmAndamento)
		if !errors.Is(err, ErrWorkOrderNotFound) {
			t.Fatalf("expected ErrWorkOrderNotFound, got %v", err)
		}
	})

	t.Run("gate failure does not write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		w := inProgressOrder()
		w.MediaObrigatoria = true
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil)
		// no Update expectation: a rejected transition must not persist

		_, err := uc.RequestTransition(context.Background(), "wo-1", entities.WorkOrderStatusConcluida)
		if !errors.Is(err, ErrMediaRequired) {
			t.Fatalf("expected ErrMediaRequired, got %v", err)
		}
	})

	t.Run("success saves with CAS on version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		w := openOrder()
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.WorkOrder{}), w.Version).DoAndReturn(
			func(_ context.Context, next entities.WorkOrder, _ int) (entities.WorkOrder, error) {
				if next.Status != entities.WorkOrderStatusEmAndamento || next.StartDate == nil {
					t.Fatalf("unexpected saved order: %+v", next)
				}
				next.Version++
				return next, nil
			},
		)

		res, err := uc.RequestTransition(context.Background(), "wo-1", entities.WorkOrderStatusEmAndamento)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Version != w.Version+1 {
			t.Fatalf("expected bumped version, got %d", res.Version)
		}
	})

	t.Run("stale version surfaces conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		w := openOrder()
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), w.Version).Return(entities.WorkOrder{}, nil)

		_, err := uc.RequestTransition(context.Background(), "wo-1", entities.WorkOrderStatusEmAndamento)
		if !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("same-status request is a no-op without write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		w := openOrder()
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil)

		res, err := uc.RequestTransition(context.Background(), "wo-1", entities.WorkOrderStatusAberta)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Version != w.Version {
			t.Fatalf("no-op must not bump version")
		}
	})
}

func TestWorkOrderUseCase_AttachPhoto(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		uc := NewWorkOrderUseCase(nil)
		_, err := uc.AttachPhoto(context.Background(), "wo-1", "durante", "https://files/x.jpg")
		if !errors.Is(err, ErrInvalidPhotoKind) {
			t.Fatalf("expected ErrInvalidPhotoKind, got %v", err)
		}
	})

	t.Run("terminal order rejects photos", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		w := openOrder()
		w.Status = entities.WorkOrderStatusCancelada
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil)

		_, err := uc.AttachPhoto(context.Background(), "wo-1", PhotoKindAntes, "https://files/a.jpg")
		if !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("sets antes photo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIWorkOrderRepository(ctrl)
		uc := NewWorkOrderUseCase(repo)

		w := openOrder()
		repo.EXPECT().GetByID(gomock.Any(), "wo-1").Return(w, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), w.Version).DoAndReturn(
			func(_ context.Context, next entities.WorkOrder, _ int) (entities.WorkOrder, error) {
				if next.FotosAntesDepois.Antes != "https://files/a.jpg" {
					t.Fatalf("expected antes photo, got %+v", next.FotosAntesDepois)
				}
				return next, nil
			},
		)

		if _, err := uc.AttachPhoto(context.Background(), "wo-1", PhotoKindAntes, "https://files/a.jpg"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
