package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/domain/lifecycle"
	"propostas_api/internal/usecase/interfaces"
	mock_interfaces "propostas_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type storeMocks struct {
	proposals *mock_interfaces.MockIProposalRepository
	items     *mock_interfaces.MockIProposalItemRepository
	catalog   *mock_interfaces.MockICatalogRepository
	clients   *mock_interfaces.MockIClientRepository
}

func newStoreMocks(ctrl *gomock.Controller) storeMocks {
	return storeMocks{
		proposals: mock_interfaces.NewMockIProposalRepository(ctrl),
		items:     mock_interfaces.NewMockIProposalItemRepository(ctrl),
		catalog:   mock_interfaces.NewMockICatalogRepository(ctrl),
		clients:   mock_interfaces.NewMockIClientRepository(ctrl),
	}
}

func (m storeMocks) proposalUseCase() *ProposalUseCase {
	return NewProposalUseCase(m.proposals, m.items, m.catalog, m.clients)
}

// expectItems wires one proposal item per plan with its service.
func (m storeMocks) expectItems(proposalID string, plans ...entities.ServicePlan) {
	rows := make([]entities.ProposalItem, 0, len(plans))
	for i, p := range plans {
		rows = append(rows, entities.ProposalItem{ID: "item-" + p.ID, ProposalID: proposalID, ServicePlanID: p.ID, CreatedAt: time.Unix(int64(i), 0)})
		m.catalog.EXPECT().GetPlan(gomock.Any(), p.ID).Return(p, nil)
	}
	m.items.EXPECT().ListByProposalID(gomock.Any(), proposalID).Return(rows, nil)
	if len(plans) > 0 {
		m.catalog.EXPECT().GetService(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, id string) (entities.Service, error) {
				return entities.Service{ID: id, Name: "Serviço " + id}, nil
			},
		).AnyTimes()
	}
}

func TestProposalUseCase_Create(t *testing.T) {
	t.Run("simulation starts as draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		uc := m.proposalUseCase()

		m.proposals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) {
				if p.Status != entities.ProposalStatusRascunho || p.ClientID != "" || p.Version != 1 {
					t.Fatalf("unexpected proposal: %+v", p)
				}
				if p.TotalMonthly != 0 || p.TotalSetup != 0 || p.DiscountValue != 0 {
					t.Fatalf("expected zero totals: %+v", p)
				}
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), "user-1", ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("with client starts saved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		uc := m.proposalUseCase()

		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		m.proposals.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Proposal) (entities.Proposal, error) { return p, nil },
		)

		p, err := uc.Create(context.Background(), "user-1", "c1")
		if err != nil || p.Status != entities.ProposalStatusSalva || p.ClientID != "c1" {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}
	})

	t.Run("unknown client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		uc := m.proposalUseCase()

		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{}, nil)

		if _, err := uc.Create(context.Background(), "user-1", "c1"); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})
}

func TestProposalUseCase_UpdateStatus(t *testing.T) {
	draft := entities.Proposal{ID: "p1", Status: entities.ProposalStatusRascunho, Version: 3}
	saved := entities.Proposal{ID: "p1", Status: entities.ProposalStatusSalva, ClientID: "c1", Version: 3}

	t.Run("invalid id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil, nil)
		if _, err := uc.UpdateStatus(context.Background(), " ", entities.ProposalStatusSalva, nil); !errors.Is(err, ErrInvalidProposalID) {
			t.Fatalf("expected ErrInvalidProposalID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{}, nil)

		if _, err := m.proposalUseCase().UpdateStatus(context.Background(), "p1", entities.ProposalStatusSalva, nil); !errors.Is(err, ErrProposalNotFound) {
			t.Fatalf("expected ErrProposalNotFound, got %v", err)
		}
	})

	t.Run("draft without client requires client and writes nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(draft, nil)

		p, err := m.proposalUseCase().UpdateStatus(context.Background(), "p1", entities.ProposalStatusSalva, nil)
		if !errors.Is(err, ErrClientRequired) {
			t.Fatalf("expected ErrClientRequired, got %v", err)
		}
		if p.Status != entities.ProposalStatusRascunho {
			t.Fatalf("status must not change: %+v", p)
		}
	})

	t.Run("revert to draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(saved, nil)

		if _, err := m.proposalUseCase().UpdateStatus(context.Background(), "p1", entities.ProposalStatusRascunho, nil); !errors.Is(err, lifecycle.ErrRevertToDraft) {
			t.Fatalf("expected ErrRevertToDraft, got %v", err)
		}
	})

	t.Run("draft to draft is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(draft, nil)

		p, err := m.proposalUseCase().UpdateStatus(context.Background(), "p1", entities.ProposalStatusRascunho, nil)
		if err != nil || p.Version != 3 {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}
	})

	t.Run("applies and passes expected version", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(saved, nil)
		m.proposals.EXPECT().Update(gomock.Any(), "p1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch entities.ProposalPatch, expected *int) (entities.Proposal, error) {
				if patch.Status == nil || *patch.Status != entities.ProposalStatusEnviada || patch.ClientID != nil {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				if expected == nil || *expected != 3 {
					t.Fatalf("expected version 3, got %v", expected)
				}
				out := patch.Apply(saved)
				out.Version = 4
				return out, nil
			},
		)

		v := 3
		p, err := m.proposalUseCase().UpdateStatus(context.Background(), "p1", entities.ProposalStatusEnviada, &v)
		if err != nil || p.Status != entities.ProposalStatusEnviada || p.Version != 4 {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(saved, nil)
		m.proposals.EXPECT().Update(gomock.Any(), "p1", gomock.Any(), gomock.Any()).Return(entities.Proposal{}, interfaces.ErrVersionMismatch)

		v := 2
		if _, err := m.proposalUseCase().UpdateStatus(context.Background(), "p1", entities.ProposalStatusAceita, &v); !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(saved, nil)

		if _, err := m.proposalUseCase().UpdateStatus(context.Background(), "p1", "Salvo", nil); !errors.Is(err, lifecycle.ErrUnknownStatus) {
			t.Fatalf("expected ErrUnknownStatus, got %v", err)
		}
	})
}

func TestProposalUseCase_AttachClient(t *testing.T) {
	t.Run("draft becomes saved in one write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		draft := entities.Proposal{ID: "p1", Status: entities.ProposalStatusRascunho}

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(draft, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1"}, nil)
		m.proposals.EXPECT().Update(gomock.Any(), "p1", gomock.Any(), nil).DoAndReturn(
			func(_ context.Context, _ string, patch entities.ProposalPatch, _ *int) (entities.Proposal, error) {
				if patch.ClientID == nil || *patch.ClientID != "c1" || patch.Status == nil || *patch.Status != entities.ProposalStatusSalva {
					t.Fatalf("unexpected patch: %+v", patch)
				}
				return patch.Apply(draft), nil
			},
		)

		p, err := m.proposalUseCase().AttachClient(context.Background(), "p1", "c1", nil)
		if err != nil || p.Status != entities.ProposalStatusSalva || p.ClientID != "c1" {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}
	})

	t.Run("missing client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)
		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1", Status: entities.ProposalStatusRascunho}, nil)
		m.clients.EXPECT().GetByID(gomock.Any(), "c9").Return(entities.Client{}, nil)

		if _, err := m.proposalUseCase().AttachClient(context.Background(), "p1", "c9", nil); !errors.Is(err, ErrClientNotFound) {
			t.Fatalf("expected ErrClientNotFound, got %v", err)
		}
	})

	t.Run("blank client id", func(t *testing.T) {
		uc := NewProposalUseCase(nil, nil, nil, nil)
		if _, err := uc.AttachClient(context.Background(), "p1", " ", nil); !errors.Is(err, ErrInvalidClientID) {
			t.Fatalf("expected ErrInvalidClientID, got %v", err)
		}
	})
}

func TestProposalUseCase_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newStoreMocks(ctrl)

	p := entities.Proposal{ID: "p1", ClientID: "c1", Status: entities.ProposalStatusSalva, TotalMonthly: 100, TotalSetup: 0, DiscountValue: 20}
	m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(p, nil)
	m.clients.EXPECT().GetByID(gomock.Any(), "c1").Return(entities.Client{ID: "c1", Name: "Maria"}, nil)
	m.expectItems("p1",
		entities.ServicePlan{ID: "plan-1", ServiceID: "s1", MonthlyFee: 100},
		entities.ServicePlan{ID: "plan-2", ServiceID: "s2", SetupFee: 50},
	)

	d, err := m.proposalUseCase().Get(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Client == nil || d.Client.Name != "Maria" || len(d.Items) != 2 || d.Items[1].ServiceName != "Serviço s2" {
		t.Fatalf("unexpected view: %+v", d)
	}
	if d.LiveTotals.Final != 130 {
		t.Fatalf("expected live final 130, got %v", d.LiveTotals.Final)
	}
	if !d.Stale {
		t.Fatalf("expected stale snapshot: stored setup 0, live setup 50")
	}
}

func TestProposalUseCase_Delete(t *testing.T) {
	t.Run("deletes items then proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1"}, nil)
		gomock.InOrder(
			m.items.EXPECT().DeleteByProposalID(gomock.Any(), "p1").Return(nil),
			m.proposals.EXPECT().Delete(gomock.Any(), "p1").Return(true, nil),
		)

		if err := m.proposalUseCase().Delete(context.Background(), "p1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("items failure keeps proposal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1"}, nil)
		m.items.EXPECT().DeleteByProposalID(gomock.Any(), "p1").Return(errors.New("db"))

		if err := m.proposalUseCase().Delete(context.Background(), "p1"); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestProposalUseCase_UpdateObservations(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newStoreMocks(ctrl)

	m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1"}, nil)
	m.proposals.EXPECT().Update(gomock.Any(), "p1", gomock.Any(), nil).DoAndReturn(
		func(_ context.Context, _ string, patch entities.ProposalPatch, _ *int) (entities.Proposal, error) {
			if patch.Observations == nil || *patch.Observations != "Pagamento em 10 dias" || patch.Status != nil {
				t.Fatalf("unexpected patch: %+v", patch)
			}
			return entities.Proposal{ID: "p1", Observations: *patch.Observations}, nil
		},
	)

	p, err := m.proposalUseCase().UpdateObservations(context.Background(), "p1", "  Pagamento em 10 dias ", nil)
	if err != nil || p.Observations != "Pagamento em 10 dias" {
		t.Fatalf("unexpected result: %+v %v", p, err)
	}
}
