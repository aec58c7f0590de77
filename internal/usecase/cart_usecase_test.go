package usecase

import (
	"context"
	"errors"
	"testing"

	"propostas_api/internal/domain/cart"
	"propostas_api/internal/domain/entities"
	"propostas_api/internal/domain/pricing"
	"propostas_api/internal/usecase/interfaces"

	"go.uber.org/mock/gomock"
)

func (m storeMocks) cartUseCase() *CartUseCase {
	return NewCartUseCase(m.proposals, m.items, m.catalog, m.clients)
}

var (
	planSite = entities.ServicePlan{ID: "plan-site", ServiceID: "svc-site", PlanName: "Básico", MonthlyFee: 100}
	planSEO  = entities.ServicePlan{ID: "plan-seo", ServiceID: "svc-seo", PlanName: "Pro", SetupFee: 50}
)

func TestCartUseCase_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newStoreMocks(ctrl)

	m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1", Version: 2, DiscountValue: 20}, nil)
	m.expectItems("p1", planSite, planSEO)

	st, err := m.cartUseCase().Load(context.Background(), "p1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.Items) != 2 || st.Version != 2 {
		t.Fatalf("unexpected state: %+v", st)
	}
	if st.Discount.Kind != pricing.DiscountAbsolute || st.Totals.Final != 130 {
		t.Fatalf("expected stored discount to be applied: %+v", st.Totals)
	}
}

func TestCartUseCase_AddItem(t *testing.T) {
	t.Run("blank plan", func(t *testing.T) {
		uc := NewCartUseCase(nil, nil, nil, nil)
		if _, err := uc.AddItem(context.Background(), "p1", " "); !errors.Is(err, ErrInvalidPlanID) {
			t.Fatalf("expected ErrInvalidPlanID, got %v", err)
		}
	})

	t.Run("unknown plan", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1"}, nil)
		m.expectItems("p1")
		m.catalog.EXPECT().GetPlan(gomock.Any(), "nope").Return(entities.ServicePlan{}, nil)

		if _, err := m.cartUseCase().AddItem(context.Background(), "p1", "nope"); !errors.Is(err, ErrPlanNotFound) {
			t.Fatalf("expected ErrPlanNotFound, got %v", err)
		}
	})

	t.Run("plan already in cart does not write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1"}, nil)
		m.expectItems("p1", planSite)
		m.catalog.EXPECT().GetPlan(gomock.Any(), planSite.ID).Return(planSite, nil)

		if _, err := m.cartUseCase().AddItem(context.Background(), "p1", planSite.ID); !errors.Is(err, cart.ErrPlanAlreadyInCart) {
			t.Fatalf("expected ErrPlanAlreadyInCart, got %v", err)
		}
	})

	t.Run("duplicate reported by store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1"}, nil)
		m.expectItems("p1")
		m.catalog.EXPECT().GetPlan(gomock.Any(), planSite.ID).Return(planSite, nil)
		m.catalog.EXPECT().GetService(gomock.Any(), planSite.ServiceID).Return(entities.Service{ID: planSite.ServiceID, Name: "Site"}, nil)
		m.items.EXPECT().Add(gomock.Any(), gomock.Any()).Return(entities.ProposalItem{}, interfaces.ErrDuplicateRecord)

		if _, err := m.cartUseCase().AddItem(context.Background(), "p1", planSite.ID); !errors.Is(err, cart.ErrPlanAlreadyInCart) {
			t.Fatalf("expected ErrPlanAlreadyInCart, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1"}, nil)
		m.expectItems("p1", planSEO)
		m.catalog.EXPECT().GetPlan(gomock.Any(), planSite.ID).Return(planSite, nil)
		m.items.EXPECT().Add(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, it entities.ProposalItem) (entities.ProposalItem, error) {
				if it.ProposalID != "p1" || it.ServicePlanID != planSite.ID || it.ID == "" {
					t.Fatalf("unexpected item: %+v", it)
				}
				return it, nil
			},
		)

		st, err := m.cartUseCase().AddItem(context.Background(), "p1", planSite.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(st.Items) != 2 || st.Totals.Monthly != 100 || st.Totals.Setup != 50 {
			t.Fatalf("unexpected state: %+v", st)
		}
	})
}

func TestCartUseCase_RemoveItem(t *testing.T) {
	t.Run("not in cart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1"}, nil)
		m.expectItems("p1", planSite)

		if _, err := m.cartUseCase().RemoveItem(context.Background(), "p1", planSEO.ID); !errors.Is(err, cart.ErrPlanNotInCart) {
			t.Fatalf("expected ErrPlanNotInCart, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1"}, nil)
		m.expectItems("p1", planSite, planSEO)
		m.items.EXPECT().DeleteByPlan(gomock.Any(), "p1", planSite.ID).Return(true, nil)

		st, err := m.cartUseCase().RemoveItem(context.Background(), "p1", planSite.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(st.Items) != 1 || st.Items[0].ID != planSEO.ID {
			t.Fatalf("unexpected items: %+v", st.Items)
		}
	})
}

func TestCartUseCase_Preview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	m := newStoreMocks(ctrl)

	m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1"}, nil).Times(2)
	m.expectItems("p1", planSite, planSEO)
	m.items.EXPECT().ListByProposalID(gomock.Any(), "p1").Return(nil, nil)

	st, err := m.cartUseCase().Preview(context.Background(), "p1", pricing.Percent(10))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Totals.DiscountAmount != 15 || st.Totals.Final != 135 {
		t.Fatalf("unexpected totals: %+v", st.Totals)
	}

	if _, err := m.cartUseCase().Preview(context.Background(), "p1", pricing.Percent(120)); !errors.Is(err, pricing.ErrPercentOutOfRange) {
		t.Fatalf("expected ErrPercentOutOfRange, got %v", err)
	}
}

func TestCartUseCase_Finalize(t *testing.T) {
	t.Run("stores absolute discount and asks for client", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1", Version: 5}, nil)
		m.expectItems("p1", planSite, planSEO)
		m.proposals.EXPECT().Update(gomock.Any(), "p1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, patch entities.ProposalPatch, expected *int) (entities.Proposal, error) {
				if *patch.TotalMonthly != 100 || *patch.TotalSetup != 50 || *patch.DiscountValue != 15 {
					t.Fatalf("unexpected patch: monthly=%v setup=%v discount=%v", *patch.TotalMonthly, *patch.TotalSetup, *patch.DiscountValue)
				}
				if expected == nil || *expected != 5 {
					t.Fatalf("expected version 5")
				}
				out := patch.Apply(entities.Proposal{ID: "p1"})
				out.Version = 6
				return out, nil
			},
		)

		v := 5
		res, err := m.cartUseCase().Finalize(context.Background(), "p1", pricing.Percent(10), &v)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Next != cart.NextSelectClient || res.Totals.Final != 135 || res.Proposal.Version != 6 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("discount above subtotal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1", ClientID: "c1"}, nil)
		m.expectItems("p1", planSite)

		if _, err := m.cartUseCase().Finalize(context.Background(), "p1", pricing.Amount(500), nil); !errors.Is(err, cart.ErrNegativeTotal) {
			t.Fatalf("expected ErrNegativeTotal, got %v", err)
		}
	})

	t.Run("version conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		m := newStoreMocks(ctrl)

		m.proposals.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Proposal{ID: "p1", ClientID: "c1"}, nil)
		m.expectItems("p1", planSite)
		m.proposals.EXPECT().Update(gomock.Any(), "p1", gomock.Any(), gomock.Any()).Return(entities.Proposal{}, interfaces.ErrVersionMismatch)

		v := 1
		if _, err := m.cartUseCase().Finalize(context.Background(), "p1", pricing.Discount{}, &v); !errors.Is(err, ErrVersionConflict) {
			t.Fatalf("expected ErrVersionConflict, got %v", err)
		}
	})
}
