package usecase

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/usecase/interfaces"
)

// viewLoader joins a proposal with its client, items, plans and services.
// Both record stores share it, so the join lives here and not in SQL.
type viewLoader struct {
	proposals interfaces.IProposalRepository
	items     interfaces.IProposalItemRepository
	catalog   interfaces.ICatalogRepository
	clients   interfaces.IClientRepository
}

func (l viewLoader) proposal(ctx context.Context, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}
	p, err := l.proposals.GetByID(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return p, nil
}

func (l viewLoader) load(ctx context.Context, id string) (entities.ProposalView, error) {
	p, err := l.proposal(ctx, id)
	if err != nil {
		return entities.ProposalView{}, err
	}

	view := entities.ProposalView{Proposal: p}
	if p.HasClient() {
		c, err := l.clients.GetByID(ctx, p.ClientID)
		if err != nil {
			return entities.ProposalView{}, err
		}
		if c.ID != "" {
			view.Client = &c
		}
	}

	items, err := l.cartItems(ctx, p.ID)
	if err != nil {
		return entities.ProposalView{}, err
	}
	view.Items = items
	return view, nil
}

// cartItems re-reads the proposal items and joins each with its plan and
// service. Items whose plan no longer exists are skipped.
func (l viewLoader) cartItems(ctx context.Context, proposalID string) ([]entities.CartItem, error) {
	rows, err := l.items.ListByProposalID(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(a, b int) bool { return rows[a].CreatedAt.Before(rows[b].CreatedAt) })

	services := map[string]entities.Service{}
	out := make([]entities.CartItem, 0, len(rows))
	for _, row := range rows {
		plan, err := l.catalog.GetPlan(ctx, row.ServicePlanID)
		if err != nil {
			return nil, err
		}
		if plan.ID == "" {
			slog.Warn("[proposal][usecase] item references missing plan", "proposal_id", proposalID, "plan_id", row.ServicePlanID)
			continue
		}
		svc, ok := services[plan.ServiceID]
		if !ok {
			svc, err = l.catalog.GetService(ctx, plan.ServiceID)
			if err != nil {
				return nil, err
			}
			services[plan.ServiceID] = svc
		}
		out = append(out, entities.CartItem{ServicePlan: plan, ServiceName: svc.Name, ServiceDescription: svc.Description})
	}
	return out, nil
}

// update applies a patch and maps store results to use case errors.
func (l viewLoader) update(ctx context.Context, id string, patch entities.ProposalPatch, expectedVersion *int) (entities.Proposal, error) {
	updated, err := l.proposals.Update(ctx, id, patch, expectedVersion)
	if err != nil {
		return entities.Proposal{}, mapStoreError(err)
	}
	if updated.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}
	return updated, nil
}
