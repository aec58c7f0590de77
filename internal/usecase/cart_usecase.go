package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"propostas_api/internal/domain/cart"
	"propostas_api/internal/domain/entities"
	"propostas_api/internal/domain/pricing"
	"propostas_api/internal/infrastructure/metrics"
	"propostas_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CartState is the builder view of a proposal: its items and the totals
// for the discount being previewed.
type CartState struct {
	ProposalID string              `json:"proposal_id"`
	Version    int                 `json:"version"`
	Items      []entities.CartItem `json:"items"`
	Discount   pricing.Discount    `json:"discount"`
	Totals     pricing.Totals      `json:"totals"`
}

// ICartUseCase drives the proposal builder. Each call rebuilds the cart
// from the stored items, so the store is always the source of truth.
type ICartUseCase interface {
	Load(ctx context.Context, proposalID string) (CartState, error)
	AddItem(ctx context.Context, proposalID, planID string) (CartState, error)
	RemoveItem(ctx context.Context, proposalID, planID string) (CartState, error)
	Preview(ctx context.Context, proposalID string, d pricing.Discount) (CartState, error)
	Finalize(ctx context.Context, proposalID string, d pricing.Discount, expectedVersion *int) (cart.FinalizeResult, error)
}

type CartUseCase struct {
	loader viewLoader
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(
	proposals interfaces.IProposalRepository,
	items interfaces.IProposalItemRepository,
	catalog interfaces.ICatalogRepository,
	clients interfaces.IClientRepository,
) *CartUseCase {
	return &CartUseCase{loader: viewLoader{proposals: proposals, items: items, catalog: catalog, clients: clients}}
}

func (u *CartUseCase) Load(ctx context.Context, proposalID string) (CartState, error) {
	c, p, err := u.open(ctx, proposalID)
	if err != nil {
		return CartState{}, err
	}
	if err := c.SetDiscount(pricing.Amount(p.DiscountValue)); err != nil {
		return CartState{}, err
	}
	return stateOf(c, p), nil
}

func (u *CartUseCase) AddItem(ctx context.Context, proposalID, planID string) (CartState, error) {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return CartState{}, ErrInvalidPlanID
	}
	c, p, err := u.open(ctx, proposalID)
	if err != nil {
		return CartState{}, err
	}

	plan, err := u.loader.catalog.GetPlan(ctx, planID)
	if err != nil {
		return CartState{}, err
	}
	if plan.ID == "" {
		return CartState{}, ErrPlanNotFound
	}
	svc, err := u.loader.catalog.GetService(ctx, plan.ServiceID)
	if err != nil {
		return CartState{}, err
	}

	err = c.AddItem(ctx, plan, svc.Name)
	metrics.CartMutations.WithLabelValues("add", metrics.Result(err)).Inc()
	if err != nil {
		slog.Warn("[cart][usecase] add item failed", "proposal_id", p.ID, "plan_id", planID, "error", err)
		return CartState{}, err
	}
	slog.Info("[cart][usecase] item added", "proposal_id", p.ID, "plan_id", planID)
	return stateOf(c, p), nil
}

func (u *CartUseCase) RemoveItem(ctx context.Context, proposalID, planID string) (CartState, error) {
	c, p, err := u.open(ctx, proposalID)
	if err != nil {
		return CartState{}, err
	}

	err = c.RemoveItem(ctx, planID)
	metrics.CartMutations.WithLabelValues("remove", metrics.Result(err)).Inc()
	if err != nil {
		slog.Warn("[cart][usecase] remove item failed", "proposal_id", p.ID, "plan_id", planID, "error", err)
		return CartState{}, err
	}
	slog.Info("[cart][usecase] item removed", "proposal_id", p.ID, "plan_id", planID)
	return stateOf(c, p), nil
}

// Preview computes totals for a discount without storing anything.
func (u *CartUseCase) Preview(ctx context.Context, proposalID string, d pricing.Discount) (CartState, error) {
	c, p, err := u.open(ctx, proposalID)
	if err != nil {
		return CartState{}, err
	}
	if err := c.SetDiscount(d); err != nil {
		return CartState{}, err
	}
	return stateOf(c, p), nil
}

// Finalize stores the totals of the current items with the discount
// converted to an absolute amount.
func (u *CartUseCase) Finalize(ctx context.Context, proposalID string, d pricing.Discount, expectedVersion *int) (cart.FinalizeResult, error) {
	c, _, err := u.open(ctx, proposalID)
	if err != nil {
		return cart.FinalizeResult{}, err
	}
	if err := c.SetDiscount(d); err != nil {
		return cart.FinalizeResult{}, err
	}

	res, err := c.Finalize(ctx, expectedVersion)
	metrics.Finalizations.WithLabelValues(metrics.Result(err)).Inc()
	if err != nil {
		return cart.FinalizeResult{}, err
	}
	slog.Info("[cart][usecase] proposal finalized",
		"proposal_id", res.Proposal.ID,
		"total_monthly", res.Totals.Monthly,
		"total_setup", res.Totals.Setup,
		"discount_value", res.Totals.DiscountAmount,
		"next", res.Next,
	)
	return res, nil
}

func (u *CartUseCase) open(ctx context.Context, proposalID string) (*cart.Cart, entities.Proposal, error) {
	p, err := u.loader.proposal(ctx, proposalID)
	if err != nil {
		return nil, entities.Proposal{}, err
	}
	items, err := u.loader.cartItems(ctx, p.ID)
	if err != nil {
		return nil, entities.Proposal{}, err
	}
	c, err := cart.New(p.ID, cartStore{loader: u.loader}, items)
	if err != nil {
		return nil, entities.Proposal{}, err
	}
	return c, p, nil
}

func stateOf(c *cart.Cart, p entities.Proposal) CartState {
	return CartState{
		ProposalID: c.ProposalID(),
		Version:    p.Version,
		Items:      c.Items(),
		Discount:   c.Discount(),
		Totals:     c.Totals(),
	}
}

// cartStore adapts the repositories to cart.Store.
type cartStore struct {
	loader viewLoader
}

var _ cart.Store = cartStore{}

func (s cartStore) AddItem(ctx context.Context, proposalID, planID string) (entities.ProposalItem, error) {
	item, err := s.loader.items.Add(ctx, entities.ProposalItem{
		ID:            uuid.NewString(),
		ProposalID:    proposalID,
		ServicePlanID: planID,
		CreatedAt:     time.Now().UTC(),
	})
	if errors.Is(err, interfaces.ErrDuplicateRecord) {
		return entities.ProposalItem{}, cart.ErrPlanAlreadyInCart
	}
	return item, err
}

func (s cartStore) RemoveItem(ctx context.Context, proposalID, planID string) error {
	deleted, err := s.loader.items.DeleteByPlan(ctx, proposalID, planID)
	if err != nil {
		return err
	}
	if !deleted {
		return cart.ErrPlanNotInCart
	}
	return nil
}

func (s cartStore) SaveTotals(ctx context.Context, proposalID string, patch entities.ProposalPatch, expectedVersion *int) (entities.Proposal, error) {
	return s.loader.update(ctx, proposalID, patch, expectedVersion)
}
