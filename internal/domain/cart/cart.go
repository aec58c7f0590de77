// Package cart keeps the working set of plans of a proposal while it is
// being assembled. Every mutation is written to the store before the
// in-memory state changes, so a failed write leaves the cart as it was.
//
// A Cart is built per request and is not safe for concurrent use.
package cart

import (
	"context"
	"errors"
	"strings"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/domain/pricing"
)

var (
	ErrInvalidProposalID = errors.New("invalid proposal id")
	ErrInvalidPlan       = errors.New("invalid service plan")
	ErrPlanAlreadyInCart = errors.New("plan already in cart")
	ErrPlanNotInCart     = errors.New("plan not in cart")
	ErrNegativeTotal     = errors.New("discount exceeds proposal subtotal")
)

// Store is the persistence the cart mirrors its mutations to.
type Store interface {
	AddItem(ctx context.Context, proposalID, planID string) (entities.ProposalItem, error)
	RemoveItem(ctx context.Context, proposalID, planID string) error
	SaveTotals(ctx context.Context, proposalID string, patch entities.ProposalPatch, expectedVersion *int) (entities.Proposal, error)
}

type NextStep string

const (
	NextView         NextStep = "view"
	NextSelectClient NextStep = "select_client"
)

// FinalizeResult is what Finalize persisted and where the caller goes next.
type FinalizeResult struct {
	Totals   pricing.Totals    `json:"totals"`
	Proposal entities.Proposal `json:"proposal"`
	Next     NextStep          `json:"next"`
}

type Cart struct {
	proposalID string
	store      Store
	items      []entities.CartItem
	discount   pricing.Discount
}

// New rebuilds a cart from items already persisted for the proposal.
func New(proposalID string, store Store, items []entities.CartItem) (*Cart, error) {
	proposalID = strings.TrimSpace(proposalID)
	if proposalID == "" {
		return nil, ErrInvalidProposalID
	}
	c := &Cart{proposalID: proposalID, store: store}
	c.items = append(c.items, items...)
	return c, nil
}

func (c *Cart) ProposalID() string {
	return c.proposalID
}

func (c *Cart) Items() []entities.CartItem {
	out := make([]entities.CartItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Discount() pricing.Discount {
	return c.discount
}

func (c *Cart) Contains(planID string) bool {
	return c.indexOf(planID) >= 0
}

// AddItem persists the (proposal, plan) row and then appends the plan.
func (c *Cart) AddItem(ctx context.Context, plan entities.ServicePlan, serviceName string) error {
	if strings.TrimSpace(plan.ID) == "" {
		return ErrInvalidPlan
	}
	if err := pricing.CheckLines([]pricing.Line{{MonthlyFee: plan.MonthlyFee, SetupFee: plan.SetupFee}}); err != nil {
		return err
	}
	if c.Contains(plan.ID) {
		return ErrPlanAlreadyInCart
	}

	if _, err := c.store.AddItem(ctx, c.proposalID, plan.ID); err != nil {
		return err
	}
	c.items = append(c.items, entities.CartItem{ServicePlan: plan, ServiceName: serviceName})
	return nil
}

// RemoveItem deletes the (proposal, plan) row and then drops the plan.
func (c *Cart) RemoveItem(ctx context.Context, planID string) error {
	planID = strings.TrimSpace(planID)
	if planID == "" {
		return ErrInvalidPlan
	}
	if !c.Contains(planID) {
		return ErrPlanNotInCart
	}

	if err := c.store.RemoveItem(ctx, c.proposalID, planID); err != nil {
		return err
	}
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ID != planID {
			kept = append(kept, it)
		}
	}
	c.items = kept
	return nil
}

// SetDiscount only changes local state; nothing is stored until Finalize.
func (c *Cart) SetDiscount(d pricing.Discount) error {
	if err := d.Validate(); err != nil {
		return err
	}
	c.discount = d
	return nil
}

func (c *Cart) Totals() pricing.Totals {
	return pricing.Compute(pricing.LinesFromItems(c.items), c.discount)
}

// Finalize stores the computed totals on the proposal. The discount is
// stored as its absolute amount. Calling it again with the same cart and
// discount writes the same values.
func (c *Cart) Finalize(ctx context.Context, expectedVersion *int) (FinalizeResult, error) {
	totals := c.Totals()
	if totals.Negative() {
		return FinalizeResult{}, ErrNegativeTotal
	}

	monthly, setup, discount := totals.Monthly, totals.Setup, totals.DiscountAmount
	updated, err := c.store.SaveTotals(ctx, c.proposalID, entities.ProposalPatch{
		TotalMonthly:  &monthly,
		TotalSetup:    &setup,
		DiscountValue: &discount,
	}, expectedVersion)
	if err != nil {
		return FinalizeResult{}, err
	}

	next := NextView
	if !updated.HasClient() {
		next = NextSelectClient
	}
	return FinalizeResult{Totals: totals, Proposal: updated, Next: next}, nil
}

func (c *Cart) indexOf(planID string) int {
	for i, it := range c.items {
		if it.ID == planID {
			return i
		}
	}
	return -1
}
