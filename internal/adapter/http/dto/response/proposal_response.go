package response

import (
	"time"

	"propostas_api/internal/domain/cart"
	"propostas_api/internal/domain/entities"
	"propostas_api/internal/domain/lifecycle"
	"propostas_api/internal/domain/pricing"
	"propostas_api/internal/usecase"
)

type ProposalResponse struct {
	ID            string    `json:"id"`
	ClientID      string    `json:"client_id,omitempty"`
	UserID        string    `json:"user_id,omitempty"`
	Status        string    `json:"status"`
	TotalMonthly  float64   `json:"total_monthly"`
	TotalSetup    float64   `json:"total_setup"`
	DiscountValue float64   `json:"discount_value"`
	FinalValue    float64   `json:"final_value"`
	Observations  string    `json:"observations,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int       `json:"version"`
}

// FromProposal maps the stored snapshot. FinalValue is derived from it the
// same way the list and the workbook show it.
func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:            p.ID,
		ClientID:      p.ClientID,
		UserID:        p.UserID,
		Status:        string(p.Status),
		TotalMonthly:  p.TotalMonthly,
		TotalSetup:    p.TotalSetup,
		DiscountValue: p.DiscountValue,
		FinalValue:    pricing.Round2(p.TotalMonthly + p.TotalSetup - p.DiscountValue),
		Observations:  p.Observations,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}

func FromProposals(list []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProposal(p))
	}
	return out
}

type TotalsResponse struct {
	Monthly        float64 `json:"monthly"`
	Setup          float64 `json:"setup"`
	Subtotal       float64 `json:"subtotal"`
	DiscountAmount float64 `json:"discount_amount"`
	Final          float64 `json:"final"`
}

func FromTotals(t pricing.Totals) TotalsResponse {
	return TotalsResponse{
		Monthly:        t.Monthly,
		Setup:          t.Setup,
		Subtotal:       t.Subtotal,
		DiscountAmount: t.DiscountAmount,
		Final:          t.Final,
	}
}

type CartItemResponse struct {
	ServicePlanID    string  `json:"service_plan_id"`
	ServiceID        string  `json:"service_id"`
	ServiceName      string  `json:"service_name"`
	PlanName         string  `json:"plan_name"`
	MonthlyFee       float64 `json:"monthly_fee"`
	SetupFee         float64 `json:"setup_fee"`
	Deliverables     string  `json:"deliverables,omitempty"`
	DeliveryTimeDays int     `json:"delivery_time_days"`
}

func FromCartItems(items []entities.CartItem) []CartItemResponse {
	out := make([]CartItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, CartItemResponse{
			ServicePlanID:    it.ID,
			ServiceID:        it.ServiceID,
			ServiceName:      it.ServiceName,
			PlanName:         it.PlanName,
			MonthlyFee:       it.MonthlyFee,
			SetupFee:         it.SetupFee,
			Deliverables:     it.Deliverables,
			DeliveryTimeDays: it.DeliveryTimeDays,
		})
	}
	return out
}

type ProposalDetailsResponse struct {
	ProposalResponse
	Client     *entities.Client   `json:"client,omitempty"`
	Items      []CartItemResponse `json:"items"`
	LiveTotals TotalsResponse     `json:"live_totals"`
	Stale      bool               `json:"stale"`
	CanExport  bool               `json:"can_export"`
}

func FromProposalDetails(d usecase.ProposalDetails) ProposalDetailsResponse {
	return ProposalDetailsResponse{
		ProposalResponse: FromProposal(d.Proposal),
		Client:           d.Client,
		Items:            FromCartItems(d.Items),
		LiveTotals:       FromTotals(d.LiveTotals),
		Stale:            d.Stale,
		CanExport:        lifecycle.CanExport(d.Proposal) == nil && d.Client != nil,
	}
}

type DiscountResponse struct {
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

type CartResponse struct {
	ProposalID string             `json:"proposal_id"`
	Version    int                `json:"version"`
	Items      []CartItemResponse `json:"items"`
	Discount   DiscountResponse   `json:"discount"`
	Totals     TotalsResponse     `json:"totals"`
}

func FromCartState(s usecase.CartState) CartResponse {
	return CartResponse{
		ProposalID: s.ProposalID,
		Version:    s.Version,
		Items:      FromCartItems(s.Items),
		Discount:   DiscountResponse{Kind: string(s.Discount.Kind), Value: s.Discount.Value},
		Totals:     FromTotals(s.Totals),
	}
}

type FinalizeResponse struct {
	Proposal ProposalResponse `json:"proposal"`
	Totals   TotalsResponse   `json:"totals"`
	Next     string           `json:"next"`
}

func FromFinalizeResult(r cart.FinalizeResult) FinalizeResponse {
	return FinalizeResponse{
		Proposal: FromProposal(r.Proposal),
		Totals:   FromTotals(r.Totals),
		Next:     string(r.Next),
	}
}
