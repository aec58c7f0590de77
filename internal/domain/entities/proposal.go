package entities

import (
	"strings"
	"time"
)

// ProposalStatus represents the lifecycle of a commercial proposal.
//
// The tokens are the exact values stored in the proposals table and
// exchanged at the HTTP boundary.

type ProposalStatus string

const (
	ProposalStatusRascunho ProposalStatus = "Rascunho"
	ProposalStatusSalva    ProposalStatus = "Salva"
	ProposalStatusEnviada  ProposalStatus = "Enviada"
	ProposalStatusAceita   ProposalStatus = "Aceita"
	ProposalStatusRecusada ProposalStatus = "Recusada"
)

var proposalStatuses = []ProposalStatus{
	ProposalStatusRascunho,
	ProposalStatusSalva,
	ProposalStatusEnviada,
	ProposalStatusAceita,
	ProposalStatusRecusada,
}

// ProposalStatuses returns every known status in lifecycle order.
func ProposalStatuses() []ProposalStatus {
	out := make([]ProposalStatus, len(proposalStatuses))
	copy(out, proposalStatuses)
	return out
}

// ParseProposalStatus matches a boundary token exactly, after trimming spaces.
func ParseProposalStatus(v string) (ProposalStatus, bool) {
	v = strings.TrimSpace(v)
	for _, s := range proposalStatuses {
		if string(s) == v {
			return s, true
		}
	}
	return "", false
}

// IsTerminal reports whether no further business progress is expected.
func (s ProposalStatus) IsTerminal() bool {
	return s == ProposalStatusAceita || s == ProposalStatusRecusada
}

// Proposal is the aggregate root persisted in the proposals table.
//
// TotalMonthly and TotalSetup are a snapshot written on finalize; they do
// not follow later item changes. DiscountValue is always an absolute amount.
// Version is bumped by every update and used for compare-and-swap writes.
type Proposal struct {
	ID            string         `json:"id"`
	ClientID      string         `json:"client_id,omitempty"`
	UserID        string         `json:"user_id,omitempty"`
	Status        ProposalStatus `json:"status"`
	TotalMonthly  float64        `json:"total_monthly"`
	TotalSetup    float64        `json:"total_setup"`
	DiscountValue float64        `json:"discount_value"`
	Observations  string         `json:"observations,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Version       int            `json:"version"`
}

func (p Proposal) HasClient() bool {
	return strings.TrimSpace(p.ClientID) != ""
}

// ProposalPatch lists the fields an update may touch. Nil fields are left alone.
type ProposalPatch struct {
	ClientID      *string
	Status        *ProposalStatus
	TotalMonthly  *float64
	TotalSetup    *float64
	DiscountValue *float64
	Observations  *string
}

func (p ProposalPatch) IsEmpty() bool {
	return p.ClientID == nil && p.Status == nil && p.TotalMonthly == nil &&
		p.TotalSetup == nil && p.DiscountValue == nil && p.Observations == nil
}

// Apply returns a copy of the proposal with the patch fields set.
func (p ProposalPatch) Apply(in Proposal) Proposal {
	out := in
	if p.ClientID != nil {
		out.ClientID = *p.ClientID
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.TotalMonthly != nil {
		out.TotalMonthly = *p.TotalMonthly
	}
	if p.TotalSetup != nil {
		out.TotalSetup = *p.TotalSetup
	}
	if p.DiscountValue != nil {
		out.DiscountValue = *p.DiscountValue
	}
	if p.Observations != nil {
		out.Observations = *p.Observations
	}
	return out
}

// ProposalItem links a service plan to a proposal. At most one row exists
// per (ProposalID, ServicePlanID).
type ProposalItem struct {
	ID            string    `json:"id"`
	ProposalID    string    `json:"proposal_id"`
	ServicePlanID string    `json:"service_plan_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// CartItem is a plan denormalised with its service name, as shown in the
// builder and in the rendered document.
type CartItem struct {
	ServicePlan
	ServiceName        string `json:"service_name"`
	ServiceDescription string `json:"service_description,omitempty"`
}

// ProposalView is a proposal joined with its client and items.
type ProposalView struct {
	Proposal
	Client *Client    `json:"client,omitempty"`
	Items  []CartItem `json:"items"`
}
