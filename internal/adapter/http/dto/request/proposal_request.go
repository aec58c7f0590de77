package request

import (
	"errors"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/domain/pricing"
)

var ErrAmbiguousDiscount = errors.New("send either discount_percent or discount_value, not both")

type CreateProposalRequest struct {
	ClientID string `json:"client_id"`
}

type AddItemRequest struct {
	ServicePlanID string `json:"service_plan_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,proposal_status"`
}

func (r UpdateStatusRequest) ToStatus() entities.ProposalStatus {
	s, _ := entities.ParseProposalStatus(r.Status)
	return s
}

type AttachClientRequest struct {
	ClientID string `json:"client_id" binding:"required"`
}

type ObservationsRequest struct {
	Observations string `json:"observations"`
}

// DiscountRequest is accepted as JSON by finalize and as query string by
// the cart preview. At most one of the two fields may be set.
type DiscountRequest struct {
	DiscountPercent *float64 `json:"discount_percent" form:"discount_percent"`
	DiscountValue   *float64 `json:"discount_value" form:"discount_value"`
}

// Resolve returns the requested discount. No field means no discount.
func (r DiscountRequest) Resolve() (pricing.Discount, error) {
	switch {
	case r.DiscountPercent != nil && r.DiscountValue != nil:
		return pricing.Discount{}, ErrAmbiguousDiscount
	case r.DiscountPercent != nil:
		return pricing.Percent(*r.DiscountPercent), nil
	case r.DiscountValue != nil:
		return pricing.Amount(*r.DiscountValue), nil
	default:
		return pricing.Amount(0), nil
	}
}
