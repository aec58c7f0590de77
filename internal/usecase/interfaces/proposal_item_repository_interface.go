package interfaces

import (
	"context"

	"propostas_api/internal/domain/entities"
)

// IProposalItemRepository stores which plans belong to which proposal.
// Add fails with ErrDuplicateRecord when the (proposal, plan) pair exists.
type IProposalItemRepository interface {
	Add(ctx context.Context, item entities.ProposalItem) (entities.ProposalItem, error)
	ListByProposalID(ctx context.Context, proposalID string) ([]entities.ProposalItem, error)
	DeleteByPlan(ctx context.Context, proposalID, planID string) (bool, error)
	DeleteByProposalID(ctx context.Context, proposalID string) error
}
