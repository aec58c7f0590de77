package interfaces

import (
	"context"

	"propostas_api/internal/domain/entities"
)

// IProposalRepository abstracts persistence for Proposal.
//
// Update applies only the non-nil fields of the patch, bumps the version
// and refreshes updated_at. When expectedVersion is set the write is a
// compare-and-swap and fails with ErrVersionMismatch if the stored version
// differs. A missing proposal yields an empty entity.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, id string) (entities.Proposal, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	Update(ctx context.Context, id string, patch entities.ProposalPatch, expectedVersion *int) (entities.Proposal, error)
	Delete(ctx context.Context, id string) (bool, error)
}
