package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/domain/lifecycle"
	"propostas_api/internal/domain/pricing"
	"propostas_api/internal/infrastructure/metrics"
	"propostas_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const maxObservationsLength = 4000

var (
	ErrProposalNotFound    = errors.New("proposal not found")
	ErrInvalidProposalID   = errors.New("invalid proposal id")
	ErrClientRequired      = errors.New("a client must be attached before saving the proposal")
	ErrVersionConflict     = errors.New("proposal was modified by another request")
	ErrObservationsTooLong = errors.New("observations are too long")
)

// IProposalUseCase exposes the proposal lifecycle.
//
//   - Create: a proposal without client is a simulation and starts in Rascunho
//   - UpdateStatus: runs the state machine and writes the new status at once
//   - AttachClient: links a client, moving a draft to Salva in the same write
type IProposalUseCase interface {
	Create(ctx context.Context, userID, clientID string) (entities.Proposal, error)
	Get(ctx context.Context, id string) (ProposalDetails, error)
	List(ctx context.Context) ([]entities.Proposal, error)
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus, expectedVersion *int) (entities.Proposal, error)
	AttachClient(ctx context.Context, id, clientID string, expectedVersion *int) (entities.Proposal, error)
	UpdateObservations(ctx context.Context, id, observations string, expectedVersion *int) (entities.Proposal, error)
}

// ProposalDetails is the joined view plus totals computed from the current
// items. Stale is set when they differ from the stored snapshot.
type ProposalDetails struct {
	entities.ProposalView
	LiveTotals pricing.Totals `json:"live_totals"`
	Stale      bool           `json:"stale"`
}

type ProposalUseCase struct {
	loader viewLoader
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	proposals interfaces.IProposalRepository,
	items interfaces.IProposalItemRepository,
	catalog interfaces.ICatalogRepository,
	clients interfaces.IClientRepository,
) *ProposalUseCase {
	return &ProposalUseCase{loader: viewLoader{proposals: proposals, items: items, catalog: catalog, clients: clients}}
}

func (u *ProposalUseCase) Create(ctx context.Context, userID, clientID string) (entities.Proposal, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID != "" {
		if err := u.requireClient(ctx, clientID); err != nil {
			return entities.Proposal{}, err
		}
	}

	now := time.Now().UTC()
	p := entities.Proposal{
		ID:        uuid.NewString(),
		ClientID:  clientID,
		UserID:    strings.TrimSpace(userID),
		Status:    lifecycle.InitialStatus(clientID),
		CreatedAt: now,
		UpdatedAt: now,
		Version:   1,
	}
	created, err := u.loader.proposals.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}
	slog.Info("[proposal][usecase] proposal created", "proposal_id", created.ID, "status", created.Status, "client_id", created.ClientID)
	return created, nil
}

func (u *ProposalUseCase) Get(ctx context.Context, id string) (ProposalDetails, error) {
	view, err := u.loader.load(ctx, id)
	if err != nil {
		return ProposalDetails{}, err
	}
	live := pricing.Compute(pricing.LinesFromItems(view.Items), pricing.Amount(view.DiscountValue))
	stale := pricing.Round2(live.Monthly) != pricing.Round2(view.TotalMonthly) ||
		pricing.Round2(live.Setup) != pricing.Round2(view.TotalSetup)
	return ProposalDetails{ProposalView: view, LiveTotals: live, Stale: stale}, nil
}

// List returns proposals newest first with their stored totals.
func (u *ProposalUseCase) List(ctx context.Context) ([]entities.Proposal, error) {
	out, err := u.loader.proposals.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(a, b int) bool { return out[a].CreatedAt.After(out[b].CreatedAt) })
	return out, nil
}

func (u *ProposalUseCase) Delete(ctx context.Context, id string) error {
	p, err := u.loader.proposal(ctx, id)
	if err != nil {
		return err
	}
	if err := u.loader.items.DeleteByProposalID(ctx, p.ID); err != nil {
		return fmt.Errorf("failed to delete proposal items: %w", err)
	}
	deleted, err := u.loader.proposals.Delete(ctx, p.ID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrProposalNotFound
	}
	slog.Info("[proposal][usecase] proposal deleted", "proposal_id", p.ID)
	return nil
}

// UpdateStatus returns ErrClientRequired, with the unchanged proposal, when
// a draft without client is asked to become Salva.
func (u *ProposalUseCase) UpdateStatus(ctx context.Context, id string, status entities.ProposalStatus, expectedVersion *int) (entities.Proposal, error) {
	p, err := u.loader.proposal(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}

	out, err := lifecycle.Transition(p, status)
	if err != nil {
		return entities.Proposal{}, err
	}
	if out.ClientRequired {
		slog.Info("[proposal][usecase] client required to save", "proposal_id", p.ID)
		return p, ErrClientRequired
	}
	if !out.Changed {
		return p, nil
	}

	updated, err := u.loader.update(ctx, p.ID, out.Patch(), expectedVersion)
	if err != nil {
		return entities.Proposal{}, err
	}
	metrics.StatusTransitions.WithLabelValues(string(updated.Status)).Inc()
	slog.Info("[proposal][usecase] status updated", "proposal_id", p.ID, "from", out.From, "to", updated.Status)
	return updated, nil
}

func (u *ProposalUseCase) AttachClient(ctx context.Context, id, clientID string, expectedVersion *int) (entities.Proposal, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Proposal{}, ErrInvalidClientID
	}
	p, err := u.loader.proposal(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if err := u.requireClient(ctx, clientID); err != nil {
		return entities.Proposal{}, err
	}

	patch := lifecycle.AttachClient(p, clientID)
	updated, err := u.loader.update(ctx, p.ID, patch, expectedVersion)
	if err != nil {
		return entities.Proposal{}, err
	}
	if patch.Status != nil {
		metrics.StatusTransitions.WithLabelValues(string(updated.Status)).Inc()
	}
	slog.Info("[proposal][usecase] client attached", "proposal_id", p.ID, "client_id", clientID, "status", updated.Status)
	return updated, nil
}

func (u *ProposalUseCase) UpdateObservations(ctx context.Context, id, observations string, expectedVersion *int) (entities.Proposal, error) {
	observations = strings.TrimSpace(observations)
	if len([]rune(observations)) > maxObservationsLength {
		return entities.Proposal{}, ErrObservationsTooLong
	}
	p, err := u.loader.proposal(ctx, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	return u.loader.update(ctx, p.ID, entities.ProposalPatch{Observations: &observations}, expectedVersion)
}

func (u *ProposalUseCase) requireClient(ctx context.Context, clientID string) error {
	c, err := u.loader.clients.GetByID(ctx, clientID)
	if err != nil {
		return err
	}
	if c.ID == "" {
		return ErrClientNotFound
	}
	return nil
}

func mapStoreError(err error) error {
	if errors.Is(err, interfaces.ErrVersionMismatch) {
		return ErrVersionConflict
	}
	return err
}
