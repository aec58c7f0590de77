// Package lifecycle holds the proposal status rules.
//
// The order is Rascunho -> Salva -> Enviada -> {Aceita | Recusada}. Only two
// rules are enforced: a proposal never returns to Rascunho once it left it,
// and leaving Rascunho for Salva needs a client. Any other move is accepted.
package lifecycle

import (
	"errors"

	"propostas_api/internal/domain/entities"
)

var (
	ErrUnknownStatus        = errors.New("unknown proposal status")
	ErrRevertToDraft        = errors.New("proposal cannot return to draft")
	ErrExportRequiresSave   = errors.New("proposal must be saved before export")
	ErrExportRequiresClient = errors.New("proposal has no client")
)

// Outcome describes what a requested transition resolves to.
//
// When ClientRequired is set the status was not changed and the caller has
// to attach a client first (see AttachClient).
type Outcome struct {
	From           entities.ProposalStatus
	To             entities.ProposalStatus
	Changed        bool
	ClientRequired bool
}

// Transition resolves a requested status for p without side effects.
func Transition(p entities.Proposal, requested entities.ProposalStatus) (Outcome, error) {
	to, ok := entities.ParseProposalStatus(string(requested))
	if !ok {
		return Outcome{}, ErrUnknownStatus
	}
	out := Outcome{From: p.Status, To: p.Status}

	if to == entities.ProposalStatusRascunho {
		if p.Status != entities.ProposalStatusRascunho {
			return Outcome{}, ErrRevertToDraft
		}
		return out, nil
	}

	if p.Status == entities.ProposalStatusRascunho && to == entities.ProposalStatusSalva && !p.HasClient() {
		out.ClientRequired = true
		return out, nil
	}

	out.To = to
	out.Changed = to != p.Status
	return out, nil
}

// Patch returns the store update for an applied outcome.
func (o Outcome) Patch() entities.ProposalPatch {
	if !o.Changed {
		return entities.ProposalPatch{}
	}
	to := o.To
	return entities.ProposalPatch{Status: &to}
}

// AttachClient builds the single update that links a client and, for a
// draft, moves it to Salva at the same time.
func AttachClient(p entities.Proposal, clientID string) entities.ProposalPatch {
	patch := entities.ProposalPatch{ClientID: &clientID}
	if p.Status == entities.ProposalStatusRascunho {
		saved := entities.ProposalStatusSalva
		patch.Status = &saved
	}
	return patch
}

// CanExport gates the document download.
func CanExport(p entities.Proposal) error {
	if p.Status == entities.ProposalStatusRascunho {
		return ErrExportRequiresSave
	}
	if !p.HasClient() {
		return ErrExportRequiresClient
	}
	return nil
}

// InitialStatus is Salva when the proposal is created for a client and
// Rascunho for a simulation.
func InitialStatus(clientID string) entities.ProposalStatus {
	if (entities.Proposal{ClientID: clientID}).HasClient() {
		return entities.ProposalStatusSalva
	}
	return entities.ProposalStatusRascunho
}
