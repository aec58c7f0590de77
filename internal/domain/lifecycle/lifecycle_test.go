package lifecycle

import (
	"testing"

	"propostas_api/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	draft := entities.Proposal{ID: "p1", Status: entities.ProposalStatusRascunho}
	draftWithClient := entities.Proposal{ID: "p1", Status: entities.ProposalStatusRascunho, ClientID: "c1"}
	saved := entities.Proposal{ID: "p1", Status: entities.ProposalStatusSalva, ClientID: "c1"}

	t.Run("draft to draft is a no-op", func(t *testing.T) {
		out, err := Transition(draft, entities.ProposalStatusRascunho)
		require.NoError(t, err)
		assert.False(t, out.Changed)
		assert.Equal(t, entities.ProposalStatusRascunho, out.To)
		assert.True(t, out.Patch().IsEmpty())
	})

	t.Run("saved to draft is rejected", func(t *testing.T) {
		_, err := Transition(saved, entities.ProposalStatusRascunho)
		assert.ErrorIs(t, err, ErrRevertToDraft)
	})

	t.Run("terminal to draft is rejected", func(t *testing.T) {
		accepted := saved
		accepted.Status = entities.ProposalStatusAceita
		_, err := Transition(accepted, entities.ProposalStatusRascunho)
		assert.ErrorIs(t, err, ErrRevertToDraft)
	})

	t.Run("draft to saved without client asks for a client", func(t *testing.T) {
		out, err := Transition(draft, entities.ProposalStatusSalva)
		require.NoError(t, err)
		assert.True(t, out.ClientRequired)
		assert.False(t, out.Changed)
		assert.Equal(t, entities.ProposalStatusRascunho, out.To)
		assert.True(t, out.Patch().IsEmpty())
	})

	t.Run("draft to saved with client applies", func(t *testing.T) {
		out, err := Transition(draftWithClient, entities.ProposalStatusSalva)
		require.NoError(t, err)
		assert.True(t, out.Changed)
		require.NotNil(t, out.Patch().Status)
		assert.Equal(t, entities.ProposalStatusSalva, *out.Patch().Status)
	})

	t.Run("lateral moves are allowed", func(t *testing.T) {
		declined := saved
		declined.Status = entities.ProposalStatusRecusada
		out, err := Transition(declined, entities.ProposalStatusAceita)
		require.NoError(t, err)
		assert.True(t, out.Changed)
		assert.Equal(t, entities.ProposalStatusAceita, out.To)

		out, err = Transition(draft, entities.ProposalStatusEnviada)
		require.NoError(t, err)
		assert.Equal(t, entities.ProposalStatusEnviada, out.To)
	})

	t.Run("same status is not a change", func(t *testing.T) {
		out, err := Transition(saved, entities.ProposalStatusSalva)
		require.NoError(t, err)
		assert.False(t, out.Changed)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := Transition(saved, entities.ProposalStatus("Salvo"))
		assert.ErrorIs(t, err, ErrUnknownStatus)
	})
}

func TestAttachClient(t *testing.T) {
	draft := entities.Proposal{ID: "p1", Status: entities.ProposalStatusRascunho}

	patch := AttachClient(draft, "c1")
	got := patch.Apply(draft)
	assert.Equal(t, "c1", got.ClientID)
	assert.Equal(t, entities.ProposalStatusSalva, got.Status)

	sent := entities.Proposal{ID: "p1", Status: entities.ProposalStatusEnviada, ClientID: "c0"}
	patch = AttachClient(sent, "c2")
	assert.Nil(t, patch.Status)
	got = patch.Apply(sent)
	assert.Equal(t, "c2", got.ClientID)
	assert.Equal(t, entities.ProposalStatusEnviada, got.Status)
}

func TestCanExport(t *testing.T) {
	assert.ErrorIs(t, CanExport(entities.Proposal{Status: entities.ProposalStatusRascunho}), ErrExportRequiresSave)
	assert.ErrorIs(t, CanExport(entities.Proposal{Status: entities.ProposalStatusRascunho, ClientID: "c1"}), ErrExportRequiresSave)
	assert.ErrorIs(t, CanExport(entities.Proposal{Status: entities.ProposalStatusSalva}), ErrExportRequiresClient)
	assert.NoError(t, CanExport(entities.Proposal{Status: entities.ProposalStatusSalva, ClientID: "c1"}))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, entities.ProposalStatusRascunho, InitialStatus(""))
	assert.Equal(t, entities.ProposalStatusRascunho, InitialStatus("  "))
	assert.Equal(t, entities.ProposalStatusSalva, InitialStatus("c1"))
}
