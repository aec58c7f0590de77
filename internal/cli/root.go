// Package cli implements propostactl, the offline tooling around the
// proposal renderer and the pricing engine. Commands read a proposal view,
// a proposal with its client and items as JSON, from a file.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"propostas_api/internal/domain/entities"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the top-level "propostactl" command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "propostactl",
		Short:         "Render and price commercial proposals offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRenderCmd(),
		newTotalsCmd(),
	)

	return root
}

func readView(path string) (entities.ProposalView, error) {
	if path == "" {
		return entities.ProposalView{}, fmt.Errorf("--input is required")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return entities.ProposalView{}, fmt.Errorf("reading proposal view: %w", err)
	}
	var view entities.ProposalView
	if err := json.Unmarshal(raw, &view); err != nil {
		return entities.ProposalView{}, fmt.Errorf("decoding proposal view: %w", err)
	}
	return view, nil
}
