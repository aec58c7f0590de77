package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"propostas_api/internal/render"

	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var input, theme, out, tz string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a proposal view to PDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := readView(input)
			if err != nil {
				return err
			}
			if view.Client == nil {
				return fmt.Errorf("proposal %s has no client", view.ID)
			}
			th, err := render.ParseTheme(theme)
			if err != nil {
				return err
			}
			loc, err := time.LoadLocation(tz)
			if err != nil {
				return fmt.Errorf("invalid --tz: %w", err)
			}

			doc, err := render.NewRenderer(render.DefaultBrand(), loc).Render(render.Input{
				Proposal: view.Proposal,
				Client:   *view.Client,
				Items:    view.Items,
			}, th)
			if err != nil {
				return err
			}

			if out == "" {
				out = render.Filename(*view.Client)
			}
			if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
				return err
			}
			if err := os.WriteFile(out, doc.Content, 0644); err != nil {
				return fmt.Errorf("writing pdf: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d pages)\n", out, doc.Pages)
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Proposal view JSON file")
	cmd.Flags().StringVar(&theme, "theme", string(render.ThemeClassic), "Document theme (classic, detailed)")
	cmd.Flags().StringVar(&out, "out", "", "Output file (default: Proposta - <client>.pdf)")
	cmd.Flags().StringVar(&tz, "tz", "America/Sao_Paulo", "Time zone for printed dates")
	return cmd
}
