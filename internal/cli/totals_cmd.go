package cli

import (
	"fmt"
	"text/tabwriter"

	"propostas_api/internal/domain/pricing"

	"github.com/spf13/cobra"
)

func newTotalsCmd() *cobra.Command {
	var input string
	var percent, value float64

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Preview the totals of a proposal view",
		Long: "Sums the item fees and applies a discount. Without --discount-percent or\n" +
			"--discount-value the discount stored on the proposal is used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := readView(input)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			var d pricing.Discount
			switch {
			case flags.Changed("discount-percent") && flags.Changed("discount-value"):
				return fmt.Errorf("use either --discount-percent or --discount-value")
			case flags.Changed("discount-percent"):
				d = pricing.Percent(percent)
			case flags.Changed("discount-value"):
				d = pricing.Amount(value)
			default:
				d = pricing.Amount(view.DiscountValue)
			}
			if err := d.Validate(); err != nil {
				return err
			}

			lines := pricing.LinesFromItems(view.Items)
			if err := pricing.CheckLines(lines); err != nil {
				return err
			}
			t := pricing.Compute(lines, d)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, it := range view.Items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", it.ServiceName, it.PlanName,
					pricing.FormatBRL(it.MonthlyFee), pricing.FormatBRL(it.SetupFee))
			}
			fmt.Fprintf(w, "Mensal\t\t%s\t\n", pricing.FormatBRL(t.Monthly))
			fmt.Fprintf(w, "Implantação\t\t%s\t\n", pricing.FormatBRL(t.Setup))
			fmt.Fprintf(w, "Desconto\t\t-%s\t\n", pricing.FormatBRL(t.DiscountAmount))
			fmt.Fprintf(w, "Total\t\t%s\t\n", pricing.FormatBRL(t.Final))
			if err := w.Flush(); err != nil {
				return err
			}
			if t.Negative() {
				return fmt.Errorf("discount exceeds the subtotal")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&input, "input", "", "Proposal view JSON file")
	cmd.Flags().Float64Var(&percent, "discount-percent", 0, "Percentage discount (0-100)")
	cmd.Flags().Float64Var(&value, "discount-value", 0, "Absolute discount")
	return cmd
}
