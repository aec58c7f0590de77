package render

import (
	"fmt"
	"strings"

	"propostas_api/internal/domain/entities"
	"propostas_api/internal/domain/pricing"
)

// Theme selects one of the document variants. Both share the same layout
// code and differ only in the settings below.
type Theme string

const (
	ThemeClassic  Theme = "classic"
	ThemeDetailed Theme = "detailed"
)

const emDash = "—"

func ParseTheme(v string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(v))) {
	case "", ThemeClassic:
		return ThemeClassic, nil
	case ThemeDetailed:
		return ThemeDetailed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTheme, v)
	}
}

type column struct {
	title string
	share float64
	align string
	value func(entities.CartItem) string
}

type themeSpec struct {
	name    Theme
	pills   bool
	columns []column
}

func themeFor(t Theme) (themeSpec, error) {
	switch t {
	case ThemeClassic, "":
		return themeSpec{
			name:  ThemeClassic,
			pills: true,
			columns: []column{
				{title: "Serviço", share: 0.55, align: "LM", value: func(it entities.CartItem) string { return it.ServiceName }},
				{title: "Mensal", share: 0.225, align: "RM", value: func(it entities.CartItem) string { return feeOrDash(it.MonthlyFee) }},
				{title: "Implementação", share: 0.225, align: "RM", value: func(it entities.CartItem) string { return feeOrDash(it.SetupFee) }},
			},
		}, nil
	case ThemeDetailed:
		return themeSpec{
			name: ThemeDetailed,
			columns: []column{
				{title: "Serviço", share: 0.46, align: "LM", value: itemTitle},
				{title: "Prazo", share: 0.16, align: "CM", value: func(it entities.CartItem) string { return deliveryLabel(it.DeliveryTimeDays) }},
				{title: "Mensal", share: 0.19, align: "RM", value: func(it entities.CartItem) string { return pricing.FormatBRL(it.MonthlyFee) }},
				{title: "Implementação", share: 0.19, align: "RM", value: func(it entities.CartItem) string { return pricing.FormatBRL(it.SetupFee) }},
			},
		}, nil
	default:
		return themeSpec{}, fmt.Errorf("%w: %q", ErrUnknownTheme, string(t))
	}
}

func feeOrDash(v float64) string {
	if v > 0 {
		return pricing.FormatBRL(v)
	}
	return emDash
}

func deliveryLabel(days int) string {
	switch {
	case days <= 0:
		return "A combinar"
	case days == 1:
		return "1 dia"
	default:
		return fmt.Sprintf("%d dias", days)
	}
}

func itemTitle(it entities.CartItem) string {
	if strings.TrimSpace(it.PlanName) == "" {
		return it.ServiceName
	}
	return it.ServiceName + " " + emDash + " " + it.PlanName
}

func itemDescription(it entities.CartItem) string {
	if v := strings.TrimSpace(it.Deliverables); v != "" {
		return v
	}
	if v := strings.TrimSpace(it.ServiceDescription); v != "" {
		return v
	}
	return "Descrição não informada."
}
