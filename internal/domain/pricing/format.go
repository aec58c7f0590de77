package pricing

import "strings"

// FormatBRL renders an amount as "R$ 1234,50": two decimals, comma
// separator and no thousands grouping.
func FormatBRL(amount float64) string {
	return "R$ " + strings.Replace(dec(amount).StringFixed(2), ".", ",", 1)
}

// FormatPercent renders a percentage with up to two decimals, e.g. "12,5%".
func FormatPercent(p float64) string {
	s := dec(p).Round(2).String()
	return strings.Replace(s, ".", ",", 1) + "%"
}

// Round2 rounds an amount to cents.
func Round2(v float64) float64 {
	return dec(v).Round(2).InexactFloat64()
}
