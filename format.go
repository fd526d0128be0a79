package sigcalc

import "github.com/shopspring/decimal"

// Format formats d in plain decimal notation, keeping trailing zeros that are
// part of its scale: 49.0 is "49.0", not "49".
func Format(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}
