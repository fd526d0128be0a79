package sigcalc

import (
	"github.com/shopspring/decimal"
)

// DecimalPlaces returns the number of digits after the decimal point in d as
// it is written, e.g. 2 for 11.00.
func DecimalPlaces(d decimal.Decimal) int32 {
	if exp := d.Exponent(); exp < 0 {
		return -exp
	}
	return 0
}

// SigFigs returns the number of significant figures in d as it is written:
// every digit after leading zeros, including trailing zeros. So 0.00335 has
// three significant figures, 10 has two, and 11.00 has four. Zero has none.
func SigFigs(d decimal.Decimal) int {
	n := digits(d)
	if n == 0 {
		return 0
	}
	if exp := d.Exponent(); exp > 0 {
		n += int(exp)
	}
	return n
}

// PlacesBound returns the fewest decimal places among the inexact operands.
// The second result is false if there are no inexact operands.
func PlacesBound(operands []Operand) (int32, bool) {
	var n int32
	ok := false
	for _, x := range operands {
		if x.Exact {
			continue
		}
		if p := DecimalPlaces(x.Value); !ok || p < n {
			n = p
			ok = true
		}
	}
	return n, ok
}

// SigFigsBound returns the fewest significant figures among the inexact
// operands. The second result is false if there are no inexact operands.
func SigFigsBound(operands []Operand) (int, bool) {
	n := 0
	ok := false
	for _, x := range operands {
		if x.Exact {
			continue
		}
		if s := SigFigs(x.Value); !ok || s < n {
			n = s
			ok = true
		}
	}
	return n, ok
}

// RoundSigFigs rounds d to n significant figures, breaking ties to even.
// The result never has a positive exponent, so rounding 251.19 to two
// figures gives 250, which itself counts as three. If n is not positive or d
// is zero, d is returned unchanged.
func RoundSigFigs(d decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 || d.Sign() == 0 {
		return d
	}
	places := int32(n) - intDigits(d)
	r := d.RoundBank(places)
	if digits(r) > n {
		// Rounding carried into a new digit, as in 9.996 to 10.00.
		r = r.RoundBank(places - 1)
	}
	if r.Exponent() > 0 {
		r = r.Round(0)
	}
	return r
}

// digits returns the number of digits in the coefficient of d, or 0 if d is
// zero.
func digits(d decimal.Decimal) int {
	c := d.Coefficient()
	if c.Sign() == 0 {
		return 0
	}
	return len(c.Abs(c).String())
}

// intDigits returns the position of the leading digit of a nonzero d
// relative to the decimal point: 3 for 123.4, 0 for 0.5, -2 for 0.00335.
func intDigits(d decimal.Decimal) int32 {
	return int32(digits(d)) + d.Exponent()
}

// Round rounds v, the result of applying ops to operands, using the default
// context.
func Round(v decimal.Decimal, operands []Operand, ops []Operator) (decimal.Decimal, error) {
	return defaultContext.Round(v, operands, ops)
}

// Round rounds v, the result of applying ops to operands. If ops contains
// only Add and Subtract, v is rounded half away from zero to the fewest
// decimal places among the inexact operands. If ops contains only Multiply
// and Divide, v is rounded to the fewest significant figures among the
// inexact operands, or returned unchanged if every operand is exact. If ops
// is empty, v is returned unchanged.
//
// If ops mixes the two kinds, the error is a *MixedOperatorsError. If ops is
// additive and every operand is exact, the error is an
// *UnboundedPrecisionError.
func (ctx *Context) Round(v decimal.Decimal, operands []Operand, ops []Operator) (decimal.Decimal, error) {
	add, mul := kinds(ops)
	switch {
	case add && mul:
		return decimal.Decimal{}, &MixedOperatorsError{Operators: append([]Operator(nil), ops...)}
	case add:
		n, ok := PlacesBound(operands)
		if !ok {
			return decimal.Decimal{}, &UnboundedPrecisionError{Value: v}
		}
		r := v.Round(n)
		ctx.log.V(1).Info("rounded to decimal places", "value", Format(v), "places", n, "result", Format(r))
		return r, nil
	case mul:
		n, ok := SigFigsBound(operands)
		if !ok {
			ctx.log.V(1).Info("all operands exact, not rounding", "value", Format(v))
			return v, nil
		}
		r := RoundSigFigs(v, n)
		ctx.log.V(1).Info("rounded to significant figures", "value", Format(v), "figures", n, "result", Format(r))
		return r, nil
	default:
		return v, nil
	}
}
