package sigcalc

import (
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/zephyrtronium/bigfloat"
)

// Power is a shortcut to compute base^exponent with the default context.
func Power(base, exponent decimal.Decimal) (decimal.Decimal, error) {
	return defaultContext.Power(base, exponent)
}

// PowerString is a shortcut to compute a power written as text with the
// default context.
func PowerString(src string, opts ...ParseOption) (decimal.Decimal, error) {
	return defaultContext.PowerString(src, opts...)
}

// Power computes base raised to exponent and rounds the result to the
// significant figures of base. The precision of exponent never limits the
// result. Exponents need not be integers.
//
// A negative base with a non-integer exponent and a zero base with a
// negative exponent are outside the domain of exponentiation; the error in
// those cases is a DomainError.
func (ctx *Context) Power(base, exponent decimal.Decimal) (decimal.Decimal, error) {
	return ctx.power(Operand{Value: base}, exponent)
}

// PowerString computes a power written as "base^exponent". Decimal commas
// and whitespace are handled as in Parse, and the base may carry the exact
// marker, in which case the result is not rounded. If there is more than
// one ^, then the first and last segments are used and the rest are
// ignored.
func (ctx *Context) PowerString(src string, opts ...ParseOption) (decimal.Decimal, error) {
	p := parsectx{marker: defaultMarker}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	text, cols := normalize(src)
	if !strings.Contains(text, "^") {
		return decimal.Decimal{}, &OperatorError{Col: len(cols) + 1}
	}
	toks := scan(text, []string{"^"}, cols)
	var nums []token
	for _, tok := range toks {
		if tok.kind == tokenNum {
			nums = append(nums, tok)
		}
	}
	if len(nums) == 0 {
		return decimal.Decimal{}, &EmptyExpressionError{Col: 1, End: "^"}
	}
	if toks[0].kind != tokenNum || toks[len(toks)-1].kind != tokenNum {
		// Dropping an empty base or exponent would silently use the other
		// segment for both.
		tok := toks[0]
		if tok.kind == tokenNum {
			tok = toks[len(toks)-1]
		}
		return decimal.Decimal{}, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	}
	base, err := parseOperand(nums[0], p.marker)
	if err != nil {
		return decimal.Decimal{}, err
	}
	exp, err := parseOperand(nums[len(nums)-1], p.marker)
	if err != nil {
		return decimal.Decimal{}, err
	}
	ctx.log.V(1).Info("split power", "src", src, "base", base.String(), "exponent", exp.String())
	return ctx.power(base, exp.Value)
}

func (ctx *Context) power(base Operand, exponent decimal.Decimal) (decimal.Decimal, error) {
	integer := exponent.Equal(exponent.Truncate(0))
	switch {
	case base.Value.Sign() < 0 && !integer:
		return decimal.Decimal{}, DomainError{X: base.Value, Func: "^"}
	case base.Value.Sign() == 0 && exponent.Sign() < 0:
		return decimal.Decimal{}, DomainError{X: exponent, Func: "0^"}
	}
	var r decimal.Decimal
	if integer && exponent.Abs().LessThanOrEqual(maxIntExponent) {
		r = ctx.intPow(base.Value, exponent)
	} else {
		var err error
		r, err = ctx.realPow(base.Value, exponent)
		if err != nil {
			return decimal.Decimal{}, err
		}
	}
	ctx.log.V(1).Info("computed power", "base", base.String(), "exponent", Format(exponent), "result", Format(r))
	if base.Exact {
		return r, nil
	}
	n := SigFigs(base.Value)
	v := RoundSigFigs(r, n)
	ctx.log.V(1).Info("rounded to significant figures", "value", Format(r), "figures", n, "result", Format(v))
	return v, nil
}

// maxIntExponent is the largest exponent computed exactly in decimal.
// Larger integer exponents go through big.Float like fractional ones.
var maxIntExponent = decimal.New(1024, 0)

// intPow computes x^n exactly for n >= 0. For negative n, the reciprocal of
// x^-n is kept to the context's division digits.
func (ctx *Context) intPow(x, n decimal.Decimal) decimal.Decimal {
	if n.Sign() >= 0 {
		return x.Pow(n)
	}
	p := x.Pow(n.Neg())
	return decimal.New(1, 0).DivRound(p, divScale(ctx.div, decimal.New(1, 0), p))
}

// realPow computes x^y through big.Float at the context's precision. A
// negative x is allowed only when y is an integer.
func (ctx *Context) realPow(x, y decimal.Decimal) (decimal.Decimal, error) {
	switch x.Sign() {
	case -1:
		if !y.Equal(y.Truncate(0)) {
			return decimal.Decimal{}, DomainError{X: x, Func: "^"}
		}
		r, err := ctx.realPow(x.Neg(), y)
		if err != nil {
			return decimal.Decimal{}, err
		}
		if y.Mod(decimal.New(2, 0)).Sign() != 0 {
			r = r.Neg()
		}
		return r, nil
	case 0:
		return decimal.Zero, nil
	}
	bx, ok := new(big.Float).SetPrec(ctx.prec).SetString(x.String())
	if !ok {
		return decimal.Decimal{}, errors.Errorf("sigcalc: cannot convert base %s", x)
	}
	by, ok := new(big.Float).SetPrec(ctx.prec).SetString(y.String())
	if !ok {
		return decimal.Decimal{}, errors.Errorf("sigcalc: cannot convert exponent %s", y)
	}
	z := new(big.Float).SetPrec(ctx.prec)
	bigfloat.Pow(z, bx, by)
	if z.IsInf() {
		return decimal.Decimal{}, DomainError{X: y, Func: Format(x) + "^"}
	}
	r, err := decimal.NewFromString(z.Text('e', -1))
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "sigcalc: converting %s^%s", x, y)
	}
	return r, nil
}
