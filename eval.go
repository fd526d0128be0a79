package sigcalc

import (
	"github.com/go-logr/logr"
	"github.com/shopspring/decimal"
)

// Context holds the settings for parsing, evaluating, and rounding. A
// Context is never modified after it is created, so it is safe to use
// concurrently.
type Context struct {
	prec uint
	div  int32
	log  logr.Logger
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	precopt uint
	divopt  int32
	logopt  struct {
		log logr.Logger
	}
)

func (precopt) ctxOption() {}
func (divopt) ctxOption()  {}
func (logopt) ctxOption()  {}

// Prec sets the binary precision of real-valued exponentiation.
func Prec(prec uint) ContextOption {
	return precopt(prec)
}

// DivDigits sets the number of significant digits computed by division
// before its result is rounded to significant figures. Reciprocals for
// negative integer powers use the same number of digits.
func DivDigits(digits int32) ContextOption {
	return divopt(digits)
}

// Logger sets the logger that receives debug messages describing each
// parsing and rounding step. Messages are logged at verbosity 1.
func Logger(log logr.Logger) ContextOption {
	return logopt{log}
}

// defaultContext is used by the package-level shortcuts.
var defaultContext = NewContext()

// NewContext creates a new context. If no precision is given, the default
// is 64 bits. If no division digits are given, the default is 28. If no
// logger is given, messages are discarded.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{prec: 64, div: 28, log: logr.Discard()}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := *ctx
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case precopt:
			n.prec = uint(opt)
		case divopt:
			n.div = int32(opt)
		case logopt:
			n.log = opt.log
		default:
			panic("sigcalc: unknown option type")
		}
	}
	return &n
}

// Prec returns the binary precision of real-valued exponentiation.
func (ctx *Context) Prec() uint {
	return ctx.prec
}

// Eval evaluates e from left to right and rounds the result.
//
// If e multiplies or divides, then every step is rounded to the fewest
// significant figures between the running value and the operand it is
// combined with. The running value is exact if the first operand is. If e
// adds or subtracts, then the final value is rounded once to the fewest
// decimal places among all of e's operands. If e has only one operand, then
// its value is returned unrounded.
//
// Errors are *EmptyExpressionError if e has no operands,
// *DivisionByZeroError for a division by a zero operand,
// *MixedOperatorsError if e mixes both kinds of operators, and
// *UnboundedPrecisionError if e adds or subtracts only exact operands.
func (ctx *Context) Eval(e *Expr) (decimal.Decimal, error) {
	if len(e.operands) == 0 {
		return decimal.Decimal{}, &EmptyExpressionError{}
	}
	add, mul := kinds(e.operators)
	if add && mul {
		return decimal.Decimal{}, &MixedOperatorsError{Operators: e.Operators()}
	}
	r := e.operands[0]
	for i, x := range e.operands[1:] {
		op := e.operators[i]
		v, err := ctx.apply(op, r.Value, x.Value)
		if err != nil {
			if err, ok := err.(*DivisionByZeroError); ok {
				err.Col = e.opcol(i)
			}
			return decimal.Decimal{}, err
		}
		ctx.log.V(1).Info("applied operator", "left", r.String(), "operator", op.String(), "right", x.String(), "result", Format(v))
		if mul {
			v, err = ctx.Round(v, []Operand{r, x}, []Operator{op})
			if err != nil {
				return decimal.Decimal{}, err
			}
		}
		r.Value = v
	}
	if add {
		v, err := ctx.Round(r.Value, e.operands, e.operators)
		if err != nil {
			return decimal.Decimal{}, err
		}
		r.Value = v
	}
	return r.Value, nil
}

// apply computes x op y without rounding, except that division is computed
// to the context's division digits.
func (ctx *Context) apply(op Operator, x, y decimal.Decimal) (decimal.Decimal, error) {
	switch op {
	case Add:
		return x.Add(y), nil
	case Subtract:
		return x.Sub(y), nil
	case Multiply:
		return x.Mul(y), nil
	case Divide:
		if y.Sign() == 0 {
			return decimal.Decimal{}, &DivisionByZeroError{}
		}
		return x.DivRound(y, divScale(ctx.div, x, y)), nil
	default:
		panic("sigcalc: invalid operator " + op.String())
	}
}

// divScale returns the decimal places that give x/y about n significant
// digits. It is never negative.
func divScale(n int32, x, y decimal.Decimal) int32 {
	if x.Sign() == 0 {
		return n
	}
	s := n - intDigits(x) + intDigits(y)
	if s < 0 {
		return 0
	}
	return s
}

// Eval is a shortcut to evaluate an expression with the default context.
func Eval(e *Expr) (decimal.Decimal, error) {
	return defaultContext.Eval(e)
}

// EvalString is a shortcut to parse and evaluate a string expression with
// the default context.
func EvalString(src string, opts ...ParseOption) (decimal.Decimal, error) {
	return defaultContext.EvalString(src, opts...)
}

// EvalString parses and evaluates a string expression.
func (ctx *Context) EvalString(src string, opts ...ParseOption) (decimal.Decimal, error) {
	e, err := ctx.Parse(src, opts...)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return ctx.Eval(e)
}
