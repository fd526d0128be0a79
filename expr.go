package sigcalc

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Operand is a number in an expression. Value keeps the scale it was written
// with, so 11.00 has two decimal places and four significant figures. Exact
// operands are counted or defined quantities which never limit the precision
// of a result.
type Operand struct {
	Value decimal.Decimal
	Exact bool
}

// String formats the operand the way Parse reads it with default options.
// Exact operands are always written with the default marker "d", whatever
// marker they were parsed with.
func (o Operand) String() string {
	if o.Exact {
		return "d" + Format(o.Value)
	}
	return Format(o.Value)
}

// equal compares two operands including their scales.
func (o Operand) equal(p Operand) bool {
	return o.Exact == p.Exact && o.Value.Exponent() == p.Value.Exponent() && o.Value.Equal(p.Value)
}

// Expr is a chain of operands and operators evaluated from left to right.
//
// An Expr from NewExpr has exactly one more operand than operators. An Expr
// from Parse may have fewer operands than that when the source contained
// empty segments, as in "1++2" or "-5+3". The extra operators count towards
// the kinds of rounding the expression needs but are otherwise not applied.
type Expr struct {
	operands  []Operand
	operators []Operator
	// pos holds the column of each operator in the source, if parsed.
	pos []int
}

// NewExpr creates an expression from operands and operators. There must be
// exactly one more operand than operators.
func NewExpr(operands []Operand, operators []Operator) (*Expr, error) {
	if len(operands) != len(operators)+1 {
		return nil, errors.Errorf("sigcalc: %d operands cannot join %d operators", len(operands), len(operators))
	}
	for _, op := range operators {
		if op < 0 || op >= nOperators {
			return nil, &OperatorError{Operator: op.String()}
		}
	}
	e := Expr{
		operands:  append([]Operand(nil), operands...),
		operators: append([]Operator(nil), operators...),
	}
	return &e, nil
}

// Operands returns a copy of the expression's operands.
func (e *Expr) Operands() []Operand {
	return append([]Operand(nil), e.operands...)
}

// Operators returns a copy of the expression's operators.
func (e *Expr) Operators() []Operator {
	return append([]Operator(nil), e.operators...)
}

// Equal returns whether two expressions have the same operands, including
// exactness and scale, and the same operators.
func (e *Expr) Equal(f *Expr) bool {
	if len(e.operands) != len(f.operands) || len(e.operators) != len(f.operators) {
		return false
	}
	for i, o := range e.operands {
		if !o.equal(f.operands[i]) {
			return false
		}
	}
	for i, op := range e.operators {
		if op != f.operators[i] {
			return false
		}
	}
	return true
}

// String renders the expression in a canonical form. Operators left over
// from empty segments are written at the end. For an expression returned by
// Parse, the result parses with default options to an equal expression. An
// expression built by NewExpr with negative operands has no such form, since
// Parse never produces them: -5 + 3 renders as "-5 + 3", which parses as
// 5 - 3 +.
func (e *Expr) String() string {
	var b strings.Builder
	if len(e.operands) > 0 {
		b.WriteString(e.operands[0].String())
	}
	for i, op := range e.operators {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(op.String())
		if i+1 < len(e.operands) {
			b.WriteByte(' ')
			b.WriteString(e.operands[i+1].String())
		}
	}
	return b.String()
}

// opcol returns the source column of the ith operator, or 0 if unknown.
func (e *Expr) opcol(i int) int {
	if i < len(e.pos) {
		return e.pos[i]
	}
	return 0
}
