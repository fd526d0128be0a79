package sigcalc

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NumberError is an error indicating an operand that is not a decimal
// literal. It implements InputError.
type NumberError struct {
	// Col is the position of the start of the operand.
	Col int
	// Text is the operand as it appeared after normalization.
	Text string
	// Err is the underlying conversion error, if any.
	Err error
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

func (err *NumberError) Unwrap() error {
	return err.Err
}

// OperatorError is an error indicating an operator token that is not
// understood. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood. It is empty when an
	// operator was required but missing.
	Operator string
}

func (err *OperatorError) Error() string {
	if err.Operator == "" {
		return errpos(err.Col, "missing operator")
	}
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an expression or segment with
// no operands. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the empty segment, or 0.
	Col int
	// End is the token that ended the empty segment.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, "no operand before "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// MixedOperatorsError is an error indicating an attempt to round the result
// of an expression which both adds or subtracts and multiplies or divides.
type MixedOperatorsError struct {
	// Operators is the operator list that was rejected.
	Operators []Operator
}

func (err *MixedOperatorsError) Error() string {
	v := make([]string, len(err.Operators))
	for i, op := range err.Operators {
		v[i] = op.String()
	}
	return "cannot mix addition or subtraction with multiplication or division: " + strings.Join(v, " ")
}

// DivisionByZeroError is an error indicating a division by a zero operand.
// It implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator, or 0 if the expression
	// was not parsed from text.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// UnboundedPrecisionError is an error indicating that a sum or difference has
// no inexact operands, so there is no number of decimal places to round it
// to.
type UnboundedPrecisionError struct {
	// Value is the unrounded result.
	Value decimal.Decimal
}

func (err *UnboundedPrecisionError) Error() string {
	return "no inexact operands to bound the decimal places of " + Format(err.Value)
}

// DomainError is an error returned when exponentiation is applied to
// arguments outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X decimal.Decimal
	// Func is a name identifying the operation.
	Func string
}

func (err DomainError) Error() string {
	r := Format(err.X) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input text implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error, or 0 if the
	// error did not come from text.
	Pos() int
}

var (
	_ InputError = (*NumberError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
)
