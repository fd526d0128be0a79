package sigcalc

import "strconv"

// Operator is an arithmetic operator.
type Operator int8

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide

	// nOperators is the number of declared operators. It must stay last.
	nOperators
)

// String returns the operator's symbol.
func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	default:
		return "Operator(" + strconv.Itoa(int(op)) + ")"
	}
}

// additive returns true for Add and Subtract and false for Multiply and
// Divide. Panics on anything else.
func (op Operator) additive() bool {
	switch op {
	case Add, Subtract:
		return true
	case Multiply, Divide:
		return false
	default:
		panic("sigcalc: invalid operator " + op.String())
	}
}

var opsyms = func() []string {
	v := make([]string, nOperators)
	for op := Operator(0); op < nOperators; op++ {
		v[op] = op.String()
	}
	return v
}()

// Operators returns the symbols of all operators in declaration order. The
// tokenizer tries them in this order.
func Operators() []string {
	return append([]string(nil), opsyms...)
}

// ParseOperator returns the operator with the given symbol. If there is none,
// the error is an *OperatorError with Col 0.
func ParseOperator(s string) (Operator, error) {
	for i, sym := range opsyms {
		if s == sym {
			return Operator(i), nil
		}
	}
	return 0, &OperatorError{Operator: s}
}

// kinds reports which operator kinds appear in ops.
func kinds(ops []Operator) (add, mul bool) {
	for _, op := range ops {
		if op.additive() {
			add = true
		} else {
			mul = true
		}
	}
	return add, mul
}
