// Package sigcalc evaluates chains of arithmetic on measured quantities,
// rounding results the way a lab notebook would.
//
// Sums and differences are rounded to the fewest decimal places among the
// operands, so "0,232 + 5,538 + 43,2" is 49.0. Products and quotients are
// rounded to the fewest significant figures, so "12,56 / 4,2" is 3.0. A
// literal prefixed with d, like "d5", is exact: it is a counted or defined
// quantity and never limits the precision of a result.
//
// Expressions are strictly left to right. There is no precedence, no
// parentheses, and no unary minus, and a single expression may not mix
// addition or subtraction with multiplication or division. Either a comma or
// a period may be used as the decimal separator.
//
package sigcalc
