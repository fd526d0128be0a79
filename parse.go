package sigcalc

import (
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Expr = Operand { Operator Operand }
// Operand = [ marker ] Literal
// Literal = digits [ ( '.' | ',' ) { digit } ] | ( '.' | ',' ) digits
// Operator = '+' | '-' | '*' | '/'
//
// Whitespace is ignored everywhere, including inside literals.

// Parse parses an expression using the default context. The given options
// are applied in order.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	return defaultContext.Parse(src, opts...)
}

// Parse parses an expression so it can be evaluated. The given options are
// applied in order.
func (ctx *Context) Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := parsectx{marker: defaultMarker}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	text, cols := normalize(src)
	toks := scan(text, opsyms, cols)
	if p.strict {
		if err := checkEmpty(toks, utf8.RuneCountInString(src)); err != nil {
			return nil, err
		}
	}
	var e Expr
	var nums, ops []string
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			x, err := parseOperand(tok, p.marker)
			if err != nil {
				return nil, err
			}
			e.operands = append(e.operands, x)
			nums = append(nums, tok.text)
		case tokenOp:
			op, err := ParseOperator(tok.text)
			if err != nil {
				err.(*OperatorError).Col = tok.pos
				return nil, err
			}
			e.operators = append(e.operators, op)
			e.pos = append(e.pos, tok.pos)
			ops = append(ops, tok.text)
		default:
			panic("sigcalc: invalid token " + tok.String())
		}
	}
	ctx.log.V(1).Info("split expression", "src", src, "operands", nums, "operators", ops)
	return &e, nil
}

// checkEmpty finds the first empty segment in toks, if any. n is the number
// of runes in the source, used to position an empty segment at the end.
func checkEmpty(toks []token, n int) error {
	if len(toks) == 0 {
		return &EmptyExpressionError{Col: 1}
	}
	num := false
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			num = true
		case tokenOp:
			if !num {
				return &EmptyExpressionError{Col: tok.pos, End: tok.text}
			}
			num = false
		}
	}
	if !num {
		return &EmptyExpressionError{Col: n + 1}
	}
	return nil
}

// parseOperand converts a number token to an operand.
func parseOperand(tok token, marker string) (Operand, error) {
	s := tok.text
	exact := strings.HasPrefix(s, marker)
	if exact {
		s = s[len(marker):]
	}
	if !isLiteral(s) {
		return Operand{}, &NumberError{Col: tok.pos, Text: tok.text}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Operand{}, &NumberError{Col: tok.pos, Text: tok.text, Err: err}
	}
	return Operand{Value: d, Exact: exact}, nil
}

// isLiteral returns whether s is a plain decimal literal: digits with at most
// one decimal point and at least one digit. Signs and exponents are not
// allowed.
func isLiteral(s string) bool {
	var dig, dot bool
	for _, r := range s {
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.':
			if dot {
				return false
			}
			dot = true
		default:
			return false
		}
	}
	return dig
}
