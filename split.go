package sigcalc

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type token struct {
	text string
	kind tokenKind
	pos  int
}

func (t token) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is the text between two delimiters.
	tokenNum
	// tokenOp is a matched delimiter.
	tokenOp
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Split splits input into the substrings between delimiters and the
// delimiters themselves, in the order they appear. At each position, the
// delimiters are tried in order and the first one that matches is consumed.
//
// Empty segments are dropped. If input starts or ends with a delimiter, or
// contains two delimiters in a row, then len(operands) is less than
// len(matched)+1.
func Split(input string, delimiters []string) (operands, matched []string) {
	for _, tok := range scan(input, delimiters, nil) {
		switch tok.kind {
		case tokenNum:
			operands = append(operands, tok.text)
		case tokenOp:
			matched = append(matched, tok.text)
		}
	}
	return operands, matched
}

// scan tokenizes src. Positions are 1-based rune columns, translated through
// cols when it is non-nil.
func scan(src string, delims []string, cols []int) []token {
	var toks []token
	var b strings.Builder
	start := 0
	col := func(k int) int {
		if k < len(cols) {
			return cols[k]
		}
		return k + 1
	}
	flush := func() {
		if b.Len() == 0 {
			return
		}
		toks = append(toks, token{text: b.String(), kind: tokenNum, pos: col(start)})
		b.Reset()
	}
	for i, r := 0, 0; i < len(src); {
		d := match(src[i:], delims)
		if d != "" {
			flush()
			toks = append(toks, token{text: d, kind: tokenOp, pos: col(r)})
			i += len(d)
			r += utf8.RuneCountInString(d)
			continue
		}
		_, sz := utf8.DecodeRuneInString(src[i:])
		if b.Len() == 0 {
			start = r
		}
		b.WriteString(src[i : i+sz])
		i += sz
		r++
	}
	flush()
	return toks
}

// match returns the first delimiter that prefixes s, or the empty string.
func match(s string, delims []string) string {
	for _, d := range delims {
		if d != "" && strings.HasPrefix(s, d) {
			return d
		}
	}
	return ""
}

// normalize replaces decimal commas with periods and removes whitespace. The
// second result maps each rune index in the normalized text to its 1-based
// column in src.
func normalize(src string) (string, []int) {
	var b strings.Builder
	b.Grow(len(src))
	cols := make([]int, 0, len(src))
	col := 0
	for _, r := range src {
		col++
		switch {
		case unicode.IsSpace(r):
			continue
		case r == ',':
			r = '.'
		}
		b.WriteRune(r)
		cols = append(cols, col)
	}
	return b.String(), cols
}
