package sigcalc

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	markeropt string
	strictopt struct{}
)

// parsectx holds general data for parsing.
type parsectx struct {
	// marker is the prefix that marks an operand as exact.
	marker string
	// strict indicates that empty segments are errors instead of being
	// dropped.
	strict bool
}

// defaultMarker is the prefix marking exact operands when no ExactMarker
// option is given.
const defaultMarker = "d"

// ExactMarker sets the prefix that marks an operand as exact. The default is
// "d", as in "d15 * 0.526". Panics if marker is empty.
func ExactMarker(marker string) ParseOption {
	if marker == "" {
		panic("sigcalc: empty exact marker")
	}
	return markeropt(marker)
}

func (o markeropt) parseOption(p parsectx) parsectx {
	p.marker = string(o)
	return p
}

// Strict tells the parser to reject empty segments, as in "1++2" or "-5",
// with an *EmptyExpressionError. Without Strict, empty segments are dropped
// and their operators are kept.
func Strict() ParseOption {
	return strictopt{}
}

func (strictopt) parseOption(p parsectx) parsectx {
	p.strict = true
	return p
}
