//go:build go1.18
// +build go1.18

package sigcalc_test

import (
	"testing"

	"github.com/zephyrtronium/sigcalc"
)

func FuzzParse(f *testing.F) {
	f.Add("0,232+5,538+43,2")
	f.Add("5,001 / d5")
	f.Add("-5++3*")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := sigcalc.Parse(s)
		if err != nil {
			return
		}
		r := e.String()
		g, err := sigcalc.Parse(r)
		if err != nil {
			t.Fatalf("%q rendered as %q, which failed to parse: %v", s, r, err)
		}
		if !e.Equal(g) {
			t.Fatalf("%q rendered as %q, which parsed differently: %v", s, r, g)
		}
	})
}
