package sigcalc_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/sigcalc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"add", "0,232+5,538+43,2", "49.0"},
		{"sub", "0,00335 + 10,689 - 10", "1"},
		{"sub-half", "66,45 + 1,05 - 2,225", "65.28"},
		{"trailing-zeros", "6,70002 + 11,00 + 2,295", "20.00"},
		{"small", "2,25 + 0,0073 + 0,0655", "2.32"},
		{"div", "12,56 / 4,2", "3.0"},
		{"div-exact", "5,001 / d5", "1.000"},
		{"chain", "2,2 * 9,337 / 0,0836", "250"},
		{"mul-exact-lhs", "d15 * 0,526", "7.89"},
		{"mul-exact-decimal", "d0,33 * 12,429", "4.1016"},
		{"div-results", "7.89 / 4.1016", "1.92"},
		{"single", "43,20", "43.20"},
		{"single-exact", "d5", "5"},
		{"exact-product", "d2 * d3", "6"},
		{"exact-add", "d1 + 2,5", "3.5"},
		{"zero-sum", "0,5 - 0,5", "0.0"},
		// Empty segments are dropped but their operators remain.
		{"leading-op", "-5+3", "2"},
		{"double-op", "1++2", "3"},
		{"trailing-op", "2,0*", "2.0"},
	}
	ctx := sigcalc.NewContext(sigcalc.Logger(testr.NewWithOptions(t, testr.Options{Verbosity: 1})))
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			e, err := ctx.Parse(c.src)
			require.NoError(t, err)
			r, err := ctx.Eval(e)
			require.NoError(t, err)
			assert.Equal(t, c.want, sigcalc.Format(r))
		})
	}
}

func TestEvalDoesNotModify(t *testing.T) {
	e, err := sigcalc.Parse("2,2 * 9,337 / 0,0836")
	require.NoError(t, err)
	s := e.String()
	for i := 0; i < 2; i++ {
		r, err := sigcalc.Eval(e)
		require.NoError(t, err)
		assert.Equal(t, "250", sigcalc.Format(r))
	}
	assert.Equal(t, s, e.String())
}

func TestEvalSingleUnrounded(t *testing.T) {
	for _, src := range []string{"1", "1.23456789", "0.000100", "d2.5"} {
		e, err := sigcalc.Parse(src)
		require.NoError(t, err)
		r, err := sigcalc.Eval(e)
		require.NoError(t, err)
		x := e.Operands()[0].Value
		assert.True(t, x.Equal(r), "%s evaluated to %v", src, r)
		assert.Equal(t, x.Exponent(), r.Exponent(), "%s changed scale", src)
	}
}

func TestEvalAdditivePlaces(t *testing.T) {
	cases := []string{
		"0,232+5,538+43,2",
		"0,00335 + 10,689 - 10",
		"66,45 + 1,05 - 2,225",
		"6,70002 + 11,00 + 2,295",
		"2,25 + 0,0073 + 0,0655",
		"d1,23456 + 0,1 - 5",
		"100 - 99,999",
	}
	for _, src := range cases {
		e, err := sigcalc.Parse(src)
		require.NoError(t, err)
		r, err := sigcalc.Eval(e)
		require.NoError(t, err)
		want, ok := sigcalc.PlacesBound(e.Operands())
		require.True(t, ok)
		assert.Equal(t, want, sigcalc.DecimalPlaces(r), "%s = %v", src, r)
	}
}

func TestEvalMultiplicativeFigures(t *testing.T) {
	cases := []string{
		"12,56 / 4,2",
		"5,001 / d5",
		"2,2 * 9,337",
		"d15 * 0,526",
		"d0,33 * 12,429",
		"7.89 / 4.1016",
		"1,000 / 3,00",
		"0,000000000000000000000000000001 / 3",
		"1 / 700000000000000000000000000000000",
	}
	for _, src := range cases {
		e, err := sigcalc.Parse(src)
		require.NoError(t, err)
		r, err := sigcalc.Eval(e)
		require.NoError(t, err)
		want, ok := sigcalc.SigFigsBound(e.Operands())
		require.True(t, ok)
		assert.Equal(t, want, sigcalc.SigFigs(r), "%s = %v", src, r)
	}
}

func TestEvalErrors(t *testing.T) {
	t.Run("mixed", func(t *testing.T) {
		for _, src := range []string{"1+2*3", "1*2+3", "4/2-1", "5*-3"} {
			_, err := sigcalc.EvalString(src)
			var me *sigcalc.MixedOperatorsError
			assert.True(t, errors.As(err, &me), "%s gave error %#v, not *MixedOperatorsError", src, err)
		}
	})
	t.Run("empty", func(t *testing.T) {
		for _, src := range []string{"", "  ", "+", "*/"} {
			_, err := sigcalc.EvalString(src)
			var ee *sigcalc.EmptyExpressionError
			assert.True(t, errors.As(err, &ee), "%q gave error %#v, not *EmptyExpressionError", src, err)
		}
	})
	t.Run("zero-division", func(t *testing.T) {
		_, err := sigcalc.EvalString("1 / 0,00")
		var de *sigcalc.DivisionByZeroError
		require.True(t, errors.As(err, &de), "error was %#v, not *DivisionByZeroError", err)
		assert.Equal(t, 3, de.Pos())

		e, err := sigcalc.NewExpr([]sigcalc.Operand{num("1"), num("2"), num("0")}, []sigcalc.Operator{sigcalc.Divide, sigcalc.Divide})
		require.NoError(t, err)
		_, err = sigcalc.Eval(e)
		require.True(t, errors.As(err, &de), "error was %#v, not *DivisionByZeroError", err)
		assert.Equal(t, 0, de.Pos())
	})
	t.Run("unbounded", func(t *testing.T) {
		_, err := sigcalc.EvalString("d1 + d2")
		var ue *sigcalc.UnboundedPrecisionError
		require.True(t, errors.As(err, &ue), "error was %#v, not *UnboundedPrecisionError", err)
		assert.True(t, decimal.New(3, 0).Equal(ue.Value))
	})
	t.Run("number", func(t *testing.T) {
		_, err := sigcalc.EvalString("1 + x")
		var ne *sigcalc.NumberError
		assert.True(t, errors.As(err, &ne), "error was %#v, not *NumberError", err)
	})
}

func TestEvalDivDigits(t *testing.T) {
	e, err := sigcalc.Parse("d1 / d3")
	require.NoError(t, err)
	r, err := sigcalc.NewContext(sigcalc.DivDigits(5)).Eval(e)
	require.NoError(t, err)
	assert.Equal(t, "0.33333", sigcalc.Format(r))

	e, err = sigcalc.Parse("d1 / d30000")
	require.NoError(t, err)
	r, err = sigcalc.NewContext(sigcalc.DivDigits(5)).Eval(e)
	require.NoError(t, err)
	assert.Equal(t, "0.000033333", sigcalc.Format(r))
}

func TestEvalSmallQuotient(t *testing.T) {
	r, err := sigcalc.EvalString("0,000000000000000000000000000001 / 3")
	require.NoError(t, err)
	assert.Equal(t, "0.0000000000000000000000000000003", sigcalc.Format(r))
}

func TestEvalConcurrent(t *testing.T) {
	ctx := sigcalc.NewContext()
	e, err := ctx.Parse("2,2 * 9,337 / 0,0836")
	require.NoError(t, err)
	var wg sync.WaitGroup
	res := make([]string, 8)
	for i := range res {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := ctx.Eval(e)
			if err != nil {
				res[i] = err.Error()
				return
			}
			res[i] = sigcalc.Format(r)
		}(i)
	}
	wg.Wait()
	for i, r := range res {
		assert.Equal(t, "250", r, "goroutine %d", i)
	}
}

func TestContextClone(t *testing.T) {
	ctx := sigcalc.NewContext()
	assert.Equal(t, uint(64), ctx.Prec())
	c := ctx.Clone(sigcalc.Prec(128), nil)
	assert.Equal(t, uint(128), c.Prec())
	assert.Equal(t, uint(64), ctx.Prec(), "Clone modified its receiver")
}
