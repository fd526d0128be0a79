package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-logr/logr/funcr"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/zephyrtronium/sigcalc"
)

func main() {
	log.SetFlags(0)
	var (
		inname       string
		echo, strict bool
		prec, verb   int
		div          int
	)
	flag.StringVar(&inname, "in", "", "input file, one expression per line (default stdin if no args given)")
	flag.BoolVar(&echo, "echo", false, "print canonical expressions before results")
	flag.BoolVar(&strict, "strict", false, "reject empty operands instead of dropping them")
	flag.IntVar(&prec, "p", 64, "precision of real exponentiation in bits")
	flag.IntVar(&div, "div", 28, "significant digits computed by division before rounding")
	flag.IntVar(&verb, "v", 0, "debug log verbosity on stderr")
	flag.Parse()
	if prec <= 0 {
		log.Fatalf("precision (%d) must be positive", prec)
	}
	if div < 0 {
		log.Fatalf("division digits (%d) must not be negative", div)
	}

	logger := funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: verb})
	ctx := sigcalc.NewContext(
		sigcalc.Prec(uint(prec)),
		sigcalc.DivDigits(int32(div)),
		sigcalc.Logger(logger.WithName("sigcalc")),
	)
	var opts []sigcalc.ParseOption
	if strict {
		opts = append(opts, sigcalc.Strict())
	}

	srcs := flag.Args()
	lines, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	srcs = append(lines, srcs...)

	failed := false
	for _, src := range srcs {
		if strings.TrimSpace(src) == "" {
			continue
		}
		r, canon, err := calc(ctx, src, opts)
		if echo {
			fmt.Printf("%s = ", canon)
		}
		if err != nil {
			fmt.Println(err)
			failed = true
			continue
		}
		fmt.Println(sigcalc.Format(r))
	}
	if failed {
		os.Exit(1)
	}
}

// calc evaluates one line of input. Lines containing ^ are powers; the rest
// are expressions. The second result is the text to echo.
func calc(ctx *sigcalc.Context, src string, opts []sigcalc.ParseOption) (decimal.Decimal, string, error) {
	if strings.Contains(src, "^") {
		r, err := ctx.PowerString(src, opts...)
		return r, strings.TrimSpace(src), err
	}
	e, err := ctx.Parse(src, opts...)
	if err != nil {
		return decimal.Decimal{}, strings.TrimSpace(src), err
	}
	r, err := ctx.Eval(e)
	return r, e.String(), err
}

// infile reads the lines of the named input file. If inname is "-", or if it
// is empty and std is true, lines are read from stdin.
func infile(inname string, std bool) ([]string, error) {
	var f io.Reader
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer in.Close()
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", inname)
	}
	return lines, nil
}
