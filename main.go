/*
Nfrac is a calculator for exact fractions, including fractions whose
numerator or denominator is itself a fraction. Values and commands are
given in postfix order:

	> (1 / 4) (1 / 4) + p
	(1 / 2)
	> ((1 / 2) / (1 / 2)) red p
	(1 / 1)
	> (1 / (1 / 3)) (1 / 2) * p
	(3 / 2)

For the full command list, see the calc package.

Nfrac is released under an MIT-style license.
*/
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/nfrac/nfrac/frac"
	"github.com/nfrac/nfrac/internal/calc"
	"github.com/nfrac/nfrac/internal/system/options"
	"github.com/nfrac/nfrac/internal/ui"
)

const version = "0.2.1"

func main() {
	options.Parse()

	if options.Version() {
		fmt.Println("nfrac " + version)

		return
	}

	c := calc.New()

	if e := options.Expression(); e != "" {
		if !evaluate(c, e) {
			os.Exit(1)
		}

		return
	}

	if s := options.Script(); s != "" {
		f, err := os.Open(s)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		defer f.Close()

		if !lines(c, f) {
			os.Exit(1)
		}

		return
	}

	if options.Interactive() {
		ui.Run(c)

		return
	}

	if !lines(c, os.Stdin) {
		os.Exit(1)
	}
}

func evaluate(c *calc.T, line string) bool {
	out, err := c.Eval(line)
	for _, s := range out {
		fmt.Println(s)
	}

	if err != nil && !errors.Is(err, calc.ErrQuit) {
		report(err)

		return false
	}

	return true
}

func lines(c *calc.T, r io.Reader) bool {
	ok := true

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		out, err := c.Eval(scanner.Text())
		for _, s := range out {
			fmt.Println(s)
		}

		if err != nil {
			if errors.Is(err, calc.ErrQuit) {
				return ok
			}

			report(err)

			ok = false
		}
	}

	return ok
}

func report(err error) {
	var syntax *frac.SyntaxError
	if errors.As(err, &syntax) {
		fmt.Fprintln(os.Stderr, syntax.Caret())
	}

	fmt.Fprintln(os.Stderr, "error:", err)
}
