// Released under an MIT license. See LICENSE.

// Package options parses nfrac's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	expression  string
	interactive bool
	script      string
	version     bool
	usage       = `nfrac - exact arithmetic on nested fractions.

Usage:
  nfrac [-e EXPRESSION]
  nfrac SCRIPT
  nfrac -h
  nfrac -v

Arguments:
  SCRIPT  Path to a file of nfrac calculator commands.

Options:
  -e, --expression=EXPRESSION  Evaluate the expression and exit.
  -h, --help                   Display this help.
  -v, --version                Print nfrac version.

With no operands, nfrac reads commands from stdin. If stdin is a TTY, an
interactive session with line editing and history is started.
`
)

func Expression() string {
	return expression
}

func Interactive() bool {
	return interactive
}

func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	expression, _ = opts.String("--expression")
	script, _ = opts.String("SCRIPT")
	version, _ = opts.Bool("--version")

	if expression == "" && script == "" {
		interactive = isatty.IsTerminal(os.Stdin.Fd())
	}
}

func Script() string {
	return script
}

func Version() bool {
	return version
}
