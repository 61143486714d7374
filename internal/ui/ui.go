// Released under an MIT license. See LICENSE.

// Package ui provides nfrac's interactive session.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nfrac/nfrac/frac"
	"github.com/nfrac/nfrac/internal/calc"
	"github.com/nfrac/nfrac/internal/system/history"
	"github.com/peterh/liner"
)

// Run reads lines, feeds them to the evaluator c, and prints results,
// until end of input or the quit command.
func Run(c *calc.T) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)

	// History is optional. A missing file is not an error.
	_ = history.Load(cli.ReadHistory)

	defer func() {
		_ = history.Save(cli.WriteHistory)
	}()

	for {
		line, err := cli.Prompt("> ")

		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		default:
			fmt.Println()

			return
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		cli.AppendHistory(line)

		out, err := c.Eval(line)
		for _, s := range out {
			fmt.Println(s)
		}

		if err != nil {
			if errors.Is(err, calc.ErrQuit) {
				return
			}

			report(err)
		}
	}
}

func report(err error) {
	var syntax *frac.SyntaxError
	if errors.As(err, &syntax) {
		fmt.Println(syntax.Caret())
	}

	fmt.Println("error:", err)
}
