// Released under an MIT license. See LICENSE.

// Package calc evaluates lines of postfix fraction arithmetic.
//
// Fraction literals like (1 / 2) and bare integers push values onto a
// stack; operators pop their operands and push the result. The words:
//
//	+ - * /    pop two values, push the result
//	^          pop an integer exponent then a base, push base^exponent
//	inv        invert the top value
//	red        reduce the top value to canonical form
//	= != < <= > >=
//	           pop two values, push 1 if the relation holds, else 0
//	p          print the top value
//	n          pop and print the top value
//	f          print the whole stack, top first
//	d          duplicate the top value
//	r          swap the top two values
//	c          clear the stack
//	q          quit
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/nfrac/nfrac/frac"
)

// ErrQuit is returned when the input asks to stop evaluating.
var ErrQuit = errors.New("quit")

var errExponent = errors.New("exponent must be an integer")

// T holds the evaluator's stack.
type T struct {
	stack []*frac.T
}

type calc = T

// New creates an evaluator with an empty stack.
func New() *calc {
	return &calc{}
}

// Depth returns the number of values on the stack.
func (c *calc) Depth() int {
	return len(c.stack)
}

// Eval evaluates one line. It returns any output produced and the first
// error encountered. On error the rest of the line is skipped and the
// stack keeps the values it held before the failing word.
func (c *calc) Eval(line string) ([]string, error) {
	var out []string

	for i := 0; i < len(line); {
		r, w := utf8.DecodeRuneInString(line[i:])

		switch {
		case unicode.IsSpace(r):
			i += w

		case r == '(':
			end := matching(line, i)
			if end < 0 {
				// Let the parser describe what is missing.
				_, err := frac.Parse(line[i:])

				return out, err
			}

			v, err := frac.Parse(line[i:end])
			if err != nil {
				return out, err
			}

			c.push(v)

			i = end

		case unicode.IsDigit(r) || r == '-' && startsInteger(line[i+w:]):
			j := i + w
			for j < len(line) {
				d, dw := utf8.DecodeRuneInString(line[j:])
				if !unicode.IsDigit(d) {
					break
				}

				j += dw
			}

			n, err := strconv.ParseInt(line[i:j], 10, 64)
			if err != nil {
				return out, fmt.Errorf("%w: %s", frac.ErrNumeratorOverflow, line[i:j])
			}

			c.push(frac.Int(n))

			i = j

		default:
			j := i
			for j < len(line) {
				d, dw := utf8.DecodeRuneInString(line[j:])
				if unicode.IsSpace(d) {
					break
				}

				j += dw
			}

			o, err := c.apply(line[i:j])
			out = append(out, o...)

			if err != nil {
				return out, err
			}

			i = j
		}
	}

	return out, nil
}

func (c *calc) apply(word string) ([]string, error) {
	switch word {
	case "+", "-", "*", "/":
		return nil, c.binary(word)

	case "^":
		return nil, c.power()

	case "=", "!=", "<", "<=", ">", ">=":
		return nil, c.relation(word)

	case "inv":
		if err := c.need(1); err != nil {
			return nil, err
		}

		c.push(c.pop().Inv())

		return nil, nil

	case "red":
		if err := c.need(1); err != nil {
			return nil, err
		}

		v, err := c.top().Reduce()
		if err != nil {
			return nil, err
		}

		c.pop()
		c.push(v)

		return nil, nil

	case "p":
		if err := c.need(1); err != nil {
			return nil, err
		}

		return []string{c.top().String()}, nil

	case "n":
		if err := c.need(1); err != nil {
			return nil, err
		}

		return []string{c.pop().String()}, nil

	case "f":
		out := make([]string, 0, len(c.stack))
		for i := len(c.stack) - 1; i >= 0; i-- {
			out = append(out, c.stack[i].String())
		}

		return out, nil

	case "d":
		if err := c.need(1); err != nil {
			return nil, err
		}

		c.push(c.top().Copy())

		return nil, nil

	case "r":
		if err := c.need(2); err != nil {
			return nil, err
		}

		n := len(c.stack)
		c.stack[n-1], c.stack[n-2] = c.stack[n-2], c.stack[n-1]

		return nil, nil

	case "c":
		c.stack = c.stack[:0]

		return nil, nil

	case "q":
		return nil, ErrQuit
	}

	return nil, fmt.Errorf("unknown command %q", word)
}

func (c *calc) binary(op string) error {
	if err := c.need(2); err != nil {
		return err
	}

	b := c.pop()
	a := c.pop()

	var v *frac.T

	var err error

	switch op {
	case "+":
		v, err = a.Add(b)
	case "-":
		v, err = a.Sub(b)
	case "*":
		v, err = a.Mul(b)
	case "/":
		v, err = a.Div(b)
	}

	if err != nil {
		c.push(a)
		c.push(b)

		return err
	}

	c.push(v)

	return nil
}

func (c *calc) need(n int) error {
	if len(c.stack) < n {
		return fmt.Errorf("less than %d values on stack", n)
	}

	return nil
}

func (c *calc) pop() *frac.T {
	v := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	return v
}

func (c *calc) power() error {
	if err := c.need(2); err != nil {
		return err
	}

	e := c.pop()
	b := c.pop()

	k, err := exponent(e)
	if err == nil {
		var v *frac.T

		v, err = b.Pow(k)
		if err == nil {
			c.push(v)

			return nil
		}
	}

	c.push(b)
	c.push(e)

	return err
}

func (c *calc) push(v *frac.T) {
	c.stack = append(c.stack, v)
}

func (c *calc) relation(op string) error {
	if err := c.need(2); err != nil {
		return err
	}

	b := c.pop()
	a := c.pop()

	var holds bool

	var err error

	switch op {
	case "=":
		holds, err = a.Eq(b)
	case "!=":
		holds, err = a.Neq(b)
	case "<":
		holds, err = a.Lt(b)
	case "<=":
		holds, err = a.Le(b)
	case ">":
		holds, err = a.Gt(b)
	case ">=":
		holds, err = a.Ge(b)
	}

	if err != nil {
		c.push(a)
		c.push(b)

		return err
	}

	if holds {
		c.push(frac.Int(1))
	} else {
		c.push(frac.Int(0))
	}

	return nil
}

func (c *calc) top() *frac.T {
	return c.stack[len(c.stack)-1]
}

// exponent extracts an integer exponent from a fraction.
func exponent(e *frac.T) (int, error) {
	r, err := e.Reduce()
	if err != nil {
		return 0, err
	}

	n, d, _ := r.Parts()
	if d != 1 {
		return 0, errExponent
	}

	return int(n), nil
}

// matching returns the index just past the parenthesis that closes the
// one at start, or -1 if the line ends first.
func matching(line string, start int) int {
	depth := 0

	for i := start; i < len(line); i++ {
		switch line[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}

	return -1
}

// startsInteger reports whether s begins with a digit.
func startsInteger(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)

	return unicode.IsDigit(r)
}
