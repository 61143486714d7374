// Released under an MIT license. See LICENSE.

package frac

import (
	"strconv"

	"github.com/nfrac/nfrac/frac/lexer"
	"github.com/nfrac/nfrac/frac/token"
)

// Parse converts the fully parenthesized textual form of a fraction,
// like "(1 / 2)" or "(1 / (1 / 3))", into a value. Whitespace between
// tokens is insignificant. The entire input must be consumed. On failure
// Parse returns a *SyntaxError locating the offending byte.
func Parse(s string) (v *frac, err error) {
	p := &parser{input: s, lexer: lexer.New(s)}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		e, ok := r.(*SyntaxError)
		if !ok {
			panic(r)
		}

		v, err = nil, e
	}()

	v = p.fraction()

	if t := p.peek(); t != nil {
		p.fail(t.Offset(), "unexpected trailing input", nil)
	}

	return v, nil
}

// parser holds the state of the parser.
type parser struct {
	ahead bool
	input string
	lexer *lexer.T
	token *token.T
}

func (p *parser) consume() *token.T {
	t := p.peek()

	p.ahead = false
	p.token = nil

	return t
}

// expect consumes a token of class c or fails.
func (p *parser) expect(c token.Class) {
	t := p.peek()

	if t == nil {
		p.fail(len(p.input), "unexpected end of input, expected "+c.String(), nil)
	}

	if t.Is(token.Error) {
		p.fail(t.Offset(), "unexpected "+strconv.Quote(t.Value()), nil)
	}

	if !t.Is(c) {
		p.fail(t.Offset(), "expected "+c.String()+" got "+strconv.Quote(t.Value()), nil)
	}

	p.consume()
}

func (p *parser) fail(offset int, reason string, kind error) {
	panic(&SyntaxError{
		Input:  p.input,
		Offset: offset,
		Reason: reason,
		err:    kind,
	})
}

func (p *parser) peek() *token.T {
	if !p.ahead {
		p.token = p.lexer.Token()
		p.ahead = true
	}

	return p.token
}

// parser state functions.

// <fraction> ::= '(' <operand> '/' <operand> ')'
func (p *parser) fraction() *frac {
	p.expect('(')

	num := p.operand(ErrNumeratorOverflow)

	p.expect('/')

	offset := p.offset()
	den := p.operand(ErrDenominatorOverflow)

	if l, ok := den.(leaf); ok && l == 0 {
		p.fail(offset, "zero denominator", ErrDivisionByZero)
	}

	p.expect(')')

	return &frac{num: num, den: den}
}

// <operand> ::= <integer> | <fraction>
func (p *parser) operand(slotErr error) side {
	t := p.peek()

	if t == nil {
		p.fail(len(p.input), "unexpected end of input, expected integer or fraction", nil)
	}

	if t.Is('(') {
		return p.fraction()
	}

	if t.Is(token.Number) {
		p.consume()

		i, err := strconv.ParseInt(t.Value(), 10, 64)
		if err != nil {
			// Integer literals get the same range checks as
			// constructor integers.
			p.fail(t.Offset(), "integer out of range: "+t.Value(), slotErr)
		}

		return leaf(i)
	}

	if t.Is(token.Error) {
		p.fail(t.Offset(), "unexpected "+strconv.Quote(t.Value()), nil)
	}

	p.fail(t.Offset(), "expected integer or fraction, got "+strconv.Quote(t.Value()), nil)

	return nil
}

// offset is where the next token starts, or the end of the input.
func (p *parser) offset() int {
	if t := p.peek(); t != nil {
		return t.Offset()
	}

	return len(p.input)
}
