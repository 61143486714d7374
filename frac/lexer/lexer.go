// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for nfrac's fraction syntax.
//
// The lexer uses the state function approach described in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide
// for more information.
package lexer

import (
	"unicode"
	"unicode/utf8"

	"github.com/nfrac/nfrac/frac/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	state action // Current action.

	tokens chan *token.T
}

type lexer = T

type action func(*lexer) action

const eof = -1

// New creates a new lexer for the text.
func New(text string) *lexer {
	return &lexer{
		bytes:  text,
		state:  skipSpace,
		tokens: make(chan *token.T, 16),
	}
}

// Token returns the next scanned token, or nil when the text is exhausted.
func (l *lexer) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
			if l.state == nil {
				return nil
			}

			l.state = l.state(l)
		}
	}
}

func (l *lexer) accept() {
	_, w := utf8.DecodeRuneInString(l.bytes[l.index:])
	l.index += w
}

func (l *lexer) emit(c token.Class) {
	l.tokens <- token.New(c, l.bytes[l.first:l.index], l.first)
	l.skip()
}

func (l *lexer) peek() rune {
	if l.index >= len(l.bytes) {
		return eof
	}

	r, _ := utf8.DecodeRuneInString(l.bytes[l.index:])

	return r
}

func (l *lexer) skip() {
	l.first = l.index
}

// T state functions.

func scanNumber(l *lexer) action {
	if l.peek() == '-' {
		l.accept()
	}

	if !unicode.IsDigit(l.peek()) {
		// A minus sign with no digits.
		l.emit(token.Error)

		return nil
	}

	for unicode.IsDigit(l.peek()) {
		l.accept()
	}

	l.emit(token.Number)

	return skipSpace
}

func skipSpace(l *lexer) action {
	for {
		r := l.peek()

		switch {
		case r == eof:
			return nil

		case unicode.IsSpace(r):
			l.accept()
			l.skip()

		case r == '(' || r == ')' || r == '/':
			l.accept()
			l.emit(token.Class(r))

			return skipSpace

		case r == '-' || unicode.IsDigit(r):
			return scanNumber

		default:
			l.accept()
			l.emit(token.Error)

			return nil
		}
	}
}
