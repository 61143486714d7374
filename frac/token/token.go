// Released under an MIT license. See LICENSE.

// Package token is shared by the nfrac lexer and parser.
package token

import (
	"strconv"
	"unicode"
)

// Class is a token's type. Single-character tokens use the character
// itself as their class.
type Class rune

// T (token) is a lexical item returned by the scanner.
type T struct {
	class  Class
	offset int
	value  string
}

type token = T

// Token classes. The parenthesis and slash tokens are their own classes.
const (
	Error  Class = iota
	Number Class = unicode.MaxRune + iota
)

// New creates a new token.
func New(class Class, value string, offset int) *token {
	return &token{
		class:  class,
		offset: offset,
		value:  value,
	}
}

// String returns a string representation of Class. Useful for debugging.
func (c Class) String() string {
	switch c {
	case Error:
		return "Error"
	case Number:
		return "Number"
	}

	return strconv.QuoteRune(rune(c))
}

// Is returns true if the token t is any of the classes in cs.
func (t *token) Is(cs ...Class) bool {
	if t == nil {
		return false
	}

	for _, c := range cs {
		if t.class == c {
			return true
		}
	}

	return false
}

// Offset returns the byte offset of this token in the scanned text.
func (t *token) Offset() int {
	return t.offset
}

// String returns the token's string representation. Useful for debugging.
func (t *token) String() string {
	return strconv.Quote(t.value) + "(" +
		t.class.String() + "," +
		strconv.Itoa(t.offset) + ")"
}

// Value returns the token's string value.
func (t *token) Value() string {
	return t.value
}
