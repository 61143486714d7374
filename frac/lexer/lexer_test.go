package lexer

import (
	"testing"

	"github.com/nfrac/nfrac/frac/token"
)

type expectation struct {
	class  token.Class
	value  string
	offset int
}

func scan(t *testing.T, text string, expected []expectation) {
	t.Helper()

	l := New(text)

	for i, e := range expected {
		tok := l.Token()
		if tok == nil {
			t.Fatalf("token %d: expected %q, got nil", i, e.value)
		}

		if !tok.Is(e.class) || tok.Value() != e.value || tok.Offset() != e.offset {
			t.Fatalf("token %d: expected %q(%v,%d), got %v",
				i, e.value, e.class, e.offset, tok)
		}
	}

	if tok := l.Token(); tok != nil {
		t.Fatalf("expected no more tokens, got %v", tok)
	}
}

func TestFlat(t *testing.T) {
	scan(t, "(1 / 2)", []expectation{
		{'(', "(", 0},
		{token.Number, "1", 1},
		{'/', "/", 3},
		{token.Number, "2", 5},
		{')', ")", 6},
	})
}

func TestNested(t *testing.T) {
	scan(t, "(12 / (-3 / 4))", []expectation{
		{'(', "(", 0},
		{token.Number, "12", 1},
		{'/', "/", 4},
		{'(', "(", 6},
		{token.Number, "-3", 7},
		{'/', "/", 10},
		{token.Number, "4", 12},
		{')', ")", 13},
		{')', ")", 14},
	})
}

func TestNoWhitespace(t *testing.T) {
	scan(t, "(1/2)", []expectation{
		{'(', "(", 0},
		{token.Number, "1", 1},
		{'/', "/", 2},
		{token.Number, "2", 3},
		{')', ")", 4},
	})
}

func TestUnexpectedCharacter(t *testing.T) {
	scan(t, "(1 @", []expectation{
		{'(', "(", 0},
		{token.Number, "1", 1},
		{token.Error, "@", 3},
	})
}

func TestBareMinus(t *testing.T) {
	scan(t, "-", []expectation{
		{token.Error, "-", 0},
	})
}

func TestEmpty(t *testing.T) {
	scan(t, "   ", nil)
}
