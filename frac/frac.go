// Released under an MIT license. See LICENSE.

// Package frac provides exact arithmetic on nested fractions.
//
// A fraction's numerator and denominator are each either an integer or
// another fraction, to arbitrary depth. Values are never mutated; every
// operation derives a new value, and arithmetic results are always in
// canonical form: an integer over a positive integer with no common
// factor. Because no operation mutates an existing value, values can be
// shared freely between goroutines.
//
// Numerators and denominators are native integers, not big numbers.
// Sources that do not fit are reported as overflow, never promoted.
package frac

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// A side is one slot of a fraction: an integer leaf or a nested fraction.
// The only implementations are leaf and *T.
type side interface {
	clone() side
	text(b *strings.Builder)
}

// leaf is an integer slot.
type leaf int64

// T is a fraction. Either slot may hold another fraction.
type T struct {
	num side
	den side
}

type frac = T

// New creates a fraction from a numerator source and an optional
// denominator source. A source is an integer, a float (truncated toward
// zero), an existing fraction (copied, never aliased), or text in the
// form accepted by Parse. A missing denominator defaults to 1; a single
// fraction or text source yields a copy of that value. A denominator
// source that is the plain integer zero is reported as ErrDivisionByZero.
func New(num any, den ...any) (*frac, error) {
	if len(den) > 1 {
		return nil, fmt.Errorf("%w: expected at most 2 sources, passed %d", ErrInvalidOperandType, len(den)+1)
	}

	n, err := materialize(num, ErrNumeratorOverflow)
	if err != nil {
		return nil, err
	}

	if len(den) == 0 {
		if v, ok := n.(*frac); ok {
			return v, nil
		}

		return &frac{num: n, den: leaf(1)}, nil
	}

	d, err := materialize(den[0], ErrDenominatorOverflow)
	if err != nil {
		return nil, err
	}

	if l, ok := d.(leaf); ok && l == 0 {
		return nil, ErrDivisionByZero
	}

	return &frac{num: n, den: d}, nil
}

// From materializes any supported source as a fraction.
// It is shorthand for New with a single source.
func From(v any) (*frac, error) {
	return New(v)
}

// Int creates a fraction with the value i.
func Int(i int64) *frac {
	return &frac{num: leaf(i), den: leaf(1)}
}

// Copy returns a deep structural copy of the fraction t.
// The copy shares no children with t.
func (t *frac) Copy() *frac {
	return &frac{num: t.num.clone(), den: t.den.clone()}
}

// Float64 returns the floating approximation of t's canonical form.
func (t *frac) Float64() (float64, error) {
	r, err := t.Reduce()
	if err != nil {
		return 0, err
	}

	n, d, _ := r.Parts()

	return float64(n) / float64(d), nil
}

// Inv returns a fraction with t's numerator and denominator swapped.
// No canonicalization is performed.
func (t *frac) Inv() *frac {
	return &frac{num: t.den.clone(), den: t.num.clone()}
}

// Parts returns the numerator and denominator when both are integers.
// For a nested fraction flat is false; reduce first to flatten.
func (t *frac) Parts() (num, den int64, flat bool) {
	n, nok := t.num.(leaf)
	d, dok := t.den.(leaf)

	if !nok || !dok {
		return 0, 0, false
	}

	return int64(n), int64(d), true
}

// String renders t in the form accepted by Parse, reflecting its actual
// structure: nested sides render as nested parenthesized fractions.
func (t *frac) String() string {
	b := &strings.Builder{}

	t.text(b)

	return b.String()
}

// The *T type is itself a side.

func (t *frac) clone() side {
	return t.Copy()
}

func (t *frac) text(b *strings.Builder) {
	b.WriteByte('(')
	t.num.text(b)
	b.WriteString(" / ")
	t.den.text(b)
	b.WriteByte(')')
}

// The leaf type is a side.

func (l leaf) clone() side {
	return l
}

func (l leaf) text(b *strings.Builder) {
	b.WriteString(strconv.FormatInt(int64(l), 10))
}

// materialize converts a source to a slot value. Integer and float
// sources become leaves; fraction and text sources become fractions.
// Sources that do not fit in an int64 are reported with slotErr.
func materialize(v any, slotErr error) (side, error) {
	switch v := v.(type) {
	case *frac:
		return v.Copy(), nil
	case int:
		return leaf(v), nil
	case int8:
		return leaf(v), nil
	case int16:
		return leaf(v), nil
	case int32:
		return leaf(v), nil
	case int64:
		return leaf(v), nil
	case uint:
		return uleaf(uint64(v), slotErr)
	case uint8:
		return leaf(v), nil
	case uint16:
		return leaf(v), nil
	case uint32:
		return leaf(v), nil
	case uint64:
		return uleaf(v, slotErr)
	case float32:
		return fleaf(float64(v), slotErr)
	case float64:
		return fleaf(v, slotErr)
	case string:
		p, err := Parse(v)
		if err != nil {
			return nil, err
		}

		return p, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrInvalidOperandType, v)
}

// fleaf converts a float source, truncating toward zero.
func fleaf(f float64, slotErr error) (side, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: %v is not finite", slotErr, f)
	}

	f = math.Trunc(f)
	if f >= 1<<63 || f < -(1<<63) {
		return nil, fmt.Errorf("%w: %v", slotErr, f)
	}

	return leaf(int64(f)), nil
}

func uleaf(u uint64, slotErr error) (side, error) {
	if u > math.MaxInt64 {
		return nil, fmt.Errorf("%w: %d", slotErr, u)
	}

	return leaf(int64(u)), nil
}
