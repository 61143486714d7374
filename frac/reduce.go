// Released under an MIT license. See LICENSE.

package frac

import (
	"github.com/nfrac/nfrac/frac/intmath"
)

// Reduce returns the canonical form of t: an integer numerator over a
// positive integer denominator with no common factor. A numerator of
// zero reduces to 0/1. A nested denominator whose value is zero is
// reported as ErrDivisionByZero.
func (t *frac) Reduce() (*frac, error) {
	n, nok := t.num.(leaf)
	d, dok := t.den.(leaf)

	if nok && dok {
		// Inverting a fraction with numerator zero puts a zero
		// integer in the denominator slot.
		if d == 0 {
			return nil, ErrDivisionByZero
		}

		rn, rd := intmath.Reduce(int64(n), int64(d))

		return &frac{num: leaf(rn), den: leaf(rd)}, nil
	}

	num, err := reduce(t.num)
	if err != nil {
		return nil, err
	}

	den, err := reduce(t.den)
	if err != nil {
		return nil, err
	}

	return div(num, den)
}

// promote views a slot as a fraction: a leaf i becomes i/1.
func promote(s side) *frac {
	switch s := s.(type) {
	case leaf:
		return &frac{num: s, den: leaf(1)}
	case *frac:
		return s
	}

	panic("unknown fraction slot")
}

// reduce canonicalizes a slot. Each step recurses into strictly
// shallower structure, so reduction of any fraction terminates.
func reduce(s side) (*frac, error) {
	switch s := s.(type) {
	case leaf:
		return &frac{num: s, den: leaf(1)}, nil
	case *frac:
		return s.Reduce()
	}

	panic("unknown fraction slot")
}
