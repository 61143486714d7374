// Released under an MIT license. See LICENSE.

// Package intmath provides the integer helpers used to put ratios in
// lowest terms.
package intmath

import (
	"golang.org/x/exp/constraints"
)

// GCD returns the greatest common divisor of a and b.
// The result is never negative. GCD(0, 0) is 0.
func GCD[I constraints.Signed](a, b I) I {
	if a < 0 {
		a = -a
	}

	if b < 0 {
		b = -b
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of a and b.
// The result is never negative. LCM(a, 0) is 0.
func LCM[I constraints.Signed](a, b I) I {
	if a == 0 || b == 0 {
		return 0
	}

	m := a / GCD(a, b) * b
	if m < 0 {
		m = -m
	}

	return m
}

// Reduce puts the ratio n/d in lowest terms. The sign of the denominator
// is folded into the numerator so that the returned denominator is always
// positive. The denominator d must not be zero.
func Reduce[I constraints.Signed](n, d I) (I, I) {
	if n == 0 {
		return 0, 1
	}

	g := GCD(n, d)

	n, d = n/g, d/g
	if d < 0 {
		n, d = -n, -d
	}

	return n, d
}
