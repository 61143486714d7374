// Released under an MIT license. See LICENSE.

package frac

import (
	"github.com/nfrac/nfrac/frac/intmath"
)

// Binary operations accept the right operand in any of the source forms
// accepted by New: an integer, a float, a fraction, or parseable text.
// A failure to materialize the operand, or a division by zero anywhere
// in the operation, aborts the whole operation; no partial result is
// ever returned.

// Add returns the canonical sum of t and the operand v.
func (t *frac) Add(v any) (*frac, error) {
	r, err := From(v)
	if err != nil {
		return nil, err
	}

	return add(t, r, 1)
}

// Div returns the canonical quotient of t and the operand v.
// An operand that reduces to zero is reported as ErrDivisionByZero.
func (t *frac) Div(v any) (*frac, error) {
	r, err := From(v)
	if err != nil {
		return nil, err
	}

	return div(t, r)
}

// Mul returns the canonical product of t and the operand v.
func (t *frac) Mul(v any) (*frac, error) {
	r, err := From(v)
	if err != nil {
		return nil, err
	}

	return mul(t, r)
}

// Pow raises t to the integer power k. The base is reduced first and its
// numerator and denominator are raised independently. A negative k
// inverts the reduced base and raises it to -k. For every base,
// including zero, t.Pow(0) is 1: an explicit policy, not a derived
// identity.
func (t *frac) Pow(k int) (*frac, error) {
	if k == 0 {
		return Int(1), nil
	}

	b, err := t.Reduce()
	if err != nil {
		return nil, err
	}

	n, d, _ := b.Parts()

	if k < 0 {
		if n == 0 {
			return nil, ErrDivisionByZero
		}

		n, d = d, n
		k = -k
	}

	// Reduce refolds the denominator's sign when an inverted negative
	// base leaves it negative.
	rn, rd := intmath.Reduce(ipow(n, k), ipow(d, k))

	return &frac{num: leaf(rn), den: leaf(rd)}, nil
}

// Sub returns the canonical difference of t and the operand v.
func (t *frac) Sub(v any) (*frac, error) {
	r, err := From(v)
	if err != nil {
		return nil, err
	}

	return add(t, r, -1)
}

// add combines the reduced operands over the lcm of their denominators.
// The right numerator is scaled by sign, which is -1 for subtraction.
func add(l, r *frac, sign int64) (*frac, error) {
	l, err := l.Reduce()
	if err != nil {
		return nil, err
	}

	r, err = r.Reduce()
	if err != nil {
		return nil, err
	}

	ln, ld, _ := l.Parts()
	rn, rd, _ := r.Parts()

	m := intmath.LCM(ld, rd)
	n := m/ld*ln + m/rd*rn*sign

	n, m = intmath.Reduce(n, m)

	return &frac{num: leaf(n), den: leaf(m)}, nil
}

// div multiplies l by the inverse of r.
func div(l, r *frac) (*frac, error) {
	r, err := r.Reduce()
	if err != nil {
		return nil, err
	}

	if n, _, _ := r.Parts(); n == 0 {
		return nil, ErrDivisionByZero
	}

	return mul(l, r.Inv())
}

// mul multiplies two fractions. When all four slots are integers, common
// factors between each numerator and the opposite denominator are
// cancelled before multiplying, bounding the size of the products. When
// a slot is nested, numerator and denominator pairs are multiplied with
// the same cross-cancellation policy, level by level, and the combined
// result is canonicalized.
func mul(l, r *frac) (*frac, error) {
	ln, lnok := l.num.(leaf)
	ld, ldok := l.den.(leaf)
	rn, rnok := r.num.(leaf)
	rd, rdok := r.den.(leaf)

	if lnok && ldok && rnok && rdok {
		if ld == 0 || rd == 0 {
			return nil, ErrDivisionByZero
		}

		a := intmath.GCD(int64(ln), int64(rd))
		b := intmath.GCD(int64(rn), int64(ld))

		n := (int64(ln) / a) * (int64(rn) / b)
		d := (int64(ld) / b) * (int64(rd) / a)

		n, d = intmath.Reduce(n, d)

		return &frac{num: leaf(n), den: leaf(d)}, nil
	}

	num, err := mul(promote(l.num), promote(r.num))
	if err != nil {
		return nil, err
	}

	den, err := mul(promote(l.den), promote(r.den))
	if err != nil {
		return nil, err
	}

	v := &frac{num: num, den: den}

	return v.Reduce()
}

func ipow(b int64, k int) int64 {
	p := int64(1)

	for ; k > 0; k-- {
		p *= b
	}

	return p
}
