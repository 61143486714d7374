// Released under an MIT license. See LICENSE.

package frac

// Comparisons are projections of a single primitive that converts both
// operands to the floating approximation of their canonical form. They
// are exact only while canonical numerators and denominators stay inside
// the float64-safe integer range; beyond that, distinct values may
// compare equal. This bounded precision is deliberate and documented,
// not a defect.

// Eq returns true if t and the operand v have the same numeric value.
// Two differently nested fractions with the same value are equal.
func (t *frac) Eq(v any) (bool, error) {
	return t.compare(v, func(a, b float64) bool { return a == b })
}

// Ge returns true if t is greater than or equal to the operand v.
func (t *frac) Ge(v any) (bool, error) {
	return t.compare(v, func(a, b float64) bool { return a >= b })
}

// Gt returns true if t is greater than the operand v.
func (t *frac) Gt(v any) (bool, error) {
	return t.compare(v, func(a, b float64) bool { return a > b })
}

// Le returns true if t is less than or equal to the operand v.
func (t *frac) Le(v any) (bool, error) {
	return t.compare(v, func(a, b float64) bool { return a <= b })
}

// Lt returns true if t is less than the operand v.
func (t *frac) Lt(v any) (bool, error) {
	return t.compare(v, func(a, b float64) bool { return a < b })
}

// Neq returns true if t and the operand v differ in numeric value.
func (t *frac) Neq(v any) (bool, error) {
	return t.compare(v, func(a, b float64) bool { return a != b })
}

func (t *frac) compare(v any, rel func(a, b float64) bool) (bool, error) {
	r, err := From(v)
	if err != nil {
		return false, err
	}

	a, err := t.Float64()
	if err != nil {
		return false, err
	}

	b, err := r.Float64()
	if err != nil {
		return false, err
	}

	return rel(a, b), nil
}
