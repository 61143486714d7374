package frac_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nfrac/nfrac/frac"
)

func parts(t *testing.T, v *frac.T) (int64, int64) {
	t.Helper()

	n, d, flat := v.Parts()
	if !flat {
		t.Fatalf("%s is not flat", v)
	}

	return n, d
}

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	a, err := frac.New(1, 4)
	assert.Nil(err)

	b, err := frac.New(1, 4)
	assert.Nil(err)

	v, err := a.Add(b)
	assert.Nil(err)

	n, d := parts(t, v)
	assert.Equal(int64(1), n)
	assert.Equal(int64(2), d)

	// Unlike denominators combine over their lcm.
	a, err = frac.New(1, 6)
	assert.Nil(err)

	v, err = a.Add("(1 / 4)")
	assert.Nil(err)

	n, d = parts(t, v)
	assert.Equal(int64(5), n)
	assert.Equal(int64(12), d)

	// Additive identity.
	half, err := frac.New(1, 2)
	assert.Nil(err)

	v, err = half.Add(0)
	assert.Nil(err)

	same, err := v.Eq(half)
	assert.Nil(err)
	assert.True(same)
}

func TestSub(t *testing.T) {
	assert := assert.New(t)

	a, err := frac.New(1, 2)
	assert.Nil(err)

	v, err := a.Sub("(1 / 3)")
	assert.Nil(err)

	n, d := parts(t, v)
	assert.Equal(int64(1), n)
	assert.Equal(int64(6), d)

	// Additive inverse.
	v, err = a.Sub(a)
	assert.Nil(err)

	zero, err := v.Eq(0)
	assert.Nil(err)
	assert.True(zero)
}

func TestMul(t *testing.T) {
	assert := assert.New(t)

	a, err := frac.New(1, 4)
	assert.Nil(err)

	v, err := a.Mul("(1 / 2)")
	assert.Nil(err)

	n, d := parts(t, v)
	assert.Equal(int64(1), n)
	assert.Equal(int64(8), d)

	// Multiplicative identity.
	v, err = a.Mul(1)
	assert.Nil(err)

	same, err := v.Eq(a)
	assert.Nil(err)
	assert.True(same)

	// Cross-cancellation.
	a, err = frac.New(2, 3)
	assert.Nil(err)

	v, err = a.Mul("(3 / 2)")
	assert.Nil(err)

	n, d = parts(t, v)
	assert.Equal(int64(1), n)
	assert.Equal(int64(1), d)
}

func TestMulNested(t *testing.T) {
	assert := assert.New(t)

	// ((1/2) / (1/3)) has the value 3/2.
	v, err := frac.Parse("((1 / 2) / (1 / 3))")
	assert.Nil(err)

	w, err := v.Mul("(1 / 3)")
	assert.Nil(err)

	n, d := parts(t, w)
	assert.Equal(int64(1), n)
	assert.Equal(int64(2), d)
}

func TestMulInverse(t *testing.T) {
	assert := assert.New(t)

	v, err := frac.New(3, 7)
	assert.Nil(err)

	w, err := v.Mul(v.Inv())
	assert.Nil(err)

	one, err := w.Eq(1)
	assert.Nil(err)
	assert.True(one)
}

func TestDiv(t *testing.T) {
	assert := assert.New(t)

	a, err := frac.New(1, 2)
	assert.Nil(err)

	v, err := a.Div("(1 / 4)")
	assert.Nil(err)

	n, d := parts(t, v)
	assert.Equal(int64(2), n)
	assert.Equal(int64(1), d)

	_, err = a.Div(0)
	assert.ErrorIs(err, frac.ErrDivisionByZero)

	// A nested operand that reduces to zero is no better.
	_, err = a.Div("(0 / 3)")
	assert.ErrorIs(err, frac.ErrDivisionByZero)
}

func TestPow(t *testing.T) {
	assert := assert.New(t)

	v, err := frac.New(2, 3)
	assert.Nil(err)

	w, err := v.Pow(3)
	assert.Nil(err)

	n, d := parts(t, w)
	assert.Equal(int64(8), n)
	assert.Equal(int64(27), d)

	// The base is reduced before raising.
	v, err = frac.New(-2, 4)
	assert.Nil(err)

	w, err = v.Pow(2)
	assert.Nil(err)

	n, d = parts(t, w)
	assert.Equal(int64(1), n)
	assert.Equal(int64(4), d)

	// A negative exponent inverts the reduced base.
	v, err = frac.New(2, 3)
	assert.Nil(err)

	w, err = v.Pow(-2)
	assert.Nil(err)

	n, d = parts(t, w)
	assert.Equal(int64(9), n)
	assert.Equal(int64(4), d)

	// The sign of an inverted negative base refolds.
	v, err = frac.New(-2, 3)
	assert.Nil(err)

	w, err = v.Pow(-1)
	assert.Nil(err)

	n, d = parts(t, w)
	assert.Equal(int64(-3), n)
	assert.Equal(int64(2), d)
}

func TestPowZeroExponent(t *testing.T) {
	assert := assert.New(t)

	// x^0 is 1 for every x, including zero. Explicit policy.
	for _, s := range []string{"(0 / 1)", "(2 / 3)", "(-2 / 3)"} {
		v, err := frac.Parse(s)
		assert.Nil(err)

		w, err := v.Pow(0)
		assert.Nil(err)

		n, d := parts(t, w)
		assert.Equal(int64(1), n, s)
		assert.Equal(int64(1), d, s)
	}
}

func TestPowNegativeExponentOfZero(t *testing.T) {
	assert := assert.New(t)

	zero, err := frac.New(0)
	assert.Nil(err)

	_, err = zero.Pow(-1)
	assert.ErrorIs(err, frac.ErrDivisionByZero)
}

func TestPowMinusOneIsInv(t *testing.T) {
	assert := assert.New(t)

	v, err := frac.New(3, 4)
	assert.Nil(err)

	w, err := v.Pow(-1)
	assert.Nil(err)

	same, err := w.Eq(v.Inv())
	assert.Nil(err)
	assert.True(same)
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	half, err := frac.New(1, 2)
	assert.Nil(err)

	// Differently nested values with the same value are equal.
	same, err := half.Eq("((1 / 2) / (1 / 1))")
	assert.Nil(err)
	assert.True(same)

	same, err = half.Eq("(2 / 4)")
	assert.Nil(err)
	assert.True(same)

	differ, err := half.Neq("(1 / 3)")
	assert.Nil(err)
	assert.True(differ)

	greater, err := half.Gt("(1 / 3)")
	assert.Nil(err)
	assert.True(greater)

	less, err := half.Lt(1)
	assert.Nil(err)
	assert.True(less)

	ge, err := half.Ge("(1 / 2)")
	assert.Nil(err)
	assert.True(ge)

	le, err := half.Le("(1 / 2)")
	assert.Nil(err)
	assert.True(le)
}

func TestOperandFailurePropagation(t *testing.T) {
	assert := assert.New(t)

	v, err := frac.New(1, 2)
	assert.Nil(err)

	_, err = v.Add(true)
	assert.ErrorIs(err, frac.ErrInvalidOperandType)

	var syntax *frac.SyntaxError

	_, err = v.Mul("(1 / 2")
	assert.ErrorAs(err, &syntax)

	_, err = v.Eq(struct{}{})
	assert.ErrorIs(err, frac.ErrInvalidOperandType)
}
