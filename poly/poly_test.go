package poly_test

import (
	"testing"

	"github.com/groth16-go/groth16/algebra"
	"github.com/groth16-go/groth16/gerr"
	"github.com/groth16-go/groth16/internal/testfield"
	"github.com/groth16-go/groth16/poly"
	"github.com/stretchr/testify/require"
)

func e(v int64) algebra.Scalar { return testfield.New(v) }

func p(cs ...int64) poly.Polynomial {
	s := make([]algebra.Scalar, len(cs))
	for i, c := range cs {
		s[i] = e(c)
	}
	return poly.New(s)
}

func TestCanonicalization(t *testing.T) {
	require.True(t, poly.Zero().IsZero())
	require.Equal(t, -1, poly.Zero().Degree())
	q := p(1, 2, 0, 0)
	require.Equal(t, 1, q.Degree())
}

func TestAddCommutative(t *testing.T) {
	a := p(1, 2, 3)
	b := p(4, 5)
	require.True(t, poly.Add(a, b).Equal(poly.Add(b, a)))
}

func TestAddAssociative(t *testing.T) {
	a, b, c := p(1, 2), p(3), p(5, 6, 7)
	lhs := poly.Add(poly.Add(a, b), c)
	rhs := poly.Add(a, poly.Add(b, c))
	require.True(t, lhs.Equal(rhs))
}

func TestMulCommutative(t *testing.T) {
	a := p(1, 2)
	b := p(3, 0, 4)
	require.True(t, poly.Mul(a, b).Equal(poly.Mul(b, a)))
}

func TestMulAssociative(t *testing.T) {
	a, b, c := p(1, 2), p(3, 0, 4), p(5, 6)
	lhs := poly.Mul(poly.Mul(a, b), c)
	rhs := poly.Mul(a, poly.Mul(b, c))
	require.True(t, lhs.Equal(rhs))
}

func TestDistributive(t *testing.T) {
	a, b, c := p(1, 2), p(3, 4), p(5, 6)
	lhs := poly.Mul(a, poly.Add(b, c))
	rhs := poly.Add(poly.Mul(a, b), poly.Mul(a, c))
	require.True(t, lhs.Equal(rhs))
}

func TestScalarAdd(t *testing.T) {
	a := p(1, 2, 3) // 3x^2+2x+1
	got := poly.ScalarAdd(a, e(10))
	require.True(t, got.Equal(p(11, 2, 3)))
	require.True(t, poly.ScalarAdd(a, e(0)).Equal(a))

	got = poly.ScalarAdd(poly.Zero(), e(7))
	require.True(t, got.Equal(p(7)))
}

func TestAdditiveIdentity(t *testing.T) {
	a := p(1, 2, 3)
	require.True(t, poly.Add(a, poly.Zero()).Equal(a))
}

func TestMultiplicativeIdentity(t *testing.T) {
	a := p(1, 2, 3)
	one := p(1)
	require.True(t, poly.Mul(a, one).Equal(a))
}

func TestDegreeOfProduct(t *testing.T) {
	a := p(1, 2, 3)
	b := p(4, 5)
	require.Equal(t, a.Degree()+b.Degree(), poly.Mul(a, b).Degree())
}

func TestDivisionIdentity(t *testing.T) {
	dividend := p(6, 11, 6, 1) // (x+1)(x+2)(x+3)
	divisor := p(1, 1)         // x+1
	q, r, err := poly.Div(dividend, divisor)
	require.NoError(t, err)
	require.True(t, r.IsZero())
	require.True(t, poly.Add(poly.Mul(q, divisor), r).Equal(dividend))
}

func TestDivisionWithRemainder(t *testing.T) {
	dividend := p(1, 2, 3) // 3x^2+2x+1
	divisor := p(1, 1)     // x+1
	q, r, err := poly.Div(dividend, divisor)
	require.NoError(t, err)
	require.True(t, r.Degree() < divisor.Degree())
	require.True(t, poly.Add(poly.Mul(q, divisor), r).Equal(dividend))
}

func TestDivisionByZeroFails(t *testing.T) {
	_, _, err := poly.Div(p(1, 2), poly.Zero())
	require.Error(t, err)
}

func TestEvalHorner(t *testing.T) {
	f := p(1, 2, 3) // 3x^2+2x+1
	got := poly.Eval(f, e(2))
	require.True(t, got.Equal(e(17)))
}

func TestInterpolationRoundTrip(t *testing.T) {
	pts := []poly.Point{
		{X: e(1), Y: e(6)},
		{X: e(2), Y: e(17)},
		{X: e(3), Y: e(34)},
	}
	interp, err := poly.LagrangeInterpolate(pts)
	require.NoError(t, err)
	require.True(t, interp.Degree() < len(pts))
	for _, pt := range pts {
		require.True(t, poly.Eval(interp, pt.X).Equal(pt.Y))
	}
}

func TestInterpolationDuplicateAbscissa(t *testing.T) {
	_, err := poly.LagrangeInterpolate([]poly.Point{
		{X: e(1), Y: e(1)},
		{X: e(1), Y: e(2)},
	})
	require.Error(t, err)
	require.True(t, gerr.Of(err, gerr.DuplicateAbscissa))
}

func TestSRSEvaluate(t *testing.T) {
	f := p(1, 2, 3) // 3x^2+2x+1
	x := int64(5)
	var srs []algebra.G1
	acc := e(1)
	for i := 0; i <= f.Degree(); i++ {
		srs = append(srs, testfield.NewG1(1).ScalarMul(acc))
		acc = acc.Mul(e(x))
	}
	got, err := poly.SRSEvaluate(f, srs)
	require.NoError(t, err)
	want := testfield.NewG1(1).ScalarMul(poly.Eval(f, e(x)))
	require.True(t, got.Equal(want))
}

func TestSRSEvaluateInsufficientSrs(t *testing.T) {
	f := p(1, 2, 3)
	srs := []algebra.G1{testfield.NewG1(1)}
	_, err := poly.SRSEvaluate(f, srs)
	require.Error(t, err)
	require.True(t, gerr.Of(err, gerr.InsufficientSrs))
}
