package qap_test

import (
	"testing"

	"github.com/groth16-go/groth16/algebra"
	"github.com/groth16-go/groth16/internal/testfield"
	"github.com/groth16-go/groth16/poly"
	"github.com/groth16-go/groth16/qap"
	"github.com/groth16-go/groth16/r1cs"
	"github.com/stretchr/testify/require"
)

func row(vs ...int64) []algebra.Scalar {
	out := make([]algebra.Scalar, len(vs))
	for i, v := range vs {
		out[i] = testfield.New(v)
	}
	return out
}

func TestQAPSoundnessLinkS1(t *testing.T) {
	a := [][]algebra.Scalar{row(0, 0, 1)}
	b := [][]algebra.Scalar{row(0, 0, 1)}
	c := [][]algebra.Scalar{row(0, 1, 0)}
	sys, err := r1cs.New(a, b, c, 2)
	require.NoError(t, err)

	q, err := qap.From(sys, testfield.New(1))
	require.NoError(t, err)

	for _, tc := range []struct {
		s       []algebra.Scalar
		satisfy bool
	}{
		{row(1, 9, 3), true},
		{row(1, 10, 3), false},
	} {
		ok, err := sys.IsSatisfiedBy(tc.s)
		require.NoError(t, err)
		require.Equal(t, tc.satisfy, ok)

		au := qap.CombineWitness(q.U, tc.s)
		av := qap.CombineWitness(q.V, tc.s)
		aw := qap.CombineWitness(q.W, tc.s)
		lhs := poly.Sub(poly.Mul(au, av), aw)
		_, r, err := poly.Div(lhs, q.T)
		require.NoError(t, err)
		require.Equal(t, tc.satisfy, r.IsZero())
	}
}

func TestTargetPolynomialRootsAtDomain(t *testing.T) {
	a := [][]algebra.Scalar{row(0, 0, 1), row(0, 0, 1)}
	b := [][]algebra.Scalar{row(0, 0, 1), row(0, 0, 1)}
	c := [][]algebra.Scalar{row(0, 1, 0), row(0, 1, 0)}
	sys, err := r1cs.New(a, b, c, 2)
	require.NoError(t, err)

	q, err := qap.From(sys, testfield.New(1))
	require.NoError(t, err)

	require.Equal(t, sys.NumConstraints(), q.T.Degree())
	for i := 0; i < q.D.Size(); i++ {
		require.True(t, poly.Eval(q.T, q.D.Point(i)).IsZero())
	}
}
