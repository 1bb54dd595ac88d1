package bn254_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/groth16-go/groth16/algebra"
	"github.com/groth16-go/groth16/backend/bn254"
	"github.com/groth16-go/groth16/groth16"
	"github.com/groth16-go/groth16/r1cs"
)

// row builds a witness/public-input vector of bn254 scalars from small
// integers, via the field's own Zero().SetUint64, negating for negative
// values; it plays the role testfield.New plays in the row helper of
// groth16/groth16_test.go.
func row(field algebra.ScalarField, vs ...int64) []algebra.Scalar {
	out := make([]algebra.Scalar, len(vs))
	for i, v := range vs {
		if v >= 0 {
			out[i] = field.Zero().SetUint64(uint64(v))
		} else {
			out[i] = field.Zero().SetUint64(uint64(-v)).Neg()
		}
	}
	return out
}

// TestS1ProofCompletenessOverBN254 drives the x*x=y scenario (spec.md §8 S1)
// through the full Setup/Prove/Verify pipeline against the production
// bn254 backend, not just its group axioms in isolation.
func TestS1ProofCompletenessOverBN254(t *testing.T) {
	field := bn254.ScalarField{}
	pairing := bn254.Pairing{}

	a := [][]algebra.Scalar{row(field, 0, 0, 1)}
	b := [][]algebra.Scalar{row(field, 0, 0, 1)}
	c := [][]algebra.Scalar{row(field, 0, 1, 0)}
	sys, err := r1cs.New(a, b, c, 2)
	require.NoError(t, err)

	assert := groth16.NewAssert(t, field, pairing)
	assert.Solved(sys, row(field, 1, 9, 3), row(field, 1, 9))
}
