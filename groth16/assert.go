package groth16

import (
	"crypto/rand"
	"testing"

	"github.com/groth16-go/groth16/algebra"
	"github.com/groth16-go/groth16/gerr"
	"github.com/groth16-go/groth16/qap"
	"github.com/groth16-go/groth16/r1cs"
	"github.com/stretchr/testify/require"
)

// Assert is a test helper for exercising the full setup/prove/verify
// pipeline against a constraint system, mirroring the teacher's
// cs/groth16/assert.go pattern: a require.Assertions-embedding struct with
// Solved/NotSolved entry points, exported so downstream users of this
// library can assert properties of their own R1CS/QAP instances the same
// way this module's own tests do.
type Assert struct {
	*require.Assertions
	Field   algebra.ScalarField
	Pairing algebra.Pairing
}

// NewAssert returns an Assert helper bound to t, using field and pairing as
// the backend under test.
func NewAssert(t *testing.T, field algebra.ScalarField, pairing algebra.Pairing) *Assert {
	return &Assert{Assertions: require.New(t), Field: field, Pairing: pairing}
}

// Solved asserts that witness satisfies sys, and that the full
// setup -> prove -> verify round trip accepts. It additionally asserts
// setup and prove randomness: calling Setup (resp. Prove) twice on the same
// input produces different outputs.
func (a *Assert) Solved(sys *r1cs.R1CS, witness []algebra.Scalar, publicInputs []algebra.Scalar) {
	ok, err := sys.IsSatisfiedBy(witness)
	a.NoError(err)
	a.True(ok, "witness should satisfy the constraint system")

	q, err := qap.From(sys, a.Field.One())
	a.NoError(err)

	pk, vk, err := Setup(q, a.Field, a.Pairing, rand.Reader)
	a.NoError(err, "setup with a satisfiable qap should not error")

	pk2, vk2, err := Setup(q, a.Field, a.Pairing, rand.Reader)
	a.NoError(err)
	a.False(pk.Alpha.Equal(pk2.Alpha), "setup with same input should produce different outputs (alpha)")
	a.False(vk.Gamma.Equal(vk2.Gamma), "setup with same input should produce different outputs (gamma)")

	proof, err := Prove(pk, q, witness, a.Field, rand.Reader)
	a.NoError(err, "proving a satisfying witness should not error")

	proof2, err := Prove(pk, q, witness, a.Field, rand.Reader)
	a.NoError(err)
	a.False(proof.A.Equal(proof2.A), "proving twice with the same witness should produce different proofs")

	valid, err := Verify(vk, publicInputs, proof, a.Pairing)
	a.NoError(err)
	a.True(valid, "verifying a proof from a satisfying witness should accept")
}

// NotSolved asserts that witness does NOT satisfy sys, and that proving
// against it fails with WitnessUnsatisfiable.
func (a *Assert) NotSolved(sys *r1cs.R1CS, witness []algebra.Scalar) {
	ok, err := sys.IsSatisfiedBy(witness)
	a.NoError(err)
	a.False(ok, "witness should not satisfy the constraint system")

	q, err := qap.From(sys, a.Field.One())
	a.NoError(err)

	pk, _, err := Setup(q, a.Field, a.Pairing, rand.Reader)
	a.NoError(err)

	_, err = Prove(pk, q, witness, a.Field, rand.Reader)
	a.Error(err, "proving with an unsatisfying witness should error")
	a.True(gerr.Of(err, gerr.WitnessUnsatisfiable), "proving with an unsatisfying witness should fail with WitnessUnsatisfiable")
}
