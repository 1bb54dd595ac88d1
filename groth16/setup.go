// Package groth16 implements the trusted setup, prover, and verifier of the
// Groth16 zk-SNARK protocol over an abstract algebra backend.
package groth16

import (
	"io"

	"github.com/groth16-go/groth16/algebra"
	"github.com/groth16-go/groth16/gerr"
	"github.com/groth16-go/groth16/glog"
	"github.com/groth16-go/groth16/internal/debug"
	"github.com/groth16-go/groth16/poly"
	"github.com/groth16-go/groth16/qap"
)

// ProvingKey carries every reference-string element the prover needs. Field
// names echo the teacher's cs/groth16/setup.go ProvingKey, generalized over
// the algebra backend instead of a concrete curve.
type ProvingKey struct {
	Alpha, Beta, Delta algebra.G1
	BetaG2, DeltaG2    algebra.G2

	// L holds L_j = ((beta*u_j(x) + alpha*v_j(x) + w_j(x)) / delta) * G1
	// for the private variables j in [k, n), indexed from 0.
	L []algebra.G1

	// SRS1[i] = x^i * G1, SRS2[i] = x^i * G2, for i < m, used to evaluate
	// A(x) and B(x) "in the exponent" via poly.SRSEvaluate.
	SRS1 []algebra.G1
	SRS2 []algebra.G2

	// HSRS[i] = (x^i * t(x) / delta) * G1, for i < m-1, used to evaluate
	// h(x)*t(x)/delta in the exponent in a single poly.SRSEvaluate call.
	HSRS []algebra.G1
}

// VerifyingKey carries the elements the verifier needs to check a proof
// against a public input vector.
type VerifyingKey struct {
	Alpha           algebra.G1
	Beta, Gamma, Delta algebra.G2

	// IC[j] = ((beta*u_j(x) + alpha*v_j(x) + w_j(x)) / gamma) * G1, for the
	// public variables j < k (k = NumPublicInputs, including the
	// constant-1 wire at index 0).
	IC []algebra.G1
}

type toxicWaste struct {
	alpha, beta, gamma, delta, x algebra.Scalar
}

func sampleToxicWaste(field algebra.ScalarField, rng io.Reader) (*toxicWaste, error) {
	sample := func() (algebra.Scalar, error) {
		s, err := field.Random(rng)
		if err != nil {
			return nil, gerr.New(gerr.RngFailure, "sampling toxic waste")
		}
		return s, nil
	}

	alpha, err := sample()
	if err != nil {
		return nil, err
	}
	beta, err := sample()
	if err != nil {
		return nil, err
	}
	gamma, err := sample()
	if err != nil {
		return nil, err
	}
	if gamma.IsZero() {
		return nil, gerr.New(gerr.ZeroSampled, "sampling gamma")
	}
	delta, err := sample()
	if err != nil {
		return nil, err
	}
	if delta.IsZero() {
		return nil, gerr.New(gerr.ZeroSampled, "sampling delta")
	}
	x, err := sample()
	if err != nil {
		return nil, err
	}

	return &toxicWaste{alpha: alpha, beta: beta, gamma: gamma, delta: delta, x: x}, nil
}

// zeroize overwrites the toxic scalars in place. Go's garbage collector may
// still retain earlier copies produced by the immutable Scalar API, so this
// is best-effort hygiene on the struct itself, not a guarantee against all
// copies — see DESIGN.md for why no stronger guarantee is attempted.
func (tw *toxicWaste) zeroize() {
	zero := tw.alpha.Zero()
	tw.alpha, tw.beta, tw.gamma, tw.delta, tw.x = zero, zero, zero, zero, zero
}

// Setup runs the Groth16 trusted setup over q, producing a fresh
// (ProvingKey, VerifyingKey) pair. Every invocation samples new toxic waste;
// calling Setup twice on the same QAP yields two independent, incompatible
// key pairs.
func Setup(q *qap.QAP, field algebra.ScalarField, pairing algebra.Pairing, rng io.Reader) (*ProvingKey, *VerifyingKey, error) {
	tw, err := sampleToxicWaste(field, rng)
	if err != nil {
		return nil, nil, err
	}
	defer tw.zeroize()

	g1 := pairing.G1Generator()
	g2 := pairing.G2Generator()

	m := q.T.Degree()
	n := len(q.U)
	k := q.NumPublicInputs

	deltaInv := tw.delta.Inverse()
	gammaInv := tw.gamma.Inverse()

	srs1 := make([]algebra.G1, m)
	srs2 := make([]algebra.G2, m)
	cur := field.One()
	for i := 0; i < m; i++ {
		srs1[i] = g1.ScalarMul(cur)
		srs2[i] = g2.ScalarMul(cur)
		cur = cur.Mul(tw.x)
	}

	tAtX := poly.Eval(q.T, tw.x)
	hScale := tAtX.Mul(deltaInv)
	hsrsLen := m - 1
	if hsrsLen < 0 {
		hsrsLen = 0
	}
	hsrs := make([]algebra.G1, hsrsLen)
	cur = hScale
	for i := 0; i < hsrsLen; i++ {
		hsrs[i] = g1.ScalarMul(cur)
		cur = cur.Mul(tw.x)
	}

	ic := make([]algebra.G1, k)
	for j := 0; j < k; j++ {
		comb := combinedTerm(q, j, tw.alpha, tw.beta, tw.x)
		ic[j] = g1.ScalarMul(comb.Mul(gammaInv))
	}

	lVec := make([]algebra.G1, n-k)
	for j := k; j < n; j++ {
		comb := combinedTerm(q, j, tw.alpha, tw.beta, tw.x)
		lVec[j-k] = g1.ScalarMul(comb.Mul(deltaInv))
	}
	debug.Assert(len(ic)+len(lVec) == n, "public and private coefficient vectors must partition all variables")

	pk := &ProvingKey{
		Alpha:  g1.ScalarMul(tw.alpha),
		Beta:   g1.ScalarMul(tw.beta),
		Delta:  g1.ScalarMul(tw.delta),
		BetaG2: g2.ScalarMul(tw.beta),
		DeltaG2: g2.ScalarMul(tw.delta),
		L:      lVec,
		SRS1:   srs1,
		SRS2:   srs2,
		HSRS:   hsrs,
	}

	vk := &VerifyingKey{
		Alpha: g1.ScalarMul(tw.alpha),
		Beta:  g2.ScalarMul(tw.beta),
		Gamma: g2.ScalarMul(tw.gamma),
		Delta: g2.ScalarMul(tw.delta),
		IC:    ic,
	}

	log := glog.Logger()
	log.Debug().
		Int("num_constraints", m).
		Int("num_variables", n).
		Int("num_public_inputs", k).
		Msg("groth16 setup complete")

	return pk, vk, nil
}

// combinedTerm computes beta*u_j(x) + alpha*v_j(x) + w_j(x), the shared
// building block of both IC_j and L_j.
func combinedTerm(q *qap.QAP, j int, alpha, beta, x algebra.Scalar) algebra.Scalar {
	uj := poly.Eval(q.U[j], x)
	vj := poly.Eval(q.V[j], x)
	wj := poly.Eval(q.W[j], x)
	return beta.Mul(uj).Add(alpha.Mul(vj)).Add(wj)
}
