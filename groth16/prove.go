package groth16

import (
	"io"

	"github.com/groth16-go/groth16/algebra"
	"github.com/groth16-go/groth16/gerr"
	"github.com/groth16-go/groth16/glog"
	"github.com/groth16-go/groth16/poly"
	"github.com/groth16-go/groth16/qap"
)

// Proof is a Groth16 proof: three group elements, constant size regardless
// of circuit complexity.
type Proof struct {
	A algebra.G1
	B algebra.G2
	C algebra.G1
}

// Prove produces a proof that witness satisfies the constraint system q was
// built from, using the reference strings in pk. witness is not checked for
// satisfiability up front (the prover is not a verifier of its own input);
// an unsatisfying witness surfaces as WitnessUnsatisfiable when the
// quotient h(x) = (A*B-C)/t fails to divide evenly.
func Prove(pk *ProvingKey, q *qap.QAP, witness []algebra.Scalar, field algebra.ScalarField, rng io.Reader) (*Proof, error) {
	k := q.NumPublicInputs
	n := len(q.U)
	if len(witness) != n {
		return nil, gerr.New(gerr.WidthMismatch, "proving: witness length mismatch")
	}

	aPoly := qap.CombineWitness(q.U, witness)
	bPoly := qap.CombineWitness(q.V, witness)
	cPoly := qap.CombineWitness(q.W, witness)

	lhs := poly.Sub(poly.Mul(aPoly, bPoly), cPoly)
	h, remainder, err := poly.Div(lhs, q.T)
	if err != nil {
		return nil, gerr.Wrap(err, "computing h(x)")
	}
	if !remainder.IsZero() {
		return nil, gerr.New(gerr.WitnessUnsatisfiable, "computing h(x): non-zero remainder")
	}

	rBlind, err := field.Random(rng)
	if err != nil {
		return nil, gerr.New(gerr.RngFailure, "sampling prover randomness r")
	}
	sBlind, err := field.Random(rng)
	if err != nil {
		return nil, gerr.New(gerr.RngFailure, "sampling prover randomness s")
	}

	axG1, err := poly.SRSEvaluate(aPoly, pk.SRS1)
	if err != nil {
		return nil, gerr.Wrap(err, "evaluating A(x) in G1")
	}
	bxG2, err := poly.SRSEvaluate(bPoly, pk.SRS2)
	if err != nil {
		return nil, gerr.Wrap(err, "evaluating B(x) in G2")
	}
	bxG1, err := poly.SRSEvaluate(bPoly, pk.SRS1)
	if err != nil {
		return nil, gerr.Wrap(err, "evaluating B(x) in G1")
	}
	hTerm, err := poly.SRSEvaluate(h, pk.HSRS)
	if err != nil {
		return nil, gerr.Wrap(err, "evaluating h(x)*t(x)/delta in G1")
	}

	var privateSum algebra.G1
	for j := k; j < n; j++ {
		if witness[j].IsZero() {
			continue
		}
		privateSum = addG1(privateSum, pk.L[j-k].ScalarMul(witness[j]))
	}

	aProof := addG1(addG1(pk.Alpha, axG1), pk.Delta.ScalarMul(rBlind))
	bProofG2 := addG2(addG2(pk.BetaG2, bxG2), pk.DeltaG2.ScalarMul(sBlind))
	bInG1 := addG1(addG1(pk.Beta, bxG1), pk.Delta.ScalarMul(sBlind))

	cProof := addG1(addG1(addG1(addG1(privateSum, hTerm),
		aProof.ScalarMul(sBlind)),
		bInG1.ScalarMul(rBlind)),
		pk.Delta.ScalarMul(rBlind.Mul(sBlind).Neg()))

	log := glog.Logger()
	log.Debug().Msg("groth16 prove complete")

	return &Proof{A: aProof, B: bProofG2, C: cProof}, nil
}
