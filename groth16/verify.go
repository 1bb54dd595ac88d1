package groth16

import (
	"github.com/groth16-go/groth16/algebra"
	"github.com/groth16-go/groth16/gerr"
	"github.com/groth16-go/groth16/glog"
)

// Verify checks proof against vk and the public inputs (s_0=1, s_1, ...,
// s_{k-1}), accepting iff
//
//	e(A, B) == e(alphaG1, betaG2) * e(vk_x, gammaG2) * e(C, deltaG2)
//
// Verify returns (true, nil) on acceptance. Structural rejection (wrong
// public-input count) and cryptographic rejection (pairing equation fails)
// are distinguished via the returned error's gerr.Kind.
func Verify(vk *VerifyingKey, publicInputs []algebra.Scalar, proof *Proof, pairing algebra.Pairing) (bool, error) {
	if len(publicInputs) != len(vk.IC) {
		return false, gerr.New(gerr.PublicInputCountMismatch, "verifying: public input count mismatch")
	}

	var vkX algebra.G1
	for j, sj := range publicInputs {
		if sj.IsZero() {
			continue
		}
		vkX = addG1(vkX, vk.IC[j].ScalarMul(sj))
	}
	if vkX == nil {
		vkX = vk.Alpha.ScalarMul(publicInputs[0].Zero())
	}

	lhs, err := pairing.Pair(proof.A, proof.B)
	if err != nil {
		return false, gerr.Wrap(err, "pairing A with B")
	}

	rhs, err := pairing.MultiPair(
		[]algebra.G1{vk.Alpha, vkX, proof.C},
		[]algebra.G2{vk.Beta, vk.Gamma, vk.Delta},
	)
	if err != nil {
		return false, gerr.Wrap(err, "batching right-hand-side pairings")
	}

	log := glog.Logger()
	if !lhs.Equal(rhs) {
		log.Debug().Msg("groth16 verify rejected")
		return false, gerr.New(gerr.VerificationFailed, "verifying: pairing equation does not hold")
	}

	log.Debug().Msg("groth16 verify accepted")
	return true, nil
}
