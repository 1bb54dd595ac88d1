package groth16

import "github.com/groth16-go/groth16/algebra"

// addG1 adds a and b, treating a nil operand as the group identity. This is
// needed because poly.SRSEvaluate and witness-weighted accumulations can
// legitimately produce "no term at all" (a zero polynomial, or every
// witness coefficient zero), and the algebra.G1 interface has no generic
// identity constructor to fall back on.
func addG1(a, b algebra.G1) algebra.G1 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return a.Add(b)
	}
}

// addG2 is addG1's G2 counterpart.
func addG2(a, b algebra.G2) algebra.G2 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		return a.Add(b)
	}
}
