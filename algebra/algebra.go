// Package algebra defines the capability interfaces a pairing-friendly
// curve backend must supply: a prime field, two source groups, a target
// group, and a bilinear pairing between them. Every other package in this
// module — poly, domain, r1cs, qap, groth16 — is written against these
// interfaces and is curve-agnostic; backend/bn254 is the reference
// implementation.
//
// This is deliberately plain interface polymorphism, not Go generics: the
// field/group/pairing relationship is parametric (one backend, substituted
// wholesale), not a family of tagged variants.
package algebra

import "io"

// Scalar is an element of the scalar field F shared by G1, G2, and GT.
type Scalar interface {
	// Add returns a new Scalar holding s + other.
	Add(other Scalar) Scalar
	// Sub returns a new Scalar holding s - other.
	Sub(other Scalar) Scalar
	// Mul returns a new Scalar holding s * other.
	Mul(other Scalar) Scalar
	// Neg returns a new Scalar holding -s.
	Neg() Scalar
	// Inverse returns a new Scalar holding s^-1. Undefined if s is zero.
	Inverse() Scalar
	// IsZero reports whether s is the additive identity.
	IsZero() bool
	// Equal reports whether s and other represent the same field element.
	Equal(other Scalar) bool
	// SetUint64 returns a new Scalar set to the given small integer.
	SetUint64(v uint64) Scalar
	// Zero returns the additive identity of the same field as s.
	Zero() Scalar
	// One returns the multiplicative identity of the same field as s.
	One() Scalar
	// Bytes returns the canonical encoding of s.
	Bytes() []byte
}

// ScalarField samples fresh Scalar values. Kept separate from Scalar itself
// because sampling needs a field "factory", not an existing element.
type ScalarField interface {
	// Random draws a uniformly distributed Scalar from r.
	Random(r io.Reader) (Scalar, error)
	// Zero returns the additive identity.
	Zero() Scalar
	// One returns the multiplicative identity.
	One() Scalar
}

// G1 is an element of the first source group.
type G1 interface {
	Add(other G1) G1
	Neg() G1
	ScalarMul(s Scalar) G1
	Equal(other G1) bool
	IsInfinity() bool
	Bytes() []byte
}

// G2 is an element of the second source group.
type G2 interface {
	Add(other G2) G2
	Neg() G2
	ScalarMul(s Scalar) G2
	Equal(other G2) bool
	IsInfinity() bool
	Bytes() []byte
}

// GT is an element of the pairing target group.
type GT interface {
	Mul(other GT) GT
	Equal(other GT) bool
}

// Pairing bundles the generators and the bilinear map e: G1 x G2 -> GT.
type Pairing interface {
	G1Generator() G1
	G2Generator() G2
	// Pair computes e(a, b).
	Pair(a G1, b G2) (GT, error)
	// MultiPair computes the product of e(a_i, b_i), more efficiently than
	// pairing each term and multiplying in GT when the backend supports a
	// shared final exponentiation. len(a) must equal len(b).
	MultiPair(a []G1, b []G2) (GT, error)
}
