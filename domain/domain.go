// Package domain implements the evaluation domain used by the QAP
// transform: a fixed ordered sequence of m distinct field elements shared by
// setup, prover, and verifier.
package domain

import "github.com/groth16-go/groth16/algebra"

// Domain is an ordered sequence of distinct field elements.
type Domain struct {
	points []algebra.Scalar
}

// New wraps an existing ordered sequence of points as a Domain. Callers
// building a domain by hand (rather than via Standard) are responsible for
// distinctness; New does not check it. qap.From does not take a Domain: it
// always builds its own via Standard.
func New(points []algebra.Scalar) Domain {
	cp := make([]algebra.Scalar, len(points))
	copy(cp, points)
	return Domain{points: cp}
}

// Standard builds the domain (1, 2, ..., m) by repeated addition of one,
// the choice spec.md §4.2 permits and this module adopts: small-integer
// embeddings suffice for correctness and keep the QAP transform a plain
// Lagrange interpolation rather than requiring roots of unity.
func Standard(m int, one algebra.Scalar) Domain {
	points := make([]algebra.Scalar, m)
	cur := one
	for i := 0; i < m; i++ {
		points[i] = cur
		cur = cur.Add(one)
	}
	return Domain{points: points}
}

// Size returns the number of points in the domain.
func (d Domain) Size() int { return len(d.points) }

// Point returns the i-th point of the domain.
func (d Domain) Point(i int) algebra.Scalar { return d.points[i] }

// Points returns a copy of the domain's points.
func (d Domain) Points() []algebra.Scalar {
	cp := make([]algebra.Scalar, len(d.points))
	copy(cp, d.points)
	return cp
}
