// Package qap implements the Quadratic Arithmetic Program transform: given
// an R1CS, build per-variable polynomials u_j, v_j, w_j via column-wise
// Lagrange interpolation over a fixed evaluation domain, plus the target
// polynomial t(x) = prod(x - omega_i).
package qap

import (
	"github.com/groth16-go/groth16/algebra"
	"github.com/groth16-go/groth16/domain"
	"github.com/groth16-go/groth16/internal/debug"
	"github.com/groth16-go/groth16/poly"
	"github.com/groth16-go/groth16/r1cs"
)

// QAP is the polynomial encoding of an R1CS: per-variable polynomials U, V,
// W (one triple per R1CS column) and a target polynomial T.
type QAP struct {
	U, V, W         []poly.Polynomial
	T               poly.Polynomial
	D               domain.Domain
	NumPublicInputs int
}

// From builds a QAP from sys, using the standard domain (1, 2, ..., m) per
// spec.md §4.4. one must be the multiplicative identity of the same field
// the constraint system's coefficients live in.
func From(sys *r1cs.R1CS, one algebra.Scalar) (*QAP, error) {
	m := sys.NumConstraints()
	n := sys.NumVariables()
	d := domain.Standard(m, one)

	u := make([]poly.Polynomial, n)
	v := make([]poly.Polynomial, n)
	w := make([]poly.Polynomial, n)

	for j := 0; j < n; j++ {
		up, err := interpolateColumn(sys.A, j, d)
		if err != nil {
			return nil, err
		}
		vp, err := interpolateColumn(sys.B, j, d)
		if err != nil {
			return nil, err
		}
		wp, err := interpolateColumn(sys.C, j, d)
		if err != nil {
			return nil, err
		}
		u[j], v[j], w[j] = up, vp, wp
	}

	t := targetPolynomial(d, one)
	debug.Assert(t.Degree() == m, "target polynomial degree must equal constraint count")

	return &QAP{U: u, V: v, W: w, T: t, D: d, NumPublicInputs: sys.NumPublicInputs}, nil
}

func interpolateColumn(matrix [][]algebra.Scalar, col int, d domain.Domain) (poly.Polynomial, error) {
	pts := make([]poly.Point, d.Size())
	for i := 0; i < d.Size(); i++ {
		pts[i] = poly.Point{X: d.Point(i), Y: matrix[i][col]}
	}
	return poly.LagrangeInterpolate(pts)
}

// targetPolynomial builds t(x) = prod_i (x - omega_i) by iterated
// polynomial multiplication of monomials.
func targetPolynomial(d domain.Domain, one algebra.Scalar) poly.Polynomial {
	t := poly.New([]algebra.Scalar{one})
	for i := 0; i < d.Size(); i++ {
		w := d.Point(i)
		t = poly.Mul(t, poly.New([]algebra.Scalar{w.Neg(), one}))
	}
	return t
}

// CombineWitness computes Sum_j s_j * P_j for a per-variable polynomial
// triple (U, V, or W) and a witness s, as required by both the prover
// (building A(x), B(x), C(x)) and the soundness-link property in spec.md
// §8 item 5.
func CombineWitness(polys []poly.Polynomial, s []algebra.Scalar) poly.Polynomial {
	acc := poly.Zero()
	for j, sj := range s {
		if sj.IsZero() {
			continue
		}
		acc = poly.Add(acc, poly.ScalarMul(polys[j], sj))
	}
	return acc
}
