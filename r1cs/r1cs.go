// Package r1cs implements the Rank-1 Constraint System data model: three
// m-by-n matrices A, B, C over a field, satisfied by a witness s iff
// (A_i . s)(B_i . s) = C_i . s for every row i.
package r1cs

import (
	"fmt"

	"github.com/groth16-go/groth16/algebra"
	"github.com/groth16-go/groth16/gerr"
)

// R1CS is a rank-1 constraint system: matrices A, B, C of shape
// NumConstraints x NumVariables, with the constant-1 wire at variable index
// 0. The first NumPublicInputs variables are public: the constant-1 wire
// counts among them, so the other public inputs occupy indices
// 1..NumPublicInputs-1.
type R1CS struct {
	A, B, C         [][]algebra.Scalar
	NumPublicInputs int
}

// New validates that A, B, and C share a common shape and that
// numPublicInputs is within range, then returns the constraint system.
func New(a, b, c [][]algebra.Scalar, numPublicInputs int) (*R1CS, error) {
	m := len(a)
	if len(b) != m || len(c) != m {
		return nil, gerr.New(gerr.ShapeMismatch, fmt.Sprintf("constructing r1cs: row counts %d/%d/%d", len(a), len(b), len(c)))
	}
	n := 0
	if m > 0 {
		n = len(a[0])
	}
	for i := 0; i < m; i++ {
		if len(a[i]) != n || len(b[i]) != n || len(c[i]) != n {
			return nil, gerr.New(gerr.ShapeMismatch, fmt.Sprintf("constructing r1cs: row %d width mismatch", i))
		}
	}
	if numPublicInputs > n {
		return nil, gerr.New(gerr.ShapeMismatch, "constructing r1cs: num_public_inputs exceeds variable count")
	}
	return &R1CS{A: a, B: b, C: c, NumPublicInputs: numPublicInputs}, nil
}

// NumConstraints returns m, the number of rows.
func (r *R1CS) NumConstraints() int { return len(r.A) }

// NumVariables returns n, the number of columns (including the constant-1
// wire at index 0).
func (r *R1CS) NumVariables() int {
	if len(r.A) == 0 {
		return 0
	}
	return len(r.A[0])
}

// IsSatisfiedBy reports whether witness s satisfies every constraint row:
// (A_i . s) * (B_i . s) == C_i . s.
func (r *R1CS) IsSatisfiedBy(s []algebra.Scalar) (bool, error) {
	n := r.NumVariables()
	if len(s) != n {
		return false, gerr.New(gerr.WidthMismatch, fmt.Sprintf("checking satisfaction: witness length %d != %d", len(s), n))
	}
	if n == 0 {
		return true, nil
	}
	zero := s[0].Zero()
	for i := 0; i < r.NumConstraints(); i++ {
		av := dot(r.A[i], s, zero)
		bv := dot(r.B[i], s, zero)
		cv := dot(r.C[i], s, zero)
		if !av.Mul(bv).Equal(cv) {
			return false, nil
		}
	}
	return true, nil
}

func dot(row, s []algebra.Scalar, zero algebra.Scalar) algebra.Scalar {
	acc := zero
	for j, coeff := range row {
		if coeff.IsZero() {
			continue
		}
		acc = acc.Add(coeff.Mul(s[j]))
	}
	return acc
}
