// Package poly implements dense univariate polynomial arithmetic over an
// abstract field, as required by the QAP transform and the Groth16 engine:
// addition, subtraction, multiplication, Euclidean division, Lagrange
// interpolation, Horner evaluation, and evaluation "in the exponent" against
// a structured reference string.
//
// Every exported constructor returns a canonical polynomial: trailing zero
// coefficients are always stripped, so the zero polynomial is the empty
// coefficient sequence and equality is structural.
package poly

import (
	"github.com/groth16-go/groth16/algebra"
	"github.com/groth16-go/groth16/gerr"
)

// Polynomial is a finite sequence of coefficients c0, c1, ..., cd with cd
// the leading (highest-degree) term. A canonical Polynomial's highest-index
// coefficient is never zero, except for the zero polynomial, whose
// coefficient slice is empty.
type Polynomial struct {
	coeffs []algebra.Scalar
}

// New builds a canonical Polynomial from coefficients in increasing degree
// order. The input slice is not retained.
func New(coeffs []algebra.Scalar) Polynomial {
	cp := make([]algebra.Scalar, len(coeffs))
	copy(cp, coeffs)
	return Polynomial{coeffs: trim(cp)}
}

// Zero returns the zero polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// trim strips trailing zero coefficients so the result is canonical.
func trim(c []algebra.Scalar) []algebra.Scalar {
	n := len(c)
	for n > 0 && c[n-1].IsZero() {
		n--
	}
	return c[:n]
}

// Degree returns the polynomial's degree, or -1 for the zero polynomial
// (spec's "degree -infinity" convention, represented as -1 since Go has no
// natural negative infinity for int).
func (p Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.coeffs) == 0
}

// Coeff returns the coefficient of x^i, or nil if i is out of range (treated
// as the implicit zero coefficient by every operation below).
func (p Polynomial) Coeff(i int) algebra.Scalar {
	if i < 0 || i >= len(p.coeffs) {
		return nil
	}
	return p.coeffs[i]
}

// Coeffs returns a copy of p's coefficient vector, lowest degree first.
func (p Polynomial) Coeffs() []algebra.Scalar {
	cp := make([]algebra.Scalar, len(p.coeffs))
	copy(cp, p.coeffs)
	return cp
}

// Equal reports whether p and q are structurally equal canonical
// polynomials.
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if !p.coeffs[i].Equal(q.coeffs[i]) {
			return false
		}
	}
	return true
}

// Eval evaluates p at z using Horner's rule.
func Eval(p Polynomial, z algebra.Scalar) algebra.Scalar {
	if p.IsZero() {
		return z.Zero()
	}
	acc := p.coeffs[len(p.coeffs)-1]
	for i := len(p.coeffs) - 2; i >= 0; i-- {
		acc = acc.Mul(z).Add(p.coeffs[i])
	}
	return acc
}

// Add returns p + q.
func Add(p, q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]algebra.Scalar, n)
	for i := 0; i < n; i++ {
		a := p.Coeff(i)
		b := q.Coeff(i)
		switch {
		case a != nil && b != nil:
			out[i] = a.Add(b)
		case a != nil:
			out[i] = a
		case b != nil:
			out[i] = b
		default:
			out[i] = nil
		}
	}
	return Polynomial{coeffs: trim(out)}
}

// Sub returns p - q.
func Sub(p, q Polynomial) Polynomial {
	n := len(p.coeffs)
	if len(q.coeffs) > n {
		n = len(q.coeffs)
	}
	out := make([]algebra.Scalar, n)
	for i := 0; i < n; i++ {
		a := p.Coeff(i)
		b := q.Coeff(i)
		switch {
		case a != nil && b != nil:
			out[i] = a.Sub(b)
		case a != nil:
			out[i] = a
		case b != nil:
			out[i] = b.Neg()
		default:
			out[i] = nil
		}
	}
	return Polynomial{coeffs: trim(out)}
}

// Mul returns p * q via schoolbook O(deg(p)*deg(q)) multiplication.
func Mul(p, q Polynomial) Polynomial {
	if p.IsZero() || q.IsZero() {
		return Zero()
	}
	out := make([]algebra.Scalar, len(p.coeffs)+len(q.coeffs)-1)
	for i, a := range p.coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.coeffs {
			term := a.Mul(b)
			if out[i+j] == nil {
				out[i+j] = term
			} else {
				out[i+j] = out[i+j].Add(term)
			}
		}
	}
	for i := range out {
		if out[i] == nil {
			out[i] = p.Coeff(0).Zero()
		}
	}
	return Polynomial{coeffs: trim(out)}
}

// ScalarMul returns c * p.
func ScalarMul(p Polynomial, c algebra.Scalar) Polynomial {
	if c.IsZero() || p.IsZero() {
		return Zero()
	}
	out := make([]algebra.Scalar, len(p.coeffs))
	for i, a := range p.coeffs {
		out[i] = a.Mul(c)
	}
	return Polynomial{coeffs: trim(out)}
}

// ScalarAdd returns p with c added to its constant term.
func ScalarAdd(p Polynomial, c algebra.Scalar) Polynomial {
	if p.IsZero() {
		return New([]algebra.Scalar{c})
	}
	out := p.Coeffs()
	out[0] = out[0].Add(c)
	return Polynomial{coeffs: trim(out)}
}

// Div performs Euclidean division: p = q*d + r with deg(r) < deg(d).
// d must be non-zero.
func Div(p, d Polynomial) (q, r Polynomial, err error) {
	if d.IsZero() {
		return Zero(), Zero(), gerr.New(gerr.BackendError, "dividing polynomial by zero divisor")
	}
	if p.IsZero() {
		return Zero(), Zero(), nil
	}

	remainder := p.Coeffs()
	dLead := d.coeffs[len(d.coeffs)-1]
	dLeadInv := dLead.Inverse()
	dDeg := d.Degree()

	var quotient []algebra.Scalar
	if p.Degree() >= dDeg {
		quotient = make([]algebra.Scalar, p.Degree()-dDeg+1)
		for i := range quotient {
			quotient[i] = dLead.Zero()
		}
	}

	for {
		deg := lastNonZero(remainder)
		if deg < dDeg {
			break
		}
		coeff := remainder[deg].Mul(dLeadInv)
		quotient[deg-dDeg] = coeff
		for i, dc := range d.coeffs {
			remainder[deg-dDeg+i] = remainder[deg-dDeg+i].Sub(coeff.Mul(dc))
		}
	}

	return Polynomial{coeffs: trim(quotient)}, Polynomial{coeffs: trim(remainder)}, nil
}

func lastNonZero(s []algebra.Scalar) int {
	for i := len(s) - 1; i >= 0; i-- {
		if !s[i].IsZero() {
			return i
		}
	}
	return -1
}

// Point is an (x, y) pair for Lagrange interpolation.
type Point struct {
	X, Y algebra.Scalar
}

// LagrangeInterpolate returns the unique polynomial of degree < len(points)
// passing through every given point, via the Lagrange basis-polynomial
// formula: sum_i y_i * L_i(x) with L_i(x) = prod_{j!=i} (x-x_j)/(x_i-x_j).
func LagrangeInterpolate(points []Point) (Polynomial, error) {
	if len(points) == 0 {
		return Zero(), nil
	}
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if points[i].X.Equal(points[j].X) {
				return Zero(), gerr.New(gerr.DuplicateAbscissa, "lagrange interpolation")
			}
		}
	}

	one := points[0].X.One()
	result := Zero()

	for i, pi := range points {
		numerator := New([]algebra.Scalar{one})
		denominator := one
		for j, pj := range points {
			if i == j {
				continue
			}
			// numerator *= (x - x_j)
			numerator = Mul(numerator, New([]algebra.Scalar{pj.X.Neg(), one}))
			denominator = denominator.Mul(pi.X.Sub(pj.X))
		}
		coeff := pi.Y.Mul(denominator.Inverse())
		result = Add(result, ScalarMul(numerator, coeff))
	}
	return result, nil
}

// SRSEvaluate evaluates p "in the exponent" using a structured reference
// string of group elements srs[i] = x^i * G, returning sum_i coeffs[i] *
// srs[i] without ever reconstructing the secret x. The srs type is generic
// over any group that supports addition and scalar multiplication by an
// algebra.Scalar; callers instantiate it with algebra.G1 or algebra.G2.
func SRSEvaluate[G interface {
	Add(other G) G
	ScalarMul(s algebra.Scalar) G
}](p Polynomial, srs []G) (G, error) {
	var acc G
	if p.Degree() >= len(srs) {
		return acc, gerr.New(gerr.InsufficientSrs, "evaluating polynomial in the exponent")
	}
	if p.IsZero() {
		return acc, nil
	}
	acc = srs[0].ScalarMul(p.coeffs[0])
	for i := 1; i < len(p.coeffs); i++ {
		if p.coeffs[i].IsZero() {
			continue
		}
		acc = acc.Add(srs[i].ScalarMul(p.coeffs[i]))
	}
	return acc, nil
}
