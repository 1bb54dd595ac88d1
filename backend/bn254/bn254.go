// Package bn254 is the reference algebra backend: an adapter over
// github.com/consensys/gnark-crypto/ecc/bn254 satisfying the algebra
// package's Scalar/G1/G2/GT/Pairing interfaces. It is grounded on the
// concrete API shapes used throughout the template-generated Groth16 code
// (fr.Element, G1Jac/G1Affine, G2Jac/G2Affine, curve.Pair), adapted to a
// single-call, sequential style instead of the generator's goroutine
// orchestration, per this module's single-threaded engine (see DESIGN.md).
package bn254

import (
	"io"
	"math/big"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/groth16-go/groth16/algebra"
	"github.com/groth16-go/groth16/gerr"
)

// Scalar wraps fr.Element, the bn254 scalar field element.
type Scalar struct{ e fr.Element }

// NewScalar wraps e as an algebra.Scalar.
func NewScalar(e fr.Element) Scalar { return Scalar{e: e} }

func (s Scalar) Add(other algebra.Scalar) algebra.Scalar {
	var z fr.Element
	o := other.(Scalar)
	z.Add(&s.e, &o.e)
	return Scalar{e: z}
}

func (s Scalar) Sub(other algebra.Scalar) algebra.Scalar {
	var z fr.Element
	o := other.(Scalar)
	z.Sub(&s.e, &o.e)
	return Scalar{e: z}
}

func (s Scalar) Mul(other algebra.Scalar) algebra.Scalar {
	var z fr.Element
	o := other.(Scalar)
	z.Mul(&s.e, &o.e)
	return Scalar{e: z}
}

func (s Scalar) Neg() algebra.Scalar {
	var z fr.Element
	z.Neg(&s.e)
	return Scalar{e: z}
}

func (s Scalar) Inverse() algebra.Scalar {
	var z fr.Element
	z.Inverse(&s.e)
	return Scalar{e: z}
}

func (s Scalar) IsZero() bool { return s.e.IsZero() }

func (s Scalar) Equal(other algebra.Scalar) bool {
	o, ok := other.(Scalar)
	return ok && s.e.Equal(&o.e)
}

func (s Scalar) SetUint64(v uint64) algebra.Scalar {
	var z fr.Element
	z.SetUint64(v)
	return Scalar{e: z}
}

func (s Scalar) Zero() algebra.Scalar {
	var z fr.Element
	z.SetZero()
	return Scalar{e: z}
}

func (s Scalar) One() algebra.Scalar {
	var z fr.Element
	z.SetOne()
	return Scalar{e: z}
}

func (s Scalar) Bytes() []byte {
	b := s.e.Bytes()
	return b[:]
}

// ScalarField implements algebra.ScalarField over Scalar, sampling from the
// caller-supplied randomness source rather than relying on fr.Element's own
// SetRandom (which always draws from crypto/rand internally) — per spec.md
// §5, the library must consume whatever entropy source the caller passes
// in.
type ScalarField struct{}

func (ScalarField) Random(r io.Reader) (algebra.Scalar, error) {
	buf := make([]byte, fr.Bytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, gerr.Wrap(err, "reading randomness")
	}
	var z fr.Element
	z.SetBytes(buf)
	return Scalar{e: z}, nil
}

func (ScalarField) Zero() algebra.Scalar {
	var z fr.Element
	z.SetZero()
	return Scalar{e: z}
}

func (ScalarField) One() algebra.Scalar {
	var z fr.Element
	z.SetOne()
	return Scalar{e: z}
}

func scalarBigInt(s algebra.Scalar) *big.Int {
	e := s.(Scalar).e
	var bi big.Int
	e.BigInt(&bi)
	return &bi
}

// G1 wraps a bn254 G1 point in Jacobian coordinates, the representation
// gnark-crypto's own Groth16 code keeps intermediate results in, converting
// to affine only for equality checks and serialization.
type G1 struct{ p curve.G1Jac }

func NewG1(p curve.G1Jac) G1 { return G1{p: p} }

func (g G1) Add(other algebra.G1) algebra.G1 {
	var z curve.G1Jac
	z.Set(&g.p)
	o := other.(G1)
	z.AddAssign(&o.p)
	return G1{p: z}
}

func (g G1) Neg() algebra.G1 {
	var z curve.G1Jac
	z.Neg(&g.p)
	return G1{p: z}
}

func (g G1) ScalarMul(s algebra.Scalar) algebra.G1 {
	var z curve.G1Jac
	z.ScalarMultiplication(&g.p, scalarBigInt(s))
	return G1{p: z}
}

func (g G1) Equal(other algebra.G1) bool {
	var a, b curve.G1Affine
	a.FromJacobian(&g.p)
	o := other.(G1)
	b.FromJacobian(&o.p)
	return a.Equal(&b)
}

func (g G1) IsInfinity() bool {
	var a curve.G1Affine
	a.FromJacobian(&g.p)
	return a.IsInfinity()
}

func (g G1) Bytes() []byte {
	var a curve.G1Affine
	a.FromJacobian(&g.p)
	b := a.Bytes()
	return b[:]
}

// G2 wraps a bn254 G2 point in Jacobian coordinates.
type G2 struct{ p curve.G2Jac }

func NewG2(p curve.G2Jac) G2 { return G2{p: p} }

func (g G2) Add(other algebra.G2) algebra.G2 {
	var z curve.G2Jac
	z.Set(&g.p)
	o := other.(G2)
	z.AddAssign(&o.p)
	return G2{p: z}
}

func (g G2) Neg() algebra.G2 {
	var z curve.G2Jac
	z.Neg(&g.p)
	return G2{p: z}
}

func (g G2) ScalarMul(s algebra.Scalar) algebra.G2 {
	var z curve.G2Jac
	z.ScalarMultiplication(&g.p, scalarBigInt(s))
	return G2{p: z}
}

func (g G2) Equal(other algebra.G2) bool {
	var a, b curve.G2Affine
	a.FromJacobian(&g.p)
	o := other.(G2)
	b.FromJacobian(&o.p)
	return a.Equal(&b)
}

func (g G2) IsInfinity() bool {
	var a curve.G2Affine
	a.FromJacobian(&g.p)
	return a.IsInfinity()
}

func (g G2) Bytes() []byte {
	var a curve.G2Affine
	a.FromJacobian(&g.p)
	b := a.Bytes()
	return b[:]
}

// GT wraps a bn254 target-group element.
type GT struct{ v curve.GT }

func (g GT) Mul(other algebra.GT) algebra.GT {
	var z curve.GT
	o := other.(GT)
	z.Mul(&g.v, &o.v)
	return GT{v: z}
}

func (g GT) Equal(other algebra.GT) bool {
	o, ok := other.(GT)
	return ok && g.v.Equal(&o.v)
}

// Pairing implements algebra.Pairing over the bn254 curve.
type Pairing struct{}

func (Pairing) G1Generator() algebra.G1 {
	_, _, g1Aff, _ := curve.Generators()
	var j curve.G1Jac
	j.FromAffine(&g1Aff)
	return G1{p: j}
}

func (Pairing) G2Generator() algebra.G2 {
	_, _, _, g2Aff := curve.Generators()
	var j curve.G2Jac
	j.FromAffine(&g2Aff)
	return G2{p: j}
}

func (Pairing) Pair(a algebra.G1, b algebra.G2) (algebra.GT, error) {
	var aAff curve.G1Affine
	aG1 := a.(G1)
	aAff.FromJacobian(&aG1.p)
	var bAff curve.G2Affine
	bG2 := b.(G2)
	bAff.FromJacobian(&bG2.p)

	res, err := curve.Pair([]curve.G1Affine{aAff}, []curve.G2Affine{bAff})
	if err != nil {
		return nil, gerr.Wrap(err, "pairing")
	}
	return GT{v: res}, nil
}

func (Pairing) MultiPair(as []algebra.G1, bs []algebra.G2) (algebra.GT, error) {
	if len(as) != len(bs) {
		return nil, gerr.New(gerr.BackendError, "multi-pairing: mismatched operand counts")
	}
	g1s := make([]curve.G1Affine, len(as))
	g2s := make([]curve.G2Affine, len(bs))
	for i := range as {
		aG1 := as[i].(G1)
		g1s[i].FromJacobian(&aG1.p)
		bG2 := bs[i].(G2)
		g2s[i].FromJacobian(&bG2.p)
	}
	res, err := curve.Pair(g1s, g2s)
	if err != nil {
		return nil, gerr.Wrap(err, "multi-pairing")
	}
	return GT{v: res}, nil
}
