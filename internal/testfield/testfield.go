// Package testfield implements algebra.Scalar, algebra.G1, algebra.G2 and
// algebra.Pairing over a small prime field, for use only by this module's
// own tests. It lets the poly/domain/r1cs/qap/groth16 test suites exercise
// the full ring-law and protocol properties without depending on the
// (comparatively expensive) bn254 backend for every unit test, mirroring
// original_source/polynomial.rs's own tests picking a convenient field
// rather than the production curve.
//
// G1 and G2 are both modeled as the additive group of the scalar field
// itself, with generator 1 — i.e. a group element IS the scalar exponent it
// represents. GT is the same field under addition (standing in for a
// multiplicative group), and Pair(a, b) = a*b, which is exactly bilinear:
// Pair(x*a, y*b) = x*y*Pair(a,b). This is enough to exercise every
// algebraic property the Groth16 engine relies on without a real curve.
package testfield

import (
	"encoding/binary"
	"io"
	"math/big"

	"github.com/groth16-go/groth16/algebra"
)

// modulus is a small prime chosen only for test convenience; no
// cryptographic property is required of it.
var modulus = big.NewInt(2147483647) // 2^31 - 1 (Mersenne prime)

func reduce(v *big.Int) *big.Int {
	return new(big.Int).Mod(v, modulus)
}

// Elt is a scalar field element.
type Elt struct{ v *big.Int }

// New builds an Elt from an int64, reducing mod the test modulus.
func New(v int64) Elt {
	return Elt{v: reduce(big.NewInt(v))}
}

func (e Elt) Add(other algebra.Scalar) algebra.Scalar {
	return Elt{v: reduce(new(big.Int).Add(e.v, other.(Elt).v))}
}

func (e Elt) Sub(other algebra.Scalar) algebra.Scalar {
	return Elt{v: reduce(new(big.Int).Sub(e.v, other.(Elt).v))}
}

func (e Elt) Mul(other algebra.Scalar) algebra.Scalar {
	return Elt{v: reduce(new(big.Int).Mul(e.v, other.(Elt).v))}
}

func (e Elt) Neg() algebra.Scalar {
	return Elt{v: reduce(new(big.Int).Neg(e.v))}
}

func (e Elt) Inverse() algebra.Scalar {
	return Elt{v: reduce(new(big.Int).ModInverse(e.v, modulus))}
}

func (e Elt) IsZero() bool { return e.v.Sign() == 0 }

func (e Elt) Equal(other algebra.Scalar) bool {
	o, ok := other.(Elt)
	return ok && e.v.Cmp(o.v) == 0
}

func (e Elt) SetUint64(v uint64) algebra.Scalar {
	return Elt{v: reduce(new(big.Int).SetUint64(v))}
}

func (e Elt) Zero() algebra.Scalar { return Elt{v: big.NewInt(0)} }
func (e Elt) One() algebra.Scalar  { return Elt{v: big.NewInt(1)} }
func (e Elt) Bytes() []byte        { return e.v.Bytes() }

// Field exposes the algebra.ScalarField factory for Elt.
type Field struct{}

func (Field) Random(r io.Reader) (algebra.Scalar, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return nil, err
	}
	v := binary.BigEndian.Uint64(buf[:])
	return Elt{v: reduce(new(big.Int).SetUint64(v))}, nil
}

func (Field) Zero() algebra.Scalar { return Elt{v: big.NewInt(0)} }
func (Field) One() algebra.Scalar  { return Elt{v: big.NewInt(1)} }

// G1Elt is a toy algebra.G1 element: the additive group of the field, base
// point 1.
type G1Elt struct{ v *big.Int }

func NewG1(v int64) G1Elt { return G1Elt{v: reduce(big.NewInt(v))} }

func (g G1Elt) Add(other algebra.G1) algebra.G1 {
	return G1Elt{v: reduce(new(big.Int).Add(g.v, other.(G1Elt).v))}
}
func (g G1Elt) Neg() algebra.G1 { return G1Elt{v: reduce(new(big.Int).Neg(g.v))} }
func (g G1Elt) ScalarMul(s algebra.Scalar) algebra.G1 {
	return G1Elt{v: reduce(new(big.Int).Mul(g.v, s.(Elt).v))}
}
func (g G1Elt) Equal(other algebra.G1) bool {
	o, ok := other.(G1Elt)
	return ok && g.v.Cmp(o.v) == 0
}
func (g G1Elt) IsInfinity() bool { return g.v.Sign() == 0 }
func (g G1Elt) Bytes() []byte    { return g.v.Bytes() }

// G2Elt is a toy algebra.G2 element, same construction as G1Elt.
type G2Elt struct{ v *big.Int }

func NewG2(v int64) G2Elt { return G2Elt{v: reduce(big.NewInt(v))} }

func (g G2Elt) Add(other algebra.G2) algebra.G2 {
	return G2Elt{v: reduce(new(big.Int).Add(g.v, other.(G2Elt).v))}
}
func (g G2Elt) Neg() algebra.G2 { return G2Elt{v: reduce(new(big.Int).Neg(g.v))} }
func (g G2Elt) ScalarMul(s algebra.Scalar) algebra.G2 {
	return G2Elt{v: reduce(new(big.Int).Mul(g.v, s.(Elt).v))}
}
func (g G2Elt) Equal(other algebra.G2) bool {
	o, ok := other.(G2Elt)
	return ok && g.v.Cmp(o.v) == 0
}
func (g G2Elt) IsInfinity() bool { return g.v.Sign() == 0 }
func (g G2Elt) Bytes() []byte    { return g.v.Bytes() }

// GTElt is a toy algebra.GT element: the field under addition, standing in
// for a multiplicative target group.
type GTElt struct{ v *big.Int }

func (g GTElt) Mul(other algebra.GT) algebra.GT {
	return GTElt{v: reduce(new(big.Int).Add(g.v, other.(GTElt).v))}
}
func (g GTElt) Equal(other algebra.GT) bool {
	o, ok := other.(GTElt)
	return ok && g.v.Cmp(o.v) == 0
}

// PairingEngine implements algebra.Pairing: Pair(a,b) = a*b, which is
// bilinear by construction.
type PairingEngine struct{}

func (PairingEngine) G1Generator() algebra.G1 { return G1Elt{v: big.NewInt(1)} }
func (PairingEngine) G2Generator() algebra.G2 { return G2Elt{v: big.NewInt(1)} }

func (PairingEngine) Pair(a algebra.G1, b algebra.G2) (algebra.GT, error) {
	pa := a.(G1Elt)
	pb := b.(G2Elt)
	return GTElt{v: reduce(new(big.Int).Mul(pa.v, pb.v))}, nil
}

func (pe PairingEngine) MultiPair(a []algebra.G1, b []algebra.G2) (algebra.GT, error) {
	acc := GTElt{v: big.NewInt(0)}
	for i := range a {
		gt, err := pe.Pair(a[i], b[i])
		if err != nil {
			return nil, err
		}
		acc = acc.Mul(gt).(GTElt)
	}
	return acc, nil
}
