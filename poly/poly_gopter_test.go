package poly_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/groth16-go/groth16/poly"
)

// smallPoly builds a Polynomial from a slice of small int64 coefficients
// drawn by gopter, via the same toy field used by the rest of the package's
// tests.
func smallPoly(cs []int64) poly.Polynomial {
	out := make([]int64, len(cs))
	copy(out, cs)
	return p(out...)
}

func TestPolyRingLawsProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.MinSize = 1
	parameters.MaxSize = 6

	properties := gopter.NewProperties(parameters)

	coeffGen := gen.SliceOf(gen.Int64Range(-1000, 1000))

	properties.Property("addition is commutative", prop.ForAll(
		func(as, bs []int64) bool {
			a, b := smallPoly(as), smallPoly(bs)
			return poly.Add(a, b).Equal(poly.Add(b, a))
		},
		coeffGen, coeffGen,
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(as, bs []int64) bool {
			a, b := smallPoly(as), smallPoly(bs)
			return poly.Mul(a, b).Equal(poly.Mul(b, a))
		},
		coeffGen, coeffGen,
	))

	properties.Property("multiplication is associative", prop.ForAll(
		func(as, bs, cs []int64) bool {
			a, b, c := smallPoly(as), smallPoly(bs), smallPoly(cs)
			lhs := poly.Mul(poly.Mul(a, b), c)
			rhs := poly.Mul(a, poly.Mul(b, c))
			return lhs.Equal(rhs)
		},
		coeffGen, coeffGen, coeffGen,
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(as, bs, cs []int64) bool {
			a, b, c := smallPoly(as), smallPoly(bs), smallPoly(cs)
			lhs := poly.Mul(a, poly.Add(b, c))
			rhs := poly.Add(poly.Mul(a, b), poly.Mul(a, c))
			return lhs.Equal(rhs)
		},
		coeffGen, coeffGen, coeffGen,
	))

	properties.Property("division reconstructs the dividend", prop.ForAll(
		func(as, bs []int64) bool {
			a, b := smallPoly(as), smallPoly(bs)
			if b.IsZero() {
				return true
			}
			q, r, err := poly.Div(a, b)
			if err != nil {
				return false
			}
			return poly.Add(poly.Mul(q, b), r).Equal(a)
		},
		coeffGen, coeffGen,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
