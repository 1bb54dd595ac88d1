package domain_test

import (
	"testing"

	"github.com/groth16-go/groth16/domain"
	"github.com/groth16-go/groth16/internal/testfield"
	"github.com/stretchr/testify/require"
)

func TestStandardDomainIsDistinctAndOrdered(t *testing.T) {
	d := domain.Standard(5, testfield.New(1))
	require.Equal(t, 5, d.Size())
	seen := map[string]bool{}
	for i := 0; i < d.Size(); i++ {
		b := string(d.Point(i).Bytes())
		require.False(t, seen[b], "domain points must be distinct")
		seen[b] = true
	}
	require.True(t, d.Point(0).Equal(testfield.New(1)))
	require.True(t, d.Point(4).Equal(testfield.New(5)))
}
