package shamir

import (
	"fmt"
	"math/big"
	"sort"
)

// catalogPrime is one entry in the fixed prime catalog. trusted entries
// (every catalog member) skip re-running Miller-Rabin, mirroring spec
// §4.1's "the catalog primes ... may be accepted without retesting".
type catalogPrime struct {
	value   *big.Int
	trusted bool
}

// mersenneExponents lists the k for which 2^k - 1 is a (catalog-trusted)
// Mersenne prime.
var mersenneExponents = []int64{
	17, 19, 31, 61, 89, 107, 127, 521, 607, 1279, 2203, 2281, 3217, 4253,
	4423, 9689, 9941, 11213, 19937, 21701, 23209, 44497, 86243, 110503,
	132049, 216091,
}

// extraPrimeOffsets maps a power-of-two bit size k to the smallest offset d
// such that 2^k + d is prime, for the k's spec §4.4 enumerates.
var extraPrimeOffsets = map[int64]int64{
	128: 51, 192: 133, 256: 297, 320: 27, 384: 231, 448: 211, 512: 75,
	768: 183, 1024: 643, 1536: 75, 2048: 981, 3072: 813, 4096: 1761,
}

var extraPrimeBits = []int64{
	128, 192, 256, 320, 384, 448, 512, 768, 1024, 1536, 2048, 3072, 4096,
}

// primeCatalog is the fixed, sorted-ascending catalog consulted by
// SelectPrimeLargerThan. Built once in init() from the constants above,
// mirroring the teacher's own pflist/init() prime-table pattern.
var primeCatalog []catalogPrime

func init() {
	one := big.NewInt(1)
	two := big.NewInt(2)

	primeCatalog = make([]catalogPrime, 0, len(mersenneExponents)+len(extraPrimeBits))

	for _, k := range mersenneExponents {
		p := new(big.Int).Exp(two, big.NewInt(k), nil)
		p.Sub(p, one)
		primeCatalog = append(primeCatalog, catalogPrime{value: p, trusted: true})
	}

	for _, k := range extraPrimeBits {
		p := new(big.Int).Exp(two, big.NewInt(k), nil)
		p.Add(p, big.NewInt(extraPrimeOffsets[k]))
		primeCatalog = append(primeCatalog, catalogPrime{value: p, trusted: true})
	}

	sort.Slice(primeCatalog, func(i, j int) bool {
		return primeCatalog[i].value.Cmp(primeCatalog[j].value) < 0
	})
}

// SelectPrimeLargerThan returns the smallest catalog prime q > n, failing
// with ErrCatalogExhausted if n exceeds every catalog entry.
func SelectPrimeLargerThan(n *big.Int) (*big.Int, error) {
	for _, entry := range primeCatalog {
		if entry.value.Cmp(n) > 0 {
			return new(big.Int).Set(entry.value), nil
		}
	}
	return nil, fmt.Errorf("selecting prime larger than %s: %w", n, ErrCatalogExhausted)
}

// SelectPrimeFeldman returns (q, p, g) for Feldman VSS: q is the smallest
// catalog prime exceeding n; p = r*q+1 for the smallest r >= 1 making p
// prime; g has multiplicative order q in Z_p*, found by taking the
// smallest h >= 2 coprime to p and computing h^r mod p, skipping any h for
// which that comes out to 1.
func SelectPrimeFeldman(n *big.Int) (q, p, g *big.Int, err error) {
	q, err = SelectPrimeLargerThan(n)
	if err != nil {
		return nil, nil, nil, err
	}

	one := big.NewInt(1)
	r := big.NewInt(1)
	p = new(big.Int)
	for {
		p.Mul(r, q)
		p.Add(p, one)
		if isProbablePrime(p) {
			break
		}
		r.Add(r, one)
	}

	pMinus1 := new(big.Int).Sub(p, one)
	for h := big.NewInt(2); h.Cmp(pMinus1) < 0; h.Add(h, one) {
		if gcd(h, p).Cmp(one) != 0 {
			continue
		}
		candidate := powMod(h, r, p)
		if candidate.Cmp(one) != 0 {
			g = candidate
			break
		}
	}
	if g == nil {
		return nil, nil, nil, fmt.Errorf("selecting Feldman generator for q=%s: %w", q, ErrDomain)
	}

	return q, p, g, nil
}
