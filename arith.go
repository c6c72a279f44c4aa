package shamir

import (
	"fmt"
	"math/big"
)

// millerRabinRounds is the number of Miller-Rabin rounds big.Int.ProbablyPrime
// runs for primes not already known-trusted via the catalog (see primes.go).
// 20 rounds bounds the false-positive probability at 4^-20, well past what
// cryptographic use requires.
const millerRabinRounds = 20

// normalizeMod reduces a into [0, m) with big.Int's Mod, which returns a
// non-negative remainder for negative dividends too; this wrapper exists
// so every call site in this
// package goes through one name and the invariant ("no negative values
// surface at an API boundary") has one enforcement point.
func normalizeMod(a, m *big.Int) *big.Int {
	r := new(big.Int).Mod(a, m)
	return r
}

// addMod returns (a + b) mod m.
func addMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Add(a, b)
	return normalizeMod(r, m)
}

// subMod returns (a - b) mod m, normalized into [0, m).
func subMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Sub(a, b)
	return normalizeMod(r, m)
}

// mulMod returns (a * b) mod m.
func mulMod(a, b, m *big.Int) *big.Int {
	r := new(big.Int).Mul(a, b)
	return normalizeMod(r, m)
}

// powMod returns base^exp mod m using big.Int's square-and-multiply Exp,
// which already handles exponents of arbitrary bit length.
func powMod(base, exp, m *big.Int) *big.Int {
	return new(big.Int).Exp(base, exp, m)
}

// gcd returns the greatest common divisor of a and b.
func gcd(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, a, b)
}

// modInverse returns the unique x in [0, m) with a*x == 1 (mod m). It fails
// with ErrArithmetic if gcd(a, m) != 1, mirroring the extended-Euclidean
// failure mode spec'd in §4.1.
func modInverse(a, m *big.Int) (*big.Int, error) {
	aNorm := normalizeMod(a, m)
	inv := new(big.Int).ModInverse(aNorm, m)
	if inv == nil {
		return nil, fmt.Errorf("modInverse(%s, %s): %w", a, m, ErrArithmetic)
	}
	return inv, nil
}

// isProbablePrime runs Miller-Rabin with millerRabinRounds rounds.
func isProbablePrime(n *big.Int) bool {
	return n.ProbablyPrime(millerRabinRounds)
}
