package shamir

import (
	"fmt"
	"math/big"
)

// polynomial is a degree-(len(coefficients)-1) polynomial over Z_mod,
// stored highest-degree coefficient first: coefficients[0] is a_{t-1},
// ..., coefficients[len-1] is a_0 (the secret).
type polynomial struct {
	mod          *big.Int
	coefficients []*big.Int
}

// newPolynomial validates that mod exceeds the coefficient count (spec
// §3: "q must exceed the number of coefficients") and that every
// coefficient lies in [0, mod).
func newPolynomial(mod *big.Int, coefficients []*big.Int) (*polynomial, error) {
	if mod.Cmp(big.NewInt(int64(len(coefficients)))) <= 0 {
		return nil, fmt.Errorf("prime modulus %s does not exceed coefficient count %d: %w", mod, len(coefficients), ErrDomain)
	}
	for _, c := range coefficients {
		if c.Sign() < 0 || c.Cmp(mod) >= 0 {
			return nil, fmt.Errorf("coefficient %s out of range [0, %s): %w", c, mod, ErrDomain)
		}
	}
	return &polynomial{mod: mod, coefficients: coefficients}, nil
}

// evaluate computes P(x) mod p.mod via Horner's rule. x == 0 is rejected:
// P(0) is the secret itself and must never be requested through this
// surface.
func (p *polynomial) evaluate(x *big.Int) (*big.Int, error) {
	if x.Sign() == 0 {
		return nil, fmt.Errorf("evaluating polynomial at x=0: %w", ErrDomain)
	}
	y := big.NewInt(0)
	for _, a := range p.coefficients {
		y = mulMod(y, x, p.mod)
		y = addMod(y, a, p.mod)
	}
	return y, nil
}

// point is one (x, y) sample used for Lagrange interpolation.
type point struct {
	x *big.Int
	y *big.Int
}

// lagrangeInterpolationAtZero reconstructs P(0) from the given points via
//
//	P(0) = sum_i y_i * prod_{j != i} (-x_j) * (x_i - x_j)^-1   (mod m)
//
// with every subtraction normalized into [0, m) before reduction. A
// duplicate x-coordinate among points drives some (x_i - x_j) to 0 and
// surfaces as ErrArithmetic from modInverse, per spec §4.5.
func lagrangeInterpolationAtZero(points []point, m *big.Int) (*big.Int, error) {
	zero := big.NewInt(0)
	result := big.NewInt(0)

	for i, pi := range points {
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)
		for j, pj := range points {
			if i == j {
				continue
			}
			numerator = mulMod(numerator, subMod(zero, pj.x, m), m)
			denominator = mulMod(denominator, subMod(pi.x, pj.x, m), m)
		}
		denomInv, err := modInverse(denominator, m)
		if err != nil {
			return nil, fmt.Errorf("interpolating with duplicate x-coordinates: %w", err)
		}
		term := mulMod(pi.y, numerator, m)
		term = mulMod(term, denomInv, m)
		result = addMod(result, term, m)
	}
	return result, nil
}
