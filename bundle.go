package shamir

import (
	"fmt"
	"math/big"
)

// sentinelByte disambiguates secrets with leading zero bytes: prepended
// before the secret is turned into an integer, and stripped again on
// recovery, per spec §4.5.
const sentinelByte = 0x2a

// bundleState records whether a Bundle was built by SplitSecret or decoded
// from text, for diagnostic purposes only; it is not part of the serialized
// form and has no effect on behavior. RecoverSecret does not modify the
// bundle, so bundleConsumed is never stored.
type bundleState int

const (
	bundleBuilt bundleState = iota
	bundleDecoded
	bundleConsumed
)

// Share is one (x, P(x)) pair handed to a share holder.
type Share struct {
	X int
	Y []byte
}

// Bundle is the result of SplitSecret: the shares, the prime modulus they
// were computed under, and — when built with verifiable set — the Feldman
// parameters and commitments needed to check a share against the dealer's
// polynomial. A Bundle is immutable once returned; no exported method
// mutates it.
type Bundle struct {
	RequiredShares int
	PrimeMod       *big.Int
	Prime2         *big.Int // zero in non-verifiable bundles
	Generator      *big.Int // zero in non-verifiable bundles
	Shares         []Share
	Commits        [][]byte // nil in non-verifiable bundles

	state bundleState
}

// splitOptions collects the optional knobs SplitOption mutates.
type splitOptions struct {
	primeMod *big.Int
	random   RandomnessSource
}

// SplitOption customizes SplitSecret beyond its required arguments.
type SplitOption func(*splitOptions)

// WithPrimeMod supplies a caller-chosen prime modulus instead of letting
// SplitSecret select one from the catalog. Only meaningful for
// non-verifiable bundles — SelectPrimeFeldman always derives its own q.
func WithPrimeMod(q *big.Int) SplitOption {
	return func(o *splitOptions) { o.primeMod = q }
}

// WithRandomnessSource overrides the randomness source SplitSecret uses in
// place of DefaultRandomnessSource.
func WithRandomnessSource(r RandomnessSource) SplitOption {
	return func(o *splitOptions) { o.random = r }
}

// SplitSecret splits secret into n shares, t of which are required to
// reconstruct it. t must be at least 1 and no greater than n; violations
// fail with ErrDomain. When verifiable is true, the returned Bundle also
// carries Feldman commitments.
func SplitSecret(secret []byte, t, n int, verifiable bool, opts ...SplitOption) (*Bundle, error) {
	if t < 1 {
		return nil, fmt.Errorf("required shares %d must be at least 1: %w", t, ErrDomain)
	}
	if n < t {
		return nil, fmt.Errorf("distributed shares %d must be at least required shares %d: %w", n, t, ErrDomain)
	}

	var o splitOptions
	for _, opt := range opts {
		opt(&o)
	}

	framed := make([]byte, 0, len(secret)+1)
	framed = append(framed, sentinelByte)
	framed = append(framed, secret...)

	maxRepresentable := new(big.Int).Sub(
		new(big.Int).Lsh(big.NewInt(1), uint(8*len(framed))),
		big.NewInt(1),
	)

	var q, p, g *big.Int
	if verifiable {
		var err error
		q, p, g, err = SelectPrimeFeldman(maxRepresentable)
		if err != nil {
			return nil, err
		}
	} else {
		var err error
		if o.primeMod != nil {
			q = o.primeMod
		} else {
			q, err = SelectPrimeLargerThan(maxRepresentable)
			if err != nil {
				return nil, err
			}
		}
		p = big.NewInt(0)
		g = big.NewInt(0)
	}

	if q.Cmp(maxRepresentable) <= 0 {
		return nil, fmt.Errorf("prime modulus %s does not exceed max representable secret %s: %w", q, maxRepresentable, ErrDomain)
	}

	coeffBytes := requiredBytesGivenValue(new(big.Int).Sub(q, big.NewInt(1)))

	random := o.random
	if random == nil {
		random = DefaultRandomnessSource(len(framed))
	}
	defer random.Close()

	// coefficients is built highest-degree first: a_{t-1}, ..., a_1, a_0.
	coefficients := make([]*big.Int, t)
	for i := 0; i < t-1; i++ {
		raw, err := random.NextBytes(coeffBytes)
		if err != nil {
			return nil, err
		}
		coefficients[i] = new(big.Int).Mod(intFromBytes(raw), q)
	}
	coefficients[t-1] = intFromBytes(framed)

	poly, err := newPolynomial(q, coefficients)
	if err != nil {
		return nil, err
	}

	shares := make([]Share, n)
	for i := 1; i <= n; i++ {
		x := big.NewInt(int64(i))
		y, err := poly.evaluate(x)
		if err != nil {
			return nil, err
		}
		shares[i-1] = Share{X: i, Y: intToBytes(y)}
	}

	var commits [][]byte
	if verifiable {
		commits = make([][]byte, t)
		for i := 0; i < t; i++ {
			commits[i] = intToBytes(powMod(g, coefficients[i], p))
		}
	}

	return &Bundle{
		RequiredShares: t,
		PrimeMod:       q,
		Prime2:         p,
		Generator:      g,
		Shares:         shares,
		Commits:        commits,
		state:          bundleBuilt,
	}, nil
}

// RecoverSecret reconstructs the original secret from a Bundle's shares.
//
// If b.RequiredShares is set (non-zero) and fewer shares are present than
// that, RecoverSecret fails with ErrInsufficientShares; if more are
// present, it uses only the first RequiredShares of them. If
// b.RequiredShares is zero, RecoverSecret uses every supplied share and
// logs a warning through Logger — per spec §9, this is deliberately
// warn-and-proceed, not an error, and the secret recovered in that case is
// undefined if too few shares were actually supplied.
func RecoverSecret(b *Bundle) ([]byte, error) {
	if len(b.Shares) == 0 {
		return nil, fmt.Errorf("recovering secret: no shares supplied: %w", ErrDomain)
	}
	if b.PrimeMod == nil {
		return nil, fmt.Errorf("recovering secret: prime modulus missing: %w", ErrDomain)
	}

	shares := b.Shares
	if b.RequiredShares > 0 {
		if len(shares) < b.RequiredShares {
			return nil, fmt.Errorf("recovering secret with %d of %d required shares: %w", len(shares), b.RequiredShares, ErrInsufficientShares)
		}
		shares = shares[:b.RequiredShares]
	} else {
		Logger.Printf("required shares not specified; using all %d supplied shares without a threshold check", len(shares))
	}

	points := make([]point, len(shares))
	for i, s := range shares {
		points[i] = point{x: big.NewInt(int64(s.X)), y: intFromBytes(s.Y)}
	}

	v, err := lagrangeInterpolationAtZero(points, b.PrimeMod)
	if err != nil {
		return nil, err
	}

	framed := intToBytes(v)
	if len(framed) == 0 {
		return nil, fmt.Errorf("recovered value decoded to no bytes: %w", ErrDomain)
	}
	return framed[1:], nil
}

// FeldmanVerification checks that share y at position x is consistent with
// the dealer's polynomial, given the Feldman parameters p, g and the
// ordered commitments (highest coefficient degree first, as produced by
// SplitSecret). It fails with ErrDomain if commits is empty, and with
// ErrVerification if the equation does not hold.
func FeldmanVerification(p, g *big.Int, x int, y []byte, commits [][]byte) error {
	if len(commits) == 0 {
		return fmt.Errorf("verifying share: no commitments supplied: %w", ErrDomain)
	}

	s := intFromBytes(y)
	lhs := powMod(g, s, p)

	xBig := big.NewInt(int64(x))
	rhs := big.NewInt(1)
	xPow := big.NewInt(1) // x^j as a plain integer exponent, not reduced mod p
	t := len(commits)
	for j := 0; j < t; j++ {
		commitValue := intFromBytes(commits[t-1-j])
		rhs = mulMod(rhs, powMod(commitValue, xPow, p), p)
		xPow = new(big.Int).Mul(xPow, xBig)
	}

	if lhs.Cmp(rhs) != 0 {
		return fmt.Errorf("verifying share at x=%d: %w", x, ErrVerification)
	}
	return nil
}
