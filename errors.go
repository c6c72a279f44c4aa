package shamir

import "errors"

// Sentinel errors returned by this package. Callers should compare against
// these with errors.Is; call sites that add context wrap them with
// fmt.Errorf("...: %w", ErrX) rather than constructing new error values.
var (
	// ErrDomain reports an argument out of its valid range: t > n, a prime
	// modulus too small for the secret, x == 0 passed to the polynomial
	// evaluator, or an empty commitment list at verification time.
	ErrDomain = errors.New("shamir: value out of domain")

	// ErrArithmetic reports an undefined modular inverse (gcd(a, m) != 1)
	// or a non-integer operand reaching arithmetic that requires one. A
	// duplicate x-coordinate among shares surfaces as this error, from the
	// modular inverse taken during interpolation.
	ErrArithmetic = errors.New("shamir: arithmetic operation undefined")

	// ErrCodec reports malformed base64/hex input, or a malformed "x-y"
	// share string.
	ErrCodec = errors.New("shamir: malformed encoding")

	// ErrEntropy reports that a randomness source was exhausted or could
	// not be reached.
	ErrEntropy = errors.New("shamir: randomness source unavailable")

	// ErrVerification reports that the Feldman verification equation did
	// not hold for a given share and commitment set.
	ErrVerification = errors.New("shamir: feldman verification failed")

	// ErrInsufficientShares reports that fewer shares were supplied to
	// RecoverSecret than the bundle's RequiredShares.
	ErrInsufficientShares = errors.New("shamir: insufficient shares")

	// ErrCatalogExhausted reports that the requested secret size exceeds
	// every prime in the built-in catalog.
	ErrCatalogExhausted = errors.New("shamir: no catalog prime large enough")
)
