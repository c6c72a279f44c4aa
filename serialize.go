package shamir

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// RawOrEncoded models a decoder field that may already be present as a
// parsed integer or may still be an encoded byte string, matching the
// dynamic-typing codec boundary described in spec §9. Decoders normalize
// this into a *big.Int before constructing a Bundle.
type RawOrEncoded struct {
	Int   *big.Int
	Bytes []byte
}

func (r RawOrEncoded) resolve() *big.Int {
	if r.Int != nil {
		return r.Int
	}
	return intFromBytes(r.Bytes)
}

// TextBundle is the string-serialized projection of a Bundle produced by
// ToBase64/ToHex and consumed by FromBase64/FromHex.
type TextBundle struct {
	RequiredShares int
	PrimeMod       string
	Prime2         string // the encoding of zero in non-verifiable bundles, and always empty from ToHex
	Generator      string // the encoding of zero in non-verifiable bundles, and always empty from ToHex
	Shares         []string
	Commits        []string
}

// ToBase64 encodes b using the standard RFC 4648 alphabet with padding.
func ToBase64(b *Bundle) (*TextBundle, error) {
	return encodeTextBundle(b, encodeBase64, true)
}

// FromBase64 is the exact inverse of ToBase64.
func FromBase64(t *TextBundle) (*Bundle, error) {
	return decodeTextBundle(t, decodeBase64)
}

// ToHex encodes b as lowercase hex with no separators. By design (spec
// §4.7/§9) it omits Prime2 and Generator even for verifiable bundles.
func ToHex(b *Bundle) (*TextBundle, error) {
	return encodeTextBundle(b, encodeHex, false)
}

// FromHex is the exact inverse of ToHex for the fields it preserves; a
// verifiable bundle round-tripped through hex comes back with Prime2 and
// Generator zero-valued, since ToHex never wrote them.
func FromHex(t *TextBundle) (*Bundle, error) {
	return decodeTextBundle(t, decodeHex)
}

func encodeTextBundle(b *Bundle, enc func([]byte) string, includeFeldmanParams bool) (*TextBundle, error) {
	shares := make([]string, len(b.Shares))
	for i, s := range b.Shares {
		shares[i] = fmt.Sprintf("%d-%s", s.X, enc(s.Y))
	}

	commits := make([]string, len(b.Commits))
	for i, c := range b.Commits {
		commits[i] = enc(c)
	}

	t := &TextBundle{
		RequiredShares: b.RequiredShares,
		PrimeMod:       enc(intToBytes(b.PrimeMod)),
		Shares:         shares,
		Commits:        commits,
	}
	if includeFeldmanParams {
		if b.Prime2 != nil {
			t.Prime2 = enc(intToBytes(b.Prime2))
		}
		if b.Generator != nil {
			t.Generator = enc(intToBytes(b.Generator))
		}
	}
	return t, nil
}

func decodeTextBundle(t *TextBundle, dec func(string) ([]byte, error)) (*Bundle, error) {
	primeModBytes, err := dec(t.PrimeMod)
	if err != nil {
		return nil, fmt.Errorf("decoding prime_mod: %w", err)
	}

	var prime2, generator *big.Int
	if t.Prime2 != "" {
		b, err := dec(t.Prime2)
		if err != nil {
			return nil, fmt.Errorf("decoding prime2: %w", err)
		}
		prime2 = intFromBytes(b)
	} else {
		prime2 = big.NewInt(0)
	}
	if t.Generator != "" {
		b, err := dec(t.Generator)
		if err != nil {
			return nil, fmt.Errorf("decoding generator: %w", err)
		}
		generator = intFromBytes(b)
	} else {
		generator = big.NewInt(0)
	}

	shares := make([]Share, len(t.Shares))
	for i, s := range t.Shares {
		x, y, err := decodeShareString(s, dec)
		if err != nil {
			return nil, err
		}
		shares[i] = Share{X: x, Y: y}
	}

	commits := make([][]byte, len(t.Commits))
	for i, c := range t.Commits {
		b, err := dec(c)
		if err != nil {
			return nil, fmt.Errorf("decoding commit %d: %w", i, err)
		}
		commits[i] = b
	}
	if len(commits) == 0 {
		commits = nil
	}

	return &Bundle{
		RequiredShares: t.RequiredShares,
		PrimeMod:       intFromBytes(primeModBytes),
		Prime2:         prime2,
		Generator:      generator,
		Shares:         shares,
		Commits:        commits,
		state:          bundleDecoded,
	}, nil
}

// decodeShareString splits an "x-enc(y)" share string and decodes both
// halves.
func decodeShareString(s string, dec func(string) ([]byte, error)) (int, []byte, error) {
	parts := strings.SplitN(s, "-", 2)
	if len(parts) != 2 {
		return 0, nil, fmt.Errorf("malformed share string %q: %w", s, ErrCodec)
	}
	x, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, nil, fmt.Errorf("malformed share x-coordinate %q: %w", parts[0], ErrCodec)
	}
	y, err := dec(parts[1])
	if err != nil {
		return 0, nil, fmt.Errorf("decoding share %d's y value: %w", x, err)
	}
	return x, y, nil
}

// BundleFromFields constructs a Bundle from fields that may arrive either
// as already-parsed integers or as still-encoded byte strings — the
// dynamic-typing codec boundary spec §9 calls out, for callers decoding a
// generic (e.g. JSON-like) structure where a prior decode pass may already
// have turned some fields into integers. It is the typed equivalent of the
// source system's "accept bytes-like or int" decoder behavior, and is
// idempotent: calling it again on a Bundle's own fields (wrapped as
// RawOrEncoded{Int: ...}) returns an equal Bundle.
func BundleFromFields(required int, primeMod, prime2, generator RawOrEncoded, shares []Share, commits [][]byte) *Bundle {
	p2 := prime2.resolve()
	if p2 == nil {
		p2 = big.NewInt(0)
	}
	gen := generator.resolve()
	if gen == nil {
		gen = big.NewInt(0)
	}
	return &Bundle{
		RequiredShares: required,
		PrimeMod:       primeMod.resolve(),
		Prime2:         p2,
		Generator:      gen,
		Shares:         shares,
		Commits:        commits,
		state:          bundleDecoded,
	}
}
