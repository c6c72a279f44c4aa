package shamir

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/big"
)

// intFromBytes interprets b as a big-endian unsigned integer. An empty
// slice yields 0.
func intFromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// intToBytes renders n as the minimum-length big-endian unsigned byte
// string. big.Int.Bytes returns an empty slice for zero; this wrapper
// returns a single 0x00 byte instead so every encoded value round-trips
// through a non-empty byte string.
func intToBytes(n *big.Int) []byte {
	b := n.Bytes()
	if len(b) == 0 {
		return []byte{0x00}
	}
	return b
}

// requiredBytesGivenValue returns ceil(log_256(v+1)), i.e. the number of
// bytes required to represent v as an unsigned big-endian integer, with 0
// for v == 0.
func requiredBytesGivenValue(v *big.Int) int {
	if v.Sign() == 0 {
		return 0
	}
	return len(v.Bytes())
}

// encodeBase64 renders b using the standard (RFC 4648) alphabet with
// padding.
func encodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// decodeBase64 is the exact inverse of encodeBase64.
func decodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding base64 %q: %w", s, ErrCodec)
	}
	return b, nil
}

// encodeHex renders b as lowercase hex with no separators.
func encodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// decodeHex is the exact inverse of encodeHex.
func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding hex %q: %w", s, ErrCodec)
	}
	return b, nil
}
