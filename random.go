package shamir

import (
	"bufio"
	CR "crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/blake2b"
)

// directSecretThreshold is the secret length (post 0x2A-prefix, in bytes)
// at or below which DefaultRandomnessSource picks directReader over
// bulkReader.
const directSecretThreshold = 65

// RandomnessSource is a scoped byte producer: construction acquires
// whatever OS handle it needs, NextBytes supplies cryptographically strong
// bytes of a requested length, and Close releases the handle on every exit
// path, success or failure.
type RandomnessSource interface {
	NextBytes(k int) ([]byte, error)
	Close() error
}

// directReader reads crypto/rand.Reader directly, one NextBytes call at a
// time. Preferred for short secrets where a buffering layer buys nothing.
type directReader struct{}

// newDirectReader constructs a directReader. There is no OS handle to
// acquire beyond the process-wide crypto/rand.Reader, so construction
// cannot fail.
func newDirectReader() *directReader {
	return &directReader{}
}

func (d *directReader) NextBytes(k int) ([]byte, error) {
	b := make([]byte, k)
	if _, err := io.ReadFull(CR.Reader, b); err != nil {
		return nil, fmt.Errorf("reading %d random bytes: %w", k, ErrEntropy)
	}
	return b, nil
}

func (d *directReader) Close() error { return nil }

// bulkReader wraps crypto/rand.Reader in a buffered reader so that a split
// over a very large secret, which calls NextBytes once per random
// coefficient for as many bytes as the prime modulus needs, amortizes the
// underlying syscall cost. Models the "streamed
// OS entropy" bulk variant called for in §4.3.
type bulkReader struct {
	buf *bufio.Reader
}

// newBulkReader constructs a bulkReader with a generously sized buffer.
func newBulkReader() *bulkReader {
	return &bulkReader{buf: bufio.NewReaderSize(CR.Reader, 4096)}
}

func (b *bulkReader) NextBytes(k int) ([]byte, error) {
	out := make([]byte, k)
	if _, err := io.ReadFull(b.buf, out); err != nil {
		return nil, fmt.Errorf("reading %d random bytes: %w", k, ErrEntropy)
	}
	return out, nil
}

func (b *bulkReader) Close() error { return nil }

// DefaultRandomnessSource returns the randomness source SplitSecret uses
// when the caller does not inject one: a directReader when the (prefixed)
// secret is short, a bulkReader otherwise.
func DefaultRandomnessSource(secretLen int) RandomnessSource {
	if secretLen <= directSecretThreshold {
		return newDirectReader()
	}
	return newBulkReader()
}

// seededReader is a deterministic, test-only RandomnessSource. It expands a
// fixed seed into a keystream by hashing seed||counter with BLAKE2b-256 and
// concatenating successive digests, giving reproducible randomness for the
// statistical property tests and the fixed end-to-end scenarios in §8,
// neither of which can be checked against a true CSPRNG.
type seededReader struct {
	seed       []byte
	counter    uint64
	carry      []byte // leftover keystream bytes from the last block
	fixedValue *int64 // when non-nil, NextBytes always encodes this integer
}

// newSeededReader constructs a seededReader from an arbitrary-length seed.
func newSeededReader(seed []byte) *seededReader {
	cp := make([]byte, len(seed))
	copy(cp, seed)
	return &seededReader{seed: cp}
}

// newConstantValueReader constructs a RandomnessSource whose NextBytes(k)
// always returns the big-endian encoding of value in k bytes (zero-padded
// on the left), regardless of k. Used by scenario S1, which requires every
// sampled coefficient to resolve to the fixed integer value 1 irrespective
// of how many bytes the prime modulus of the moment requires.
func newConstantValueReader(value int64) *seededReader {
	v := value
	return &seededReader{fixedValue: &v}
}

func (s *seededReader) NextBytes(k int) ([]byte, error) {
	if s.fixedValue != nil {
		out := make([]byte, k)
		v := *s.fixedValue
		for i := k - 1; i >= 0 && v != 0; i-- {
			out[i] = byte(v)
			v >>= 8
		}
		return out, nil
	}

	out := make([]byte, 0, k)
	out = append(out, s.carry...)
	s.carry = nil
	for len(out) < k {
		block := s.nextBlock()
		out = append(out, block[:]...)
	}
	s.carry = append(s.carry, out[k:]...)
	return out[:k], nil
}

func (s *seededReader) nextBlock() [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil)
	h.Write(s.seed)
	var ctr [8]byte
	for i := range ctr {
		ctr[i] = byte(s.counter >> (8 * i))
	}
	h.Write(ctr[:])
	s.counter++
	var out [blake2b.Size256]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (s *seededReader) Close() error { return nil }
