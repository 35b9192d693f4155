// Package hash provides the xxHash64 digests pairstat uses to fingerprint sample data.
package hash

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// canonicalNaN is the bit pattern every NaN is folded to before hashing.
const canonicalNaN = 0x7ff8000000000001

// PairDigest computes an xxHash64 over a sequence of float64 pairs.
//
// Values are written as little-endian IEEE 754 bits so the sum is stable
// across platforms. Negative zero is folded into positive zero and every NaN
// into a single pattern, so pairs that compare equal hash equally.
//
// A PairDigest is not safe for concurrent use.
type PairDigest struct {
	d   *xxhash.Digest
	buf [16]byte
}

// NewPairDigest returns an empty PairDigest.
func NewPairDigest() *PairDigest {
	return &PairDigest{d: xxhash.New()}
}

// WritePair appends one (x, y) pair to the digest.
func (p *PairDigest) WritePair(x, y float64) {
	binary.LittleEndian.PutUint64(p.buf[:8], canonicalBits(x))
	binary.LittleEndian.PutUint64(p.buf[8:], canonicalBits(y))
	_, _ = p.d.Write(p.buf[:])
}

// Sum64 returns the current digest value.
func (p *PairDigest) Sum64() uint64 {
	return p.d.Sum64()
}

// Reset clears the digest so it can be reused.
func (p *PairDigest) Reset() {
	p.d.Reset()
}

func canonicalBits(v float64) uint64 {
	switch {
	case v == 0:
		return 0
	case math.IsNaN(v):
		return canonicalNaN
	default:
		return math.Float64bits(v)
	}
}
