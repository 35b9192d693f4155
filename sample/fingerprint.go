package sample

import "github.com/arloliu/pairstat/internal/hash"

// Fingerprint returns the xxHash64 of pairs in order.
//
// The fingerprint is order-sensitive: reordering the collection changes it
// even though correlation and regression results do not change.
func Fingerprint(pairs []Pair) uint64 {
	d := hash.NewPairDigest()
	for _, p := range pairs {
		d.WritePair(p.X, p.Y)
	}

	return d.Sum64()
}
