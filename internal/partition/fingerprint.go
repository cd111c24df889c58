package partition

import (
	xxhash "github.com/cespare/xxhash/v2"
	"github.com/go-sif/halfsort"
)

// Fingerprint hashes every line with xxhash and sums the results, producing a hash of
// the multiset of lines which is independent of their order. Sorting a LineSequence
// never changes its Fingerprint, and the Fingerprints of two halves add up to the
// Fingerprint of the whole.
func Fingerprint(lines halfsort.LineSequence) uint64 {
	var sum uint64
	for _, line := range lines {
		sum += xxhash.Sum64String(line)
	}
	return sum
}
