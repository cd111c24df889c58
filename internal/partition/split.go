package partition

import "github.com/go-sif/halfsort"

// SplitIndex returns the index at which a LineSequence of length n is split.
// The first half receives floor(n/2) lines and the second half the rest.
func SplitIndex(n int) int {
	return n / 2
}

// Split divides lines into two contiguous Partitions with no gap and no overlap.
// The caller gives up lines: each half is handed to the Partition which owns it,
// and the halves are capped so that growing one can never write into the other.
func Split(lines halfsort.LineSequence) (first halfsort.SortablePartition, second halfsort.SortablePartition) {
	mid := SplitIndex(len(lines))
	first = createPartitionImpl(lines[:mid:mid])
	second = createPartitionImpl(lines[mid:len(lines):len(lines)])
	return first, second
}
