package halfsort

// A Partition is one contiguous half of a LineSequence. Each Partition
// is owned by exactly one worker at a time.
type Partition interface {
	ID() string               // ID retrieves the ID of this Partition
	GetNumRows() int          // GetNumRows retrieves the number of lines in this Partition
	GetRow(rowNum int) string // GetRow retrieves a specific line from this Partition
	Rows() LineSequence       // Rows retrieves the lines of this Partition, in their current order
	Fingerprint() uint64      // Fingerprint returns an order-independent hash of the lines in this Partition
}

// A SortablePartition can be sorted in place by the worker which owns it
type SortablePartition interface {
	Partition
	Sort()          // Sort orders the lines of this Partition ascending, byte-wise
	IsSorted() bool // IsSorted returns true iff every adjacent pair of lines is in ascending order
}
