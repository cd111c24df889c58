package partition

import (
	"log"
	"sort"

	"github.com/go-sif/halfsort"
	uuid "github.com/gofrs/uuid"
)

// partitionImpl is halfsort's internal implementation of SortablePartition.
// A partitionImpl exclusively owns the lines it holds.
type partitionImpl struct {
	id   string
	rows halfsort.LineSequence
}

// createPartitionImpl creates a new Partition which takes ownership of rows
func createPartitionImpl(rows halfsort.LineSequence) *partitionImpl {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID for Partition: %v", err)
	}
	if rows == nil {
		rows = make(halfsort.LineSequence, 0)
	}
	return &partitionImpl{
		id:   id.String(),
		rows: rows,
	}
}

// CreatePartition creates a new Partition which takes ownership of rows
func CreatePartition(rows halfsort.LineSequence) halfsort.SortablePartition {
	return createPartitionImpl(rows)
}

// ID retrieves the ID of this Partition
func (p *partitionImpl) ID() string {
	return p.id
}

// GetNumRows retrieves the number of lines in this Partition
func (p *partitionImpl) GetNumRows() int {
	return len(p.rows)
}

// GetRow retrieves a specific line from this Partition
func (p *partitionImpl) GetRow(rowNum int) string {
	return p.rows[rowNum]
}

// Rows retrieves the lines of this Partition, in their current order
func (p *partitionImpl) Rows() halfsort.LineSequence {
	return p.rows
}

// Fingerprint returns an order-independent hash of the lines in this Partition
func (p *partitionImpl) Fingerprint() uint64 {
	return Fingerprint(p.rows)
}

// Len is part of sort.Interface
func (p *partitionImpl) Len() int {
	return len(p.rows)
}

// Less is part of sort.Interface. Go string comparison is byte-wise, which for
// UTF-8 text is the same as comparing code points.
func (p *partitionImpl) Less(i, j int) bool {
	return p.rows[i] < p.rows[j]
}

// Swap is part of sort.Interface
func (p *partitionImpl) Swap(i, j int) {
	p.rows[i], p.rows[j] = p.rows[j], p.rows[i]
}

// Sort orders the lines of this Partition ascending, in place
func (p *partitionImpl) Sort() {
	sort.Sort(p)
}

// IsSorted returns true iff every adjacent pair of lines is in ascending order
func (p *partitionImpl) IsSorted() bool {
	return sort.IsSorted(p)
}
