package util

import (
	"fmt"

	"github.com/go-sif/halfsort"
	"github.com/go-sif/halfsort/errors"
)

// SafeSortOperation wraps a SortOperation for one half such that panics are recovered
// and every failure is reported as a SorterError
func SafeSortOperation(half int, sortOp halfsort.SortOperation) (safeSortOp halfsort.SortOperation) {
	return func(part halfsort.SortablePartition) (err error) {
		defer func() {
			if r := recover(); r != nil {
				anErr, ok := r.(error)
				if !ok {
					anErr = fmt.Errorf("%v", r)
				}
				err = errors.SorterError{
					Half:        half,
					PartitionID: part.ID(),
					Err:         fmt.Errorf("Sort Panic: %w", anErr),
					Trace:       GetTrace(),
				}
			} else if err != nil {
				err = errors.SorterError{Half: half, PartitionID: part.ID(), Err: err}
			}
		}()
		err = sortOp(part)
		return
	}
}
