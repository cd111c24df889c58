package errors

import (
	stderrors "errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// A TieredError knows whether it should abort a halfsort run. Fatal errors
// abort the run with no partial output; the rest may be skipped or retried
// at the caller's discretion.
type TieredError interface {
	error
	Fatal() bool
}

// SourceNotFoundError occurs when a DataSource names a path which does not exist
type SourceNotFoundError struct{ Path string }

// Error returns a textual representation of this SourceNotFoundError
func (e SourceNotFoundError) Error() string {
	return fmt.Sprintf("Source %s not found", e.Path)
}

// Fatal returns true, since a missing source aborts a run
func (e SourceNotFoundError) Fatal() bool {
	return true
}

// SourceReadError occurs when a DataSource exists but could not be opened or read
type SourceReadError struct {
	Path string
	Err  error
}

// Error returns a textual representation of this SourceReadError
func (e SourceReadError) Error() string {
	return fmt.Sprintf("Unable to read source %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause of this SourceReadError
func (e SourceReadError) Unwrap() error {
	return e.Err
}

// Fatal returns true, since an unreadable source aborts a run
func (e SourceReadError) Fatal() bool {
	return true
}

// SorterError occurs when a worker fails to sort its half
type SorterError struct {
	Half        int
	PartitionID string
	Err         error
	Trace       string
}

// Error returns a textual representation of this SorterError
func (e SorterError) Error() string {
	return fmt.Sprintf("Sorter for half %d (partition %s) failed: %v", e.Half, e.PartitionID, e.Err)
}

// Unwrap returns the underlying cause of this SorterError
func (e SorterError) Unwrap() error {
	return e.Err
}

// Fatal returns true, since there is no partial-result policy for sorting
func (e SorterError) Fatal() bool {
	return true
}

// ConservationError occurs when the combined Result does not hold exactly the lines which were loaded
type ConservationError struct {
	ExpectedLines       int
	ActualLines         int
	ExpectedFingerprint uint64
	ActualFingerprint   uint64
}

// Error returns a textual representation of this ConservationError
func (e ConservationError) Error() string {
	return fmt.Sprintf("Combined result has %d lines (fingerprint %x), expected %d lines (fingerprint %x)",
		e.ActualLines, e.ActualFingerprint, e.ExpectedLines, e.ExpectedFingerprint)
}

// Fatal returns true, since a result which lost or duplicated lines must not be returned
func (e ConservationError) Fatal() bool {
	return true
}

// ParseError occurs when a single raw line cannot be parsed. It is recoverable:
// the line can be skipped without invalidating the rest of the source.
type ParseError struct {
	Line int // 1-based line number within the source
	Err  error
}

// Error returns a textual representation of this ParseError
func (e ParseError) Error() string {
	return fmt.Sprintf("Unable to parse line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying cause of this ParseError
func (e ParseError) Unwrap() error {
	return e.Err
}

// Fatal returns false, since a malformed line can be skipped
func (e ParseError) Fatal() bool {
	return false
}

// IsFatal returns true iff err should abort a run. The outermost TieredError
// decides; a multierror is fatal iff any of its members is. Errors which carry
// no tier at all are treated as fatal.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	if terr, ok := err.(TieredError); ok {
		return terr.Fatal()
	}
	if merr, ok := err.(*multierror.Error); ok {
		for _, e := range merr.Errors {
			if IsFatal(e) {
				return true
			}
		}
		return false
	}
	if inner := stderrors.Unwrap(err); inner != nil {
		return IsFatal(inner)
	}
	return true
}

// IsNotFound returns true iff err is, or wraps, a SourceNotFoundError
func IsNotFound(err error) bool {
	var nerr SourceNotFoundError
	return stderrors.As(err, &nerr)
}
