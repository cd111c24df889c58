package memory

import (
	"bytes"
	"fmt"

	"github.com/go-sif/halfsort"
	"github.com/go-sif/halfsort/errors"
	"github.com/hashicorp/go-multierror"
)

// DataSource is a set of in-memory buffers containing lines which will be split and sorted.
// Each buffer is parsed independently and in order, so buffer boundaries are line boundaries.
type DataSource struct {
	name string
	data [][]byte
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(name string, data ...[]byte) *DataSource {
	return &DataSource{name: name, data: data}
}

// ToString returns a string representation of this DataSource
func (ms *DataSource) ToString() string {
	return fmt.Sprintf("memory:%s", ms.name)
}

// Load parses every buffer. An in-memory source always exists, so the only fatal
// failure is a SourceReadError from the parser.
func (ms *DataSource) Load(parser halfsort.LineParser) (halfsort.LineSequence, error) {
	var multierr *multierror.Error
	result := make(halfsort.LineSequence, 0)
	for _, buff := range ms.data {
		lines, err := parser.Parse(bytes.NewReader(buff))
		if err != nil {
			if errors.IsFatal(err) {
				return nil, errors.SourceReadError{Path: ms.ToString(), Err: err}
			}
			multierr = multierror.Append(multierr, err)
		}
		result = append(result, lines...)
	}
	return result, multierr.ErrorOrNil()
}
