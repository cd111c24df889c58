package file

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/go-sif/halfsort"
	"github.com/go-sif/halfsort/errors"
)

// DataSource is a file containing lines which will be split and sorted
type DataSource struct {
	path string
	open func(path string) (io.ReadCloser, error)
}

// CreateDataSource is a factory for DataSources
func CreateDataSource(path string) *DataSource {
	return &DataSource{path: path, open: openFile}
}

func openFile(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

// ToString returns a string representation of this DataSource
func (ds *DataSource) ToString() string {
	return ds.path
}

// Load reads every line from the file. A missing file produces a SourceNotFoundError,
// and any other failure to open, read or close it produces a SourceReadError. Recoverable
// parse errors are passed through alongside the lines which did parse.
func (ds *DataSource) Load(parser halfsort.LineParser) (lines halfsort.LineSequence, err error) {
	f, err := ds.open(ds.path)
	if err != nil {
		return nil, classifyOpenError(ds.path, err)
	}
	defer func() {
		// a fatal error already being returned takes precedence
		if cerr := f.Close(); cerr != nil && !errors.IsFatal(err) {
			lines, err = nil, errors.SourceReadError{Path: ds.path, Err: fmt.Errorf("close: %w", cerr)}
		}
	}()
	lines, err = parser.Parse(f)
	if err != nil {
		if errors.IsFatal(err) {
			return nil, errors.SourceReadError{Path: ds.path, Err: err}
		}
		return lines, err
	}
	return lines, nil
}

func classifyOpenError(path string, err error) error {
	if stderrors.Is(err, fs.ErrNotExist) {
		return errors.SourceNotFoundError{Path: path}
	}
	var perr *fs.PathError
	if stderrors.As(err, &perr) {
		// the path is already part of the SourceReadError
		err = fmt.Errorf("%s: %w", perr.Op, perr.Err)
	}
	return errors.SourceReadError{Path: path, Err: err}
}
