package halfsort

import "io"

// LineParser turns raw text into a LineSequence, discarding comment lines.
// Parsers may return a partial LineSequence alongside an error made up entirely
// of recoverable errors, leaving the caller to decide whether to proceed.
type LineParser interface {
	Parse(r io.Reader) (LineSequence, error)
}

// DataSource is a named source of lines. Load must distinguish a source which
// does not exist from one which exists but cannot be read.
type DataSource interface {
	ToString() string                             // for logging
	Load(parser LineParser) (LineSequence, error) // how to actually load data
}
