// Package halfsort contains the core types of halfsort, a small pipeline which loads lines
// of text, splits them into two halves, sorts each half on its own worker and concatenates
// the results. This root package defines the types shared by data sources, parsers and the
// pipeline itself, and is an overview of the library's key concepts.
//
// The Result of a run is sorted within each half only. The last line of the first half may
// compare greater than the first line of the second half.
package halfsort
