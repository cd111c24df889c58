package halfsort

import "unicode/utf8"

// CommentPrefix marks a raw input line which is discarded during loading
const CommentPrefix = '#'

// LineSequence is an ordered sequence of lines. Lines are UTF-8 text without an embedded newline.
type LineSequence []string

// IsComment returns true iff the first character of a raw line is the given comment marker
func IsComment(line string, comment rune) bool {
	if comment == 0 || len(line) == 0 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	return r == comment
}

// Result is the concatenation of the sorted first half followed by the sorted second half.
// Lines[:Boundary] and Lines[Boundary:] are each in ascending order; Lines as a whole is not.
type Result struct {
	Lines    LineSequence
	Boundary int
}

// Len returns the total number of lines in this Result
func (r *Result) Len() int {
	return len(r.Lines)
}

// First returns the sorted first half of this Result
func (r *Result) First() LineSequence {
	return r.Lines[:r.Boundary]
}

// Second returns the sorted second half of this Result
func (r *Result) Second() LineSequence {
	return r.Lines[r.Boundary:]
}
