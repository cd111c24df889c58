// Package lines parses plain line-oriented text DataSources. Each raw line becomes one Line,
// unless it begins with the comment character.
package lines
