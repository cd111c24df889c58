// Package jsonl parses JSON Lines DataSources. This parser uses https://github.com/tidwall/gjson to
// extract a single value from each line, addressed by a gjson path, and emits that value as a Line.
package jsonl
