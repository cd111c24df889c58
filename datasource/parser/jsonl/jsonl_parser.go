package jsonl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/go-sif/halfsort"
	"github.com/go-sif/halfsort/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/tidwall/gjson"
)

// ParserConf configures a JSONL Parser, suitable for JSON lines data
type ParserConf struct {
	Field         string // A gjson path selecting the value to emit from each line. Defaults to the whole line.
	Comment       rune   // Lines beginning with the comment character are ignored. Defaults to '#'.
	MaxBufferSize int    // Maximum size in bytes of the buffer used to read lines from the source
}

// Parser produces LineSequences from JSONL data
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new JSONL Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Comment == 0 {
		conf.Comment = halfsort.CommentPrefix
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse parses JSONL data, emitting one Line per valid JSON row. Rows which cannot be
// parsed are reported as a multierror of recoverable ParseErrors, returned alongside
// every Line which could be parsed.
func (p *Parser) Parse(r io.Reader) (halfsort.LineSequence, error) {
	var multierr *multierror.Error
	scanner := bufio.NewScanner(r)
	bufSize := 4096
	if p.conf.MaxBufferSize < bufSize {
		bufSize = p.conf.MaxBufferSize
	}
	scanner.Buffer(make([]byte, 0, bufSize), p.conf.MaxBufferSize)
	lines := make(halfsort.LineSequence, 0)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		rowString := scanner.Text()
		if halfsort.IsComment(rowString, p.conf.Comment) {
			continue
		}
		val, err := p.parseRow(rowString)
		if err != nil {
			multierr = multierror.Append(multierr, errors.ParseError{Line: lineNum, Err: err})
			continue
		}
		lines = append(lines, val)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, multierr.ErrorOrNil()
}

func (p *Parser) parseRow(rowString string) (string, error) {
	if !gjson.Valid(rowString) {
		return "", fmt.Errorf("invalid JSON")
	}
	if p.conf.Field == "" {
		return rowString, nil
	}
	res := gjson.Get(rowString, p.conf.Field)
	if !res.Exists() {
		return "", fmt.Errorf("field %s is not present", p.conf.Field)
	}
	val := res.String()
	if strings.ContainsAny(val, "\r\n") {
		return "", fmt.Errorf("field %s contains a line break", p.conf.Field)
	}
	return val, nil
}
