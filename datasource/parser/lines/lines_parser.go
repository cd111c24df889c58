package lines

import (
	"bufio"
	"io"

	"github.com/go-sif/halfsort"
)

// ParserConf configures a plain text Parser
type ParserConf struct {
	HeaderLines   int  // The number of lines to ignore from the beginning of each source. Defaults to 0.
	Comment       rune // Lines beginning with the comment character are ignored. Defaults to '#'.
	MaxBufferSize int  // Maximum size in bytes of a single line. Defaults to bufio.MaxScanTokenSize.
}

// Parser produces LineSequences from plain text
type Parser struct {
	conf *ParserConf
}

// CreateParser returns a new plain text Parser
func CreateParser(conf *ParserConf) *Parser {
	if conf.Comment == 0 {
		conf.Comment = halfsort.CommentPrefix
	}
	if conf.MaxBufferSize == 0 {
		conf.MaxBufferSize = bufio.MaxScanTokenSize
	}
	return &Parser{conf: conf}
}

// Parse reads every line from r, discarding header and comment lines
func (p *Parser) Parse(r io.Reader) (halfsort.LineSequence, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, initialBufferSize(p.conf.MaxBufferSize)), p.conf.MaxBufferSize)
	lines := make(halfsort.LineSequence, 0)
	for lineNum := 0; scanner.Scan(); lineNum++ {
		if lineNum < p.conf.HeaderLines {
			continue
		}
		line := scanner.Text()
		if halfsort.IsComment(line, p.conf.Comment) {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// initialBufferSize caps the scanner's starting buffer, since bufio.Scanner
// treats the larger of the buffer's capacity and its max as the real limit
func initialBufferSize(max int) int {
	if max < 4096 {
		return max
	}
	return 4096
}
