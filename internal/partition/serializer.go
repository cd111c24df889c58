package partition

import (
	"bufio"
	"io"

	"github.com/go-sif/halfsort"
)

// Serializer writes a LineSequence to a stream and reads it back. Lines never
// contain a newline, so every Serializer frames lines with a trailing '\n'.
type Serializer interface {
	Serialize(w io.Writer, lines halfsort.LineSequence) error
	Deserialize(r io.Reader) (halfsort.LineSequence, error)
}

// PlainSerializer writes lines as uncompressed text
type PlainSerializer struct{}

// CreatePlainSerializer instantiates a new PlainSerializer
func CreatePlainSerializer() Serializer {
	return &PlainSerializer{}
}

// Serialize writes one line per '\n' to w
func (ps *PlainSerializer) Serialize(w io.Writer, lines halfsort.LineSequence) error {
	return writeLines(w, lines)
}

// Deserialize reads lines written by Serialize
func (ps *PlainSerializer) Deserialize(r io.Reader) (halfsort.LineSequence, error) {
	return readLines(r)
}

func writeLines(w io.Writer, lines halfsort.LineSequence) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func readLines(r io.Reader) (halfsort.LineSequence, error) {
	br := bufio.NewReader(r)
	lines := make(halfsort.LineSequence, 0)
	for {
		line, err := br.ReadString('\n')
		if err == io.EOF {
			if len(line) > 0 {
				lines = append(lines, line)
			}
			return lines, nil
		} else if err != nil {
			return nil, err
		}
		lines = append(lines, line[:len(line)-1])
	}
}
