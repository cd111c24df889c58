package partition

import (
	"io"

	"github.com/go-sif/halfsort"
	"github.com/pierrec/lz4"
)

// LZ4Serializer is a Serializer which compresses lines with the lz4 frame format
type LZ4Serializer struct{}

// CreateLZ4Serializer instantiates a new LZ4Serializer
func CreateLZ4Serializer() Serializer {
	return &LZ4Serializer{}
}

// Serialize compresses lines to a write stream. The lz4 frame is closed, but w is not.
func (lz4s *LZ4Serializer) Serialize(w io.Writer, lines halfsort.LineSequence) error {
	compressor := lz4.NewWriter(w)
	if err := writeLines(compressor, lines); err != nil {
		return err
	}
	return compressor.Close()
}

// Deserialize decompresses lines from a read stream
func (lz4s *LZ4Serializer) Deserialize(r io.Reader) (halfsort.LineSequence, error) {
	return readLines(lz4.NewReader(r))
}
