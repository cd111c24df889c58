package partition

import (
	"bytes"
	"testing"

	"github.com/go-sif/halfsort"
	"github.com/stretchr/testify/require"
)

func TestCreatePartitionImpl(t *testing.T) {
	part := createPartitionImpl(halfsort.LineSequence{"b", "a"})
	require.NotEmpty(t, part.ID())
	require.Equal(t, 2, part.GetNumRows())
	require.Equal(t, "b", part.GetRow(0))
	require.False(t, part.IsSorted())

	other := createPartitionImpl(nil)
	require.NotEqual(t, part.ID(), other.ID())
	require.Equal(t, 0, other.GetNumRows())
	require.NotNil(t, other.Rows())
	require.True(t, other.IsSorted())
}

func TestSplitIndex(t *testing.T) {
	require.Equal(t, 0, SplitIndex(0))
	require.Equal(t, 0, SplitIndex(1))
	require.Equal(t, 1, SplitIndex(2))
	require.Equal(t, 2, SplitIndex(4))
	require.Equal(t, 2, SplitIndex(5))
}

func TestSplitEmpty(t *testing.T) {
	first, second := Split(halfsort.LineSequence{})
	require.Equal(t, 0, first.GetNumRows())
	require.Equal(t, 0, second.GetNumRows())

	first, second = Split(nil)
	require.Equal(t, 0, first.GetNumRows())
	require.Equal(t, 0, second.GetNumRows())
}

func TestSplitSingleLineGoesToSecondHalf(t *testing.T) {
	first, second := Split(halfsort.LineSequence{"only"})
	require.Equal(t, 0, first.GetNumRows())
	require.Equal(t, halfsort.LineSequence{"only"}, second.Rows())
}

func TestSplitEvenAndOdd(t *testing.T) {
	first, second := Split(halfsort.LineSequence{"c", "a", "b", "d"})
	require.Equal(t, halfsort.LineSequence{"c", "a"}, first.Rows())
	require.Equal(t, halfsort.LineSequence{"b", "d"}, second.Rows())

	first, second = Split(halfsort.LineSequence{"e", "a", "d", "b", "c"})
	require.Equal(t, halfsort.LineSequence{"e", "a"}, first.Rows())
	require.Equal(t, halfsort.LineSequence{"d", "b", "c"}, second.Rows())
}

func TestSplitHalvesDoNotAlias(t *testing.T) {
	first, second := Split(halfsort.LineSequence{"x", "y", "z", "w"})
	grown := append(first.Rows(), "appended")
	require.Equal(t, "appended", grown[2])
	require.Equal(t, halfsort.LineSequence{"z", "w"}, second.Rows())
}

func TestSort(t *testing.T) {
	part := CreatePartition(halfsort.LineSequence{"d", "b", "c", "b", "a"})
	part.Sort()
	require.True(t, part.IsSorted())
	require.Equal(t, halfsort.LineSequence{"a", "b", "b", "c", "d"}, part.Rows())
}

func TestSortIsByteWise(t *testing.T) {
	part := CreatePartition(halfsort.LineSequence{"b", "B", "é", "e", "", "a"})
	part.Sort()
	require.Equal(t, halfsort.LineSequence{"", "B", "a", "b", "e", "é"}, part.Rows())
}

func TestSortIdempotent(t *testing.T) {
	part := CreatePartition(halfsort.LineSequence{"q", "a", "m", "a"})
	part.Sort()
	once := append(halfsort.LineSequence(nil), part.Rows()...)
	part.Sort()
	require.Equal(t, once, part.Rows())
}

func TestFingerprint(t *testing.T) {
	lines := halfsort.LineSequence{"c", "a", "b", "d", "a"}
	whole := Fingerprint(lines)
	first, second := Split(append(halfsort.LineSequence(nil), lines...))
	require.Equal(t, whole, first.Fingerprint()+second.Fingerprint())

	first.Sort()
	second.Sort()
	require.Equal(t, whole, first.Fingerprint()+second.Fingerprint())

	// duplicates count
	require.NotEqual(t, Fingerprint(halfsort.LineSequence{"a"}), Fingerprint(halfsort.LineSequence{"a", "a"}))
	require.Equal(t, uint64(0), Fingerprint(nil))
}

func TestSerializers(t *testing.T) {
	lines := halfsort.LineSequence{"a", "", "c ", "é", "b"}
	for name, s := range map[string]Serializer{
		"plain": CreatePlainSerializer(),
		"lz4":   CreateLZ4Serializer(),
	} {
		t.Run(name, func(t *testing.T) {
			var buff bytes.Buffer
			require.Nil(t, s.Serialize(&buff, lines))
			read, err := s.Deserialize(&buff)
			require.Nil(t, err)
			require.Equal(t, lines, read)
		})
	}
}

func TestPlainSerializerFormat(t *testing.T) {
	var buff bytes.Buffer
	require.Nil(t, CreatePlainSerializer().Serialize(&buff, halfsort.LineSequence{"a", "c", "b"}))
	require.Equal(t, "a\nc\nb\n", buff.String())
}

func TestLZ4SerializerCompresses(t *testing.T) {
	lines := make(halfsort.LineSequence, 1000)
	for i := range lines {
		lines[i] = "the same line, over and over again"
	}
	var plain, compressed bytes.Buffer
	require.Nil(t, CreatePlainSerializer().Serialize(&plain, lines))
	require.Nil(t, CreateLZ4Serializer().Serialize(&compressed, lines))
	require.Less(t, compressed.Len(), plain.Len())
}

func TestDeserializeEmpty(t *testing.T) {
	read, err := CreatePlainSerializer().Deserialize(bytes.NewReader(nil))
	require.Nil(t, err)
	require.Len(t, read, 0)
}
