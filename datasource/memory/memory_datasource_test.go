package memory

import (
	"testing"

	"github.com/go-sif/halfsort"
	"github.com/go-sif/halfsort/datasource/parser/jsonl"
	"github.com/go-sif/halfsort/datasource/parser/lines"
	"github.com/go-sif/halfsort/errors"
	"github.com/stretchr/testify/require"
)

func TestMemoryDataSourceConcatenatesBuffers(t *testing.T) {
	source := CreateDataSource("test", []byte("e\n#x\na\n"), []byte("d\nb\nc"))
	require.Equal(t, "memory:test", source.ToString())
	loaded, err := source.Load(lines.CreateParser(&lines.ParserConf{}))
	require.Nil(t, err)
	require.Equal(t, halfsort.LineSequence{"e", "a", "d", "b", "c"}, loaded)
}

func TestMemoryDataSourceEmpty(t *testing.T) {
	loaded, err := CreateDataSource("empty").Load(lines.CreateParser(&lines.ParserConf{}))
	require.Nil(t, err)
	require.Len(t, loaded, 0)
}

func TestMemoryDataSourceAggregatesParseErrors(t *testing.T) {
	source := CreateDataSource("jsonl", []byte("{\"v\":\"x\"}\nbad\n"), []byte("worse\n{\"v\":\"y\"}"))
	loaded, err := source.Load(jsonl.CreateParser(&jsonl.ParserConf{Field: "v"}))
	require.NotNil(t, err)
	require.False(t, errors.IsFatal(err))
	require.Equal(t, halfsort.LineSequence{"x", "y"}, loaded)
}

func TestMemoryDataSourceEscalatesFatalErrors(t *testing.T) {
	source := CreateDataSource("long", []byte("0123456789\n"))
	_, err := source.Load(lines.CreateParser(&lines.ParserConf{MaxBufferSize: 2}))
	rerr, ok := err.(errors.SourceReadError)
	require.True(t, ok)
	require.Equal(t, "memory:long", rerr.Path)
}
