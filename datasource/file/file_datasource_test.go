package file

import (
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/go-sif/halfsort"
	"github.com/go-sif/halfsort/datasource/parser/jsonl"
	"github.com/go-sif/halfsort/datasource/parser/lines"
	"github.com/go-sif/halfsort/errors"
	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, name string, contents string) string {
	path := filepath.Join(t.TempDir(), name)
	require.Nil(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadFiltersComments(t *testing.T) {
	path := writeTestFile(t, "input.txt", "c\n#skip\na\nb\n#skip2\nd\n")
	source := CreateDataSource(path)
	require.Equal(t, path, source.ToString())
	loaded, err := source.Load(lines.CreateParser(&lines.ParserConf{}))
	require.Nil(t, err)
	require.Equal(t, halfsort.LineSequence{"c", "a", "b", "d"}, loaded)
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.txt")
	loaded, err := CreateDataSource(path).Load(lines.CreateParser(&lines.ParserConf{}))
	require.Nil(t, loaded)
	require.Equal(t, errors.SourceNotFoundError{Path: path}, err)
	require.True(t, errors.IsFatal(err))
}

func TestLoadDirectoryIsReadError(t *testing.T) {
	dir := t.TempDir()
	loaded, err := CreateDataSource(dir).Load(lines.CreateParser(&lines.ParserConf{}))
	require.Nil(t, loaded)
	require.NotNil(t, err)
	require.False(t, errors.IsNotFound(err))
	rerr, ok := err.(errors.SourceReadError)
	require.True(t, ok)
	require.Equal(t, dir, rerr.Path)
	require.NotNil(t, rerr.Err)
}

func TestLoadUnreadableFile(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("file permissions are not enforced for this user")
	}
	path := writeTestFile(t, "locked.txt", "a\n")
	require.Nil(t, os.Chmod(path, 0o000))
	_, err := CreateDataSource(path).Load(lines.CreateParser(&lines.ParserConf{}))
	rerr, ok := err.(errors.SourceReadError)
	require.True(t, ok)
	require.True(t, stderrors.Is(rerr.Err, fs.ErrPermission))
}

func TestLoadPassesRecoverableErrorsThrough(t *testing.T) {
	path := writeTestFile(t, "input.jsonl", "{\"k\": \"b\"}\n{oops\n{\"k\": \"a\"}\n")
	loaded, err := CreateDataSource(path).Load(jsonl.CreateParser(&jsonl.ParserConf{Field: "k"}))
	require.NotNil(t, err)
	require.False(t, errors.IsFatal(err))
	require.Equal(t, halfsort.LineSequence{"b", "a"}, loaded)
}

func TestLoadEscalatesScannerErrors(t *testing.T) {
	path := writeTestFile(t, "long.txt", "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa\n")
	_, err := CreateDataSource(path).Load(lines.CreateParser(&lines.ParserConf{MaxBufferSize: 4}))
	_, ok := err.(errors.SourceReadError)
	require.True(t, ok)
	require.True(t, errors.IsFatal(err))
}

// failingCloser is a source whose Close always fails
type failingCloser struct {
	io.Reader
}

func (fc failingCloser) Close() error {
	return fmt.Errorf("device went away")
}

func sourceWithFailingClose(path string, contents string) *DataSource {
	ds := CreateDataSource(path)
	ds.open = func(string) (io.ReadCloser, error) {
		return failingCloser{strings.NewReader(contents)}, nil
	}
	return ds
}

func TestLoadReportsCloseFailure(t *testing.T) {
	loaded, err := sourceWithFailingClose("flaky.txt", "b\na\n").Load(lines.CreateParser(&lines.ParserConf{}))
	require.Nil(t, loaded)
	rerr, ok := err.(errors.SourceReadError)
	require.True(t, ok)
	require.Equal(t, "flaky.txt", rerr.Path)
	require.Contains(t, rerr.Err.Error(), "close: device went away")
	require.True(t, errors.IsFatal(err))
}

func TestLoadCloseFailureEscalatesParseErrors(t *testing.T) {
	source := sourceWithFailingClose("flaky.jsonl", "{\"k\": \"a\"}\n{broken\n")
	loaded, err := source.Load(jsonl.CreateParser(&jsonl.ParserConf{Field: "k"}))
	require.Nil(t, loaded)
	require.True(t, errors.IsFatal(err))
	require.Contains(t, err.Error(), "close: device went away")
}

func TestLoadCloseFailureKeepsFatalReadError(t *testing.T) {
	source := sourceWithFailingClose("flaky.txt", strings.Repeat("x", 64)+"\n")
	loaded, err := source.Load(lines.CreateParser(&lines.ParserConf{MaxBufferSize: 8}))
	require.Nil(t, loaded)
	rerr, ok := err.(errors.SourceReadError)
	require.True(t, ok)
	require.NotContains(t, rerr.Err.Error(), "close")
}
