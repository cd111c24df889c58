package testing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-sif/halfsort"
	"github.com/go-sif/halfsort/datasource/file"
	"github.com/go-sif/halfsort/datasource/memory"
	"github.com/go-sif/halfsort/datasource/parser/lines"
	"github.com/go-sif/halfsort/pipeline"
)

// LocalRunLines runs raw text through a complete halfsort pipeline, using an in-memory
// DataSource and the plain text parser
func LocalRunLines(ctx context.Context, raw string, opts *pipeline.Options) (result *halfsort.Result, err error) {
	// handle panics
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = anErr
			} else {
				panic(r)
			}
		}
	}()
	source := memory.CreateDataSource("local", []byte(raw))
	return pipeline.Run(ctx, source, lines.CreateParser(&lines.ParserConf{}), opts)
}

// LocalRunFile writes raw text to a file named name within dir, then runs a complete
// halfsort pipeline over that file using the given parser
func LocalRunFile(ctx context.Context, dir string, name string, raw string, parser halfsort.LineParser, opts *pipeline.Options) (*halfsort.Result, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		return nil, fmt.Errorf("unable to write test source %s: %w", path, err)
	}
	return pipeline.Run(ctx, file.CreateDataSource(path), parser, opts)
}
