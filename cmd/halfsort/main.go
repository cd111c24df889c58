package main

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/go-sif/halfsort"
	"github.com/go-sif/halfsort/datasource/file"
	"github.com/go-sif/halfsort/datasource/parser/jsonl"
	"github.com/go-sif/halfsort/datasource/parser/lines"
	"github.com/go-sif/halfsort/errors"
	"github.com/go-sif/halfsort/internal/config"
	"github.com/go-sif/halfsort/internal/partition"
	"github.com/go-sif/halfsort/logging"
	"github.com/go-sif/halfsort/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries state shared between the root command and the fatal handler in main
type app struct {
	logger *zap.Logger
	input  string
}

func main() {
	a := &app{}
	cmd := a.newRootCmd()
	if err := cmd.Execute(); err != nil {
		a.fatal(err)
	}
}

func (a *app) newRootCmd() *cobra.Command {
	var configPath string
	var verbose bool
	cfg := config.Default()

	cmd := &cobra.Command{
		Use:           "halfsort [path]",
		Short:         "Sort each half of a line-oriented file independently",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileCfg, err := config.Load(configPath)
				if err != nil {
					return err
				}
				mergeFlags(cmd, fileCfg, cfg)
				cfg = fileCfg
			}
			if len(args) == 1 {
				if cfg.Input != "" && cfg.Input != args[0] {
					return fmt.Errorf("input given both as argument %s and in config as %s", args[0], cfg.Input)
				}
				cfg.Input = args[0]
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.input = cfg.Input
			level := logging.ParseLevel(cfg.LogLevel)
			if a.logger == nil {
				logger, err := logging.CreateLogger(level)
				if err != nil {
					return err
				}
				a.logger = logger
			}
			defer func() { _ = a.logger.Sync() }()
			a.logger.Debug("Configured run",
				zap.String("input", cfg.Input),
				zap.String("format", cfg.Format),
				zap.String("output", cfg.Output),
				zap.Bool("compress", cfg.Compress),
				zap.String("logLevel", logging.LogLevelToString(level)))
			return a.run(cmd, cfg, verbose)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file; flags override its values")
	flags.StringVarP(&cfg.Output, "output", "o", cfg.Output, "write the result to this file instead of stdout")
	flags.BoolVar(&cfg.Compress, "compress", cfg.Compress, "lz4-compress the output file")
	flags.StringVar(&cfg.Format, "format", cfg.Format, "input format: text or jsonl")
	flags.StringVar(&cfg.Field, "field", cfg.Field, "gjson path of the value to sort, for jsonl input")
	flags.BoolVar(&cfg.IgnoreParseErrors, "ignore-parse-errors", cfg.IgnoreParseErrors, "skip malformed jsonl lines instead of aborting")
	flags.IntVar(&cfg.MaxLineBytes, "max-line-bytes", cfg.MaxLineBytes, "longest line accepted from the input")
	flags.BoolVarP(&verbose, "verbose", "v", false, "debug logging and run statistics")
	return cmd
}

// mergeFlags copies every explicitly set flag value from flagCfg onto fileCfg
func mergeFlags(cmd *cobra.Command, fileCfg *config.Config, flagCfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		fileCfg.Output = flagCfg.Output
	}
	if flags.Changed("compress") {
		fileCfg.Compress = flagCfg.Compress
	}
	if flags.Changed("format") {
		fileCfg.Format = flagCfg.Format
	}
	if flags.Changed("field") {
		fileCfg.Field = flagCfg.Field
	}
	if flags.Changed("ignore-parse-errors") {
		fileCfg.IgnoreParseErrors = flagCfg.IgnoreParseErrors
	}
	if flags.Changed("max-line-bytes") {
		fileCfg.MaxLineBytes = flagCfg.MaxLineBytes
	}
}

func (a *app) run(cmd *cobra.Command, cfg *config.Config, verbose bool) error {
	exec := pipeline.CreateExecutor(file.CreateDataSource(cfg.Input), createParser(cfg), &pipeline.Options{
		IgnoreParseErrors: cfg.IgnoreParseErrors,
		Logger:            a.logger,
	})
	result, err := exec.Run(cmd.Context())
	if err != nil {
		return err
	}
	if verbose {
		logStatistics(a.logger, exec.Stats())
	}
	return writeResult(cmd.OutOrStdout(), cfg, result)
}

func createParser(cfg *config.Config) halfsort.LineParser {
	if cfg.Format == config.FormatJSONL {
		return jsonl.CreateParser(&jsonl.ParserConf{
			Field:         cfg.Field,
			MaxBufferSize: cfg.MaxLineBytes,
		})
	}
	return lines.CreateParser(&lines.ParserConf{
		MaxBufferSize: cfg.MaxLineBytes,
	})
}

func writeResult(stdout io.Writer, cfg *config.Config, result *halfsort.Result) error {
	if cfg.Output == "" {
		return partition.CreatePlainSerializer().Serialize(stdout, result.Lines)
	}
	serializer := partition.CreatePlainSerializer()
	if cfg.Compress {
		serializer = partition.CreateLZ4Serializer()
	}
	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("unable to create output %s: %w", cfg.Output, err)
	}
	if err := serializer.Serialize(f, result.Lines); err != nil {
		f.Close()
		return fmt.Errorf("unable to write output %s: %w", cfg.Output, err)
	}
	return f.Close()
}

func logStatistics(logger *zap.Logger, s halfsort.RuntimeStatistics) {
	stageRuntimes := s.GetStageRuntimes()
	halfRuntimes := s.GetHalfSortRuntimes()
	halfLines := s.GetNumLinesSorted()
	logger.Info("Run statistics",
		zap.Time("start", s.GetStartTime()),
		zap.Duration("runtime", s.GetRuntime()),
		zap.Int64("lines", s.GetNumLinesLoaded()),
		zap.Durations("stages", stageRuntimes),
		zap.Int64s("halfLines", halfLines[:]),
		zap.Durations("halfRuntimes", halfRuntimes[:]))
}

// describeFatal names the kind of failure which ended a run, keeping a missing
// source distinct from one which could not be read
func describeFatal(path string, err error) (string, []zap.Field) {
	if errors.IsNotFound(err) {
		return "Source not found", []zap.Field{zap.String("path", path)}
	}
	var rerr errors.SourceReadError
	if stderrors.As(err, &rerr) {
		return "Source read failure", []zap.Field{zap.String("path", rerr.Path), zap.NamedError("cause", rerr.Err)}
	}
	return "Run failed", []zap.Field{zap.String("path", path), zap.Error(err)}
}

func (a *app) fatal(err error) {
	logger := a.logger
	if logger == nil {
		var lerr error
		if logger, lerr = logging.CreateLogger(logging.InfoLevel); lerr != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	msg, fields := describeFatal(a.input, err)
	logger.Fatal(msg, fields...)
}
