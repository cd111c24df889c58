package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-sif/halfsort"
	"github.com/go-sif/halfsort/errors"
	"github.com/go-sif/halfsort/internal/partition"
	"github.com/go-sif/halfsort/internal/stats"
	"github.com/go-sif/halfsort/internal/util"
	uuid "github.com/gofrs/uuid"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configures an Executor
type Options struct {
	IgnoreParseErrors bool        // If the parser reports only recoverable errors, keep the lines which did parse. Defaults to false, which aborts the run.
	Logger            *zap.Logger // Destination for run logs. Defaults to a no-op logger.
}

// Executor runs a single halfsort job. An Executor runs at most once and is not safe
// for concurrent use; only the two sorters it spawns run in parallel.
type Executor struct {
	id     string
	source halfsort.DataSource
	parser halfsort.LineParser
	opts   *Options
	logger *zap.Logger
	state  State
	stats  *stats.RunStatistics
	sortOp halfsort.SortOperation
}

// CreateExecutor is a factory for Executors
func CreateExecutor(source halfsort.DataSource, parser halfsort.LineParser, opts *Options) *Executor {
	id, err := uuid.NewV4()
	if err != nil {
		log.Fatalf("failed to generate UUID: %v", err)
	}
	if opts == nil {
		opts = &Options{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{
		id:     id.String(),
		source: source,
		parser: parser,
		opts:   opts,
		logger: logger.With(zap.String("run", id.String())),
		state:  Idle,
		stats:  stats.CreateRunStatistics(),
		sortOp: sortPartition,
	}
}

// Run is a convenience which creates an Executor and runs it
func Run(ctx context.Context, source halfsort.DataSource, parser halfsort.LineParser, opts *Options) (*halfsort.Result, error) {
	return CreateExecutor(source, parser, opts).Run(ctx)
}

// ID returns the unique ID of this Executor's run
func (e *Executor) ID() string {
	return e.id
}

// State returns the current State of this Executor
func (e *Executor) State() State {
	return e.state
}

// Stats returns statistics about this Executor's run
func (e *Executor) Stats() halfsort.RuntimeStatistics {
	return e.stats
}

// Run loads, partitions, sorts and combines. The context is checked before loading
// and before the sorters are spawned; once spawned, both sorters run to completion.
// A run failure is fatal and leaves the Executor Aborted, with no Result. Calling Run
// on an Executor which is not Idle returns an error and leaves its State untouched.
func (e *Executor) Run(ctx context.Context) (*halfsort.Result, error) {
	if e.state.IsTerminal() {
		return nil, fmt.Errorf("Executor %s has already been run (state %s)", e.id, e.state)
	} else if e.state != Idle {
		return nil, fmt.Errorf("Executor %s is already running (state %s)", e.id, e.state)
	}
	e.stats.Start()
	defer e.stats.Finish()

	if err := ctx.Err(); err != nil {
		return nil, e.abort(err)
	}
	lines, err := e.load()
	if err != nil {
		return nil, e.abort(err)
	}

	// partition
	expectedLines := len(lines)
	expectedFingerprint := partition.Fingerprint(lines)
	e.stats.StartStage()
	first, second := partition.Split(lines)
	e.stats.EndStage(stats.PartitionStage)
	e.transition(Partitioned, zap.Int("first", first.GetNumRows()), zap.Int("second", second.GetNumRows()))

	if err := ctx.Err(); err != nil {
		return nil, e.abort(err)
	}
	e.transition(Sorting)
	if err := e.sortHalves(first, second); err != nil {
		return nil, e.abort(err)
	}

	// combine
	e.stats.StartStage()
	result := combine(first, second)
	e.stats.EndStage(stats.CombineStage)
	e.transition(Combined, zap.Int("lines", result.Len()), zap.Int("boundary", result.Boundary))
	if err := verify(result, expectedLines, expectedFingerprint); err != nil {
		return nil, e.abort(err)
	}
	e.transition(Done)
	return result, nil
}

// load reads the DataSource. Recoverable parse errors are escalated unless the
// Executor was configured to ignore them.
func (e *Executor) load() (halfsort.LineSequence, error) {
	source := e.source.ToString()
	e.transition(Loading, zap.String("source", source))
	e.stats.StartStage()
	lines, err := e.source.Load(e.parser)
	e.stats.EndStage(stats.LoadStage)
	if err != nil {
		if errors.IsFatal(err) {
			return nil, err
		}
		if !e.opts.IgnoreParseErrors {
			return nil, errors.SourceReadError{Path: source, Err: err}
		}
		merrs := []error{err}
		if merr, ok := err.(*multierror.Error); ok {
			merrs = merr.Errors
		}
		e.logger.Warn("Ignoring unparseable lines",
			zap.String("source", source),
			zap.Int("errors", len(merrs)),
			zap.String("details", util.FormatMultiError(merrs)))
	}
	e.stats.SetLinesLoaded(len(lines))
	e.logger.Info("Loaded source", zap.String("source", source), zap.Int("lines", len(lines)))
	return lines, nil
}

// sortHalves hands each half to its own goroutine and blocks until both finish.
// The halves are disjoint, so the sorters share nothing but the Executor's
// read-only configuration and their own stats slots.
func (e *Executor) sortHalves(first halfsort.SortablePartition, second halfsort.SortablePartition) error {
	e.stats.StartStage()
	defer e.stats.EndStage(stats.SortStage)

	var g errgroup.Group
	var errs [2]error
	for half, part := range [2]halfsort.SortablePartition{first, second} {
		half, part := half, part
		sortOp := util.SafeSortOperation(half, e.sortOp)
		g.Go(func() error {
			start := time.Now()
			err := sortOp(part)
			if err == nil && !part.IsSorted() {
				err = errors.SorterError{Half: half, PartitionID: part.ID(), Err: fmt.Errorf("lines are not in ascending order after sorting")}
			}
			e.stats.RecordHalf(half, part.GetNumRows(), time.Since(start))
			e.logger.Debug("Sorted half",
				zap.Int("half", half),
				zap.String("partition", part.ID()),
				zap.Int("lines", part.GetNumRows()),
				zap.Duration("runtime", time.Since(start)),
				zap.Error(err))
			errs[half] = err
			return err
		})
	}
	if err := g.Wait(); err == nil {
		return nil
	}
	var multierr *multierror.Error
	for _, err := range errs {
		if err != nil {
			multierr = multierror.Append(multierr, err)
		}
	}
	return multierr.ErrorOrNil()
}

// combine appends the second sorted half after the first. No merge takes place.
func combine(first halfsort.Partition, second halfsort.Partition) *halfsort.Result {
	lines := make(halfsort.LineSequence, 0, first.GetNumRows()+second.GetNumRows())
	lines = append(lines, first.Rows()...)
	lines = append(lines, second.Rows()...)
	return &halfsort.Result{Lines: lines, Boundary: first.GetNumRows()}
}

// verify confirms that no line was created, duplicated or dropped between loading and combining
func verify(result *halfsort.Result, expectedLines int, expectedFingerprint uint64) error {
	actualFingerprint := partition.Fingerprint(result.Lines)
	if result.Len() != expectedLines || actualFingerprint != expectedFingerprint {
		return errors.ConservationError{
			ExpectedLines:       expectedLines,
			ActualLines:         result.Len(),
			ExpectedFingerprint: expectedFingerprint,
			ActualFingerprint:   actualFingerprint,
		}
	}
	return nil
}

func (e *Executor) transition(to State, fields ...zap.Field) {
	fields = append([]zap.Field{zap.Stringer("from", e.state), zap.Stringer("to", to)}, fields...)
	e.logger.Debug("State transition", fields...)
	e.state = to
}

func (e *Executor) abort(err error) error {
	from := e.state
	e.state = Aborted
	e.logger.Error("Run aborted", zap.Stringer("from", from), zap.Error(err))
	return err
}

func sortPartition(part halfsort.SortablePartition) error {
	part.Sort()
	return nil
}
