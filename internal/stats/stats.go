package stats

import (
	"time"
)

// Stage identifies a sequential phase of a halfsort run
type Stage int

const (
	// LoadStage reads and filters the source
	LoadStage Stage = iota
	// PartitionStage splits the loaded lines into two halves
	PartitionStage
	// SortStage sorts both halves in parallel
	SortStage
	// CombineStage concatenates the sorted halves
	CombineStage
	numStages
)

// String returns a readable name for this Stage
func (s Stage) String() string {
	switch s {
	case LoadStage:
		return "load"
	case PartitionStage:
		return "partition"
	case SortStage:
		return "sort"
	case CombineStage:
		return "combine"
	default:
		return "unknown"
	}
}

// RunStatistics contains statistics about a halfsort run. Stage bookkeeping belongs
// to the goroutine driving the run; each sorter writes only to its own half's slot.
type RunStatistics struct {
	started               bool
	finished              bool
	startTime             time.Time
	totalRuntime          time.Duration
	linesLoaded           int64
	linesSorted           [2]int64
	halfSortRuntimes      [2]time.Duration
	stageRuntimes         []time.Duration
	currentStageStartTime time.Time
}

// CreateRunStatistics is a factory for RunStatistics
func CreateRunStatistics() *RunStatistics {
	return &RunStatistics{
		stageRuntimes: make([]time.Duration, numStages),
	}
}

// Start triggers statistics tracking, if it hasn't been started already
func (rs *RunStatistics) Start() {
	if !rs.started {
		rs.started = true
		rs.startTime = time.Now()
	}
}

// Finish completes statistics tracking
func (rs *RunStatistics) Finish() {
	rs.totalRuntime = time.Since(rs.startTime)
	rs.finished = true
}

// StartStage tracks the beginning of a new Stage
func (rs *RunStatistics) StartStage() {
	rs.currentStageStartTime = time.Now()
}

// EndStage tracks the end of a Stage
func (rs *RunStatistics) EndStage(stage Stage) {
	rs.stageRuntimes[stage] = time.Since(rs.currentStageStartTime)
}

// SetLinesLoaded records the number of lines which survived loading
func (rs *RunStatistics) SetLinesLoaded(n int) {
	rs.linesLoaded = int64(n)
}

// RecordHalf records the work done by the sorter for one half. Safe to call
// concurrently for different halves.
func (rs *RunStatistics) RecordHalf(half int, numRows int, runtime time.Duration) {
	rs.linesSorted[half] = int64(numRows)
	rs.halfSortRuntimes[half] = runtime
}

// GetStartTime returns the start time of the run
func (rs *RunStatistics) GetStartTime() time.Time {
	return rs.startTime
}

// GetRuntime returns the running time of the run
func (rs *RunStatistics) GetRuntime() time.Duration {
	if rs.finished {
		return rs.totalRuntime
	}
	if !rs.started {
		return 0
	}
	return time.Since(rs.startTime)
}

// GetNumLinesLoaded returns the number of lines which survived comment filtering
func (rs *RunStatistics) GetNumLinesLoaded() int64 {
	return rs.linesLoaded
}

// GetNumLinesSorted returns the number of lines sorted by each half's worker
func (rs *RunStatistics) GetNumLinesSorted() [2]int64 {
	return rs.linesSorted
}

// GetStageRuntimes returns the most recent runtime of each Stage, indexed by Stage
func (rs *RunStatistics) GetStageRuntimes() []time.Duration {
	return rs.stageRuntimes
}

// GetHalfSortRuntimes returns the time each worker spent sorting its half
func (rs *RunStatistics) GetHalfSortRuntimes() [2]time.Duration {
	return rs.halfSortRuntimes
}
