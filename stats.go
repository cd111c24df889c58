package halfsort

import "time"

// RuntimeStatistics facilitates the retrieval of statistics about a halfsort run
type RuntimeStatistics interface {
	// GetStartTime returns the start time of the run
	GetStartTime() time.Time
	// GetRuntime returns the running time of the run
	GetRuntime() time.Duration
	// GetNumLinesLoaded returns the number of lines which survived comment filtering
	GetNumLinesLoaded() int64
	// GetNumLinesSorted returns the number of lines sorted by each half's worker
	GetNumLinesSorted() [2]int64
	// GetStageRuntimes returns the runtime of each stage, indexed by stage
	GetStageRuntimes() []time.Duration
	// GetHalfSortRuntimes returns the time each worker spent sorting its half
	GetHalfSortRuntimes() [2]time.Duration
}
