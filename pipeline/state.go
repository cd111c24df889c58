package pipeline

// State is a step in the life of an Executor
type State int

const (
	// Idle means the Executor has not been run
	Idle State = iota
	// Loading means lines are being read from the DataSource
	Loading
	// Partitioned means the loaded lines have been split into two halves
	Partitioned
	// Sorting means both halves are being sorted in parallel
	Sorting
	// Combined means the sorted halves have been concatenated
	Combined
	// Done means a Result has been produced
	Done
	// Aborted means the run failed. Aborted is terminal.
	Aborted
)

// String returns a readable name for this State
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Partitioned:
		return "partitioned"
	case Sorting:
		return "sorting"
	case Combined:
		return "combined"
	case Done:
		return "done"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// IsTerminal returns true iff no further transitions can occur from this State
func (s State) IsTerminal() bool {
	return s == Done || s == Aborted
}
