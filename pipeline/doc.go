// Package pipeline runs a halfsort job: load, partition, sort both halves in parallel, combine.
//
// An Executor moves through the states Idle, Loading, Partitioned, Sorting, Combined and Done.
// A failure in any stage moves it to Aborted, which is terminal: no partial Result is returned.
package pipeline
