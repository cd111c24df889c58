package halfsort

// SortOperation - A function run by a worker to sort the Partition it owns
type SortOperation func(part SortablePartition) error
