package binding

// Stats contains the counters of a Binding.
type Stats struct {
	// Started is the number of operations that were started.
	Started uint64

	// Cancelled is the number of operations that returned after being cancelled.
	Cancelled uint64

	// Completed is the number of operations that ran to completion.
	Completed uint64

	// Panicked is the number of operations that panicked (their trigger is reset to idle).
	Panicked uint64
}
