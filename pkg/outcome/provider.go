package outcome

import "time"

// Unwrapper yields the (value, fault) pair without touching the fail-fast
// accessors.
type Unwrapper[T any] interface {
	// Unwrap returns the pair; exactly one member is meaningful.
	Unwrap() (T, Fault)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// StateReporter exposes the two mutually exclusive result states.
type StateReporter interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

// Reporter combines dual extraction with state inspection.
type Reporter[T any] interface {
	Unwrapper[T]
	StateReporter
}
