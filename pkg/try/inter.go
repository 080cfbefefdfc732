package try

import "time"

type OutcomeProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithFailure defines an interface for types that carry either a result or
// a typed failure
type WithFailure[T any, E Error] interface {
	OutcomeProvider[T]
	// Err returns the typed error if the operation failed
	Err() E
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
}

var (
	_ OutcomeProvider[int]          = Result[int, *JSONError]{}
	_ WithFailure[int, *JSONError]  = Result[int, *JSONError]{}
	_ WithFailure[Unit, *FileError] = Result[Unit, *FileError]{}
)
