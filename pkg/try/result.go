package try

import (
	"time"

	"github.com/google/uuid"
)

// Result holds the outcome of a safe operation: either a success value of
// type T or a failure of the concrete error kind E. Exactly one side is
// populated; a Result never changes after construction.
type Result[T any, E Error] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isSuccess bool
	isFailure bool
}

// Success wraps a value in a successful Result.
func Success[T any, E Error](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail wraps an error in a failed Result. The error must be non-nil;
// passing a nil (or typed-nil) error is a contract violation and panics.
func Fail[T any, E Error](err E) Result[T, E] {
	if IsNil(err) {
		panic("try: Fail called with nil error")
	}
	return Result[T, E]{
		err:       err,
		isFailure: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Value returns the success value, or the zero value of T when the Result
// is not a success.
func (r Result[T, E]) Value() T {
	return r.value
}

// Err returns the failure error, or the zero value of E when the Result is
// not a failure.
func (r Result[T, E]) Err() E {
	return r.err
}

// MustValue returns the success value. Calling it on a failure is a
// contract violation: it panics with the wrapped error so the misuse site
// still sees the original diagnosis.
func (r Result[T, E]) MustValue() T {
	if !r.isSuccess {
		if r.isFailure {
			panic(r.err)
		}
		panic("try: MustValue called on an empty Result")
	}
	return r.value
}

// MustErr returns the failure error. Calling it on a success (or an empty
// Result) is a contract violation and panics.
func (r Result[T, E]) MustErr() E {
	if !r.isFailure {
		panic("try: MustErr called on a Result that is not a failure")
	}
	return r.err
}

// ValueOr returns the success value, or fallback when the Result is not a
// success.
func (r Result[T, E]) ValueOr(fallback T) T {
	if r.isSuccess {
		return r.value
	}
	return fallback
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return r.isFailure
}

// IsEmpty reports whether the Result is the zero value, carrying neither
// variant. Constructors never produce an empty Result.
func (r Result[T, E]) IsEmpty() bool {
	return !r.isSuccess && !r.isFailure
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

// Unit is the success payload of operations that produce no value, such as
// file writes.
type Unit struct{}
