package outcome

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Result holds exactly one of a success value or a Fault. Values are
// immutable after construction; every transforming operation produces a
// new Result.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	fault     Fault
	isSuccess bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failed Result for any value type. The fault carries no
// dependency on T, so a failure can be re-keyed freely (see FailFrom).
func Fail[T any](fault Fault) Result[T] {
	if IsNil(fault) {
		fault = NewFault(CodeError, "unspecified fault")
	}
	return Result[T]{
		fault:     fault,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failf[T any](code, format string, args ...any) Result[T] {
	return Fail[T](Faultf(code, format, args...))
}

// Of adopts a classic (value, error) pair: success when err is nil,
// failure with the adopted fault otherwise.
func Of[T any](v T, err error) Result[T] {
	if IsNil(err) {
		return Success(v)
	}
	return Fail[T](AsFault(err))
}

// FailFrom re-keys a failed Result[In] to Result[Out], preserving the
// fault, id and creation time. Calling it on a success is a contract
// violation.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic("outcome: cannot re-key a successful result as a failure")
	}
	return Result[Out]{
		fault:     from.fault,
		isSuccess: false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

// Value returns the success payload. Accessing it on a failed Result is a
// programming bug and panics; use Unwrap for branch-free extraction.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic("outcome: cannot access success value of a failed result")
	}
	return r.value
}

// Fault returns the failure payload. Accessing it on a successful Result
// is a programming bug and panics.
func (r Result[T]) Fault() Fault {
	if r.isSuccess {
		panic("outcome: cannot access fault of a successful result")
	}
	return r.fault
}

// Unwrap returns the (value, fault) pair; exactly one member is meaningful.
// On success the fault is nil, on failure the value is T's zero value.
func (r Result[T]) Unwrap() (T, Fault) {
	return r.value, r.fault
}

// Deconstruct writes the pair through the given pointers, skipping nils.
// Same semantics as Unwrap.
func (r Result[T]) Deconstruct(value *T, fault *Fault) {
	if value != nil {
		*value = r.value
	}
	if fault != nil {
		*fault = r.fault
	}
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) ID() uuid.UUID {
	return r.id
}

func (r Result[T]) String() string {
	if r.isSuccess {
		return fmt.Sprintf("success(%v)", r.value)
	}
	return fmt.Sprintf("failure(%v)", r.fault)
}
