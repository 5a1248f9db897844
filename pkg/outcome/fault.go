package outcome

import (
	"fmt"
	"reflect"
)

// Built-in codes. Callers define their own per domain; the core reserves
// only what its own operators produce.
const (
	CodeError    = "error"
	CodeInvalid  = "invalid"
	CodeCanceled = "canceled"
)

// Fault is the contract every domain error satisfies: a stable code for
// programmatic matching and a human-readable message. Both are fixed at
// construction time.
type Fault interface {
	error
	// Code returns the machine-matchable identifier of the fault.
	Code() string
	// Message returns the human-readable description.
	Message() string
}

// BasicFault is the minimal Fault implementation. Domain variants embed it
// and add their own fields.
type BasicFault struct {
	code    string
	message string
}

func NewFault(code, message string) BasicFault {
	return BasicFault{code: code, message: message}
}

func Faultf(code, format string, args ...any) BasicFault {
	return BasicFault{code: code, message: fmt.Sprintf(format, args...)}
}

func (f BasicFault) Code() string {
	return f.code
}

func (f BasicFault) Message() string {
	return f.message
}

func (f BasicFault) Error() string {
	return f.code + ": " + f.message
}

// AsFault adopts a plain error as a Fault. An error that already is a Fault
// passes through unchanged; anything else becomes a CodeError fault carrying
// the error text.
func AsFault(err error) Fault {
	if IsNil(err) {
		return nil
	}
	if f, ok := err.(Fault); ok {
		return f
	}
	return BasicFault{code: CodeError, message: err.Error()}
}

// HasFault reports the presence of a fault, treating typed-nil pointers
// the same as nil.
func HasFault(f Fault) bool {
	return !IsNil(f)
}

// EqualFaults compares two faults structurally: same variant, same field
// values. Two nils are equal.
func EqualFaults(a, b Fault) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	return reflect.DeepEqual(a, b)
}
