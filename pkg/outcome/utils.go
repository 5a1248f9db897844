package outcome

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// IsCancellation reports whether a fault stems from context cancellation
// or deadline expiry.
func IsCancellation(f Fault) bool {
	if IsNil(f) {
		return false
	}
	if f.Code() == CodeCanceled {
		return true
	}
	return errors.Is(f, context.DeadlineExceeded) || errors.Is(f, context.Canceled)
}
