package errors

import (
	"fmt"
	"runtime/debug"

	"github.com/cockroachdb/errors"
)

// PanicError is an error built from a recovered panic, typically raised by
// gonum when a factorization is handed a matrix it cannot work with.
type PanicError struct {
	// Operation identifies where the panic was recovered.
	Operation string
	// PanicValue is the value passed to panic().
	PanicValue interface{}
	// StackTrace is the goroutine stack at recovery time.
	StackTrace string
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in %s: %v", e.Operation, e.PanicValue)
}

// String includes the captured stack trace.
func (e *PanicError) String() string {
	return fmt.Sprintf("panic in %s: %v\nStack trace:\n%s", e.Operation, e.PanicValue, e.StackTrace)
}

// NewPanicError creates a PanicError for the given operation.
func NewPanicError(operation string, panicValue interface{}) *PanicError {
	return &PanicError{
		Operation:  operation,
		PanicValue: panicValue,
		StackTrace: string(debug.Stack()),
	}
}

// Recover converts a panic into an error assigned to *err. It must be
// deferred directly:
//
//	func (n *Network) solve() (theta *mat.VecDense, err error) {
//	    defer errors.Recover(&err, "Network.solve")
//	    ...
//	}
//
// An error already stored in *err is kept and wrapped with the panic value.
func Recover(err *error, operation string) {
	r := recover()
	if r == nil {
		return
	}
	if *err != nil {
		*err = errors.Wrapf(*err, "panic in %s: %v", operation, r)
		return
	}
	*err = NewPanicError(operation, r)
}

// SafeExecute runs fn and turns any panic into a PanicError.
func SafeExecute(operation string, fn func() error) (err error) {
	defer Recover(&err, operation)
	return fn()
}
