// Package errors provides structured error handling for the Reflex runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindToolkit indicates a native toolkit failure (handle creation, resources).
	KindToolkit
	// KindMismatch indicates a descriptor was patched with a different category.
	KindMismatch
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindConfig indicates invalid settings or project configuration.
	KindConfig
	// KindState indicates the runner was driven out of order.
	KindState
)

func (k ErrorKind) String() string {
	switch k {
	case KindToolkit:
		return "toolkit"
	case KindMismatch:
		return "mismatch"
	case KindPanic:
		return "panic"
	case KindConfig:
		return "config"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// ReflexError represents a structured error in the Reflex runtime.
type ReflexError struct {
	// Op is the operation that failed (e.g., "widgets.Button.View").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Handle is the native handle involved, if any.
	Handle int64
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *ReflexError) Error() string {
	if e.Handle != 0 {
		return fmt.Sprintf("%s [%s] handle=%d: %v", e.Op, e.Kind, e.Handle, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *ReflexError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "engine.Step").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// MismatchError reports an Update call that received a descriptor of a
// different category than the receiver. The reconciler checks categories
// before patching, so this only occurs on a broken contract.
type MismatchError struct {
	// Op is the descriptor method that detected the mismatch.
	Op string
	// Want is the receiver's category.
	Want string
	// Got is the category of the descriptor passed in.
	Got string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: cannot patch %s with %s", e.Op, e.Want, e.Got)
}

// ErrorHandler receives errors reported by the Reflex runtime.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *ReflexError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
