package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler is the global error handler.
	// It defaults to LogHandler with verbose=false.
	DefaultHandler ErrorHandler = &LogHandler{}

	handlerMu sync.RWMutex
)

// SetHandler configures the global error handler.
// Pass nil to restore the default LogHandler.
func SetHandler(h ErrorHandler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		DefaultHandler = &LogHandler{}
	} else {
		DefaultHandler = h
	}
}

func getHandler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return DefaultHandler
}

// Report sends an error to the global handler.
// If err.Timestamp is zero, it is set to the current time.
func Report(err *ReflexError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandleError(err)
	}
}

// ReportPanic sends a panic error to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if h := getHandler(); h != nil {
		h.HandlePanic(err)
	}
}

// Toolkit builds a fatal toolkit error for the given operation and handle.
func Toolkit(op string, handle int64, err error) *ReflexError {
	return &ReflexError{
		Op:         op,
		Kind:       KindToolkit,
		Err:        err,
		Handle:     handle,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	}
}

// Mismatch panics with a MismatchError wrapped in a KindMismatch ReflexError.
func Mismatch(op, want, got string) {
	panic(&ReflexError{
		Op:         op,
		Kind:       KindMismatch,
		Err:        &MismatchError{Op: op, Want: want, Got: got},
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// Recover is a helper for deferred panic recovery.
// Usage: defer errors.Recover("operation.name")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{
			Op:         op,
			Value:      r,
			StackTrace: CaptureStack(),
			Timestamp:  time.Now(),
		})
	}
}

// RecoverFatal converts a fatal *ReflexError panic into an error stored in
// errp, reporting it first. Any other panic value is reported and re-raised.
// Usage: defer errors.RecoverFatal("engine.Run", &err)
func RecoverFatal(op string, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	if rerr, ok := r.(*ReflexError); ok {
		Report(rerr)
		if errp != nil {
			*errp = rerr
		}
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
	panic(r)
}

// CaptureStack returns the current call stack as a string.
// It skips the first few frames to exclude the CaptureStack call itself.
func CaptureStack() string {
	const maxDepth = 32
	var pcs [maxDepth]uintptr
	n := runtime.Callers(3, pcs[:])
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var sb strings.Builder
	for {
		frame, more := frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteString("\n")
		if !more {
			break
		}
	}
	return sb.String()
}
