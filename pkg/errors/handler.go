package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	// DefaultHandler receives every reported failure. It starts out as a
	// LogHandler writing warnings and above to stderr.
	DefaultHandler ErrorHandler = NewLogHandler(nil)

	handlerMu sync.RWMutex
)

// SetHandler installs h as the global handler. Pass nil to restore the
// default LogHandler.
func SetHandler(h ErrorHandler) {
	Swap(h)
}

// Swap installs h like SetHandler and returns a function that reinstalls
// the previous handler:
//
//	defer errors.Swap(recorder)()
func Swap(h ErrorHandler) (restore func()) {
	if h == nil {
		h = NewLogHandler(nil)
	}
	handlerMu.Lock()
	prev := DefaultHandler
	DefaultHandler = h
	handlerMu.Unlock()
	return func() {
		handlerMu.Lock()
		DefaultHandler = prev
		handlerMu.Unlock()
	}
}

func dispatch(send func(ErrorHandler)) {
	handlerMu.RLock()
	h := DefaultHandler
	handlerMu.RUnlock()
	if h != nil {
		send(h)
	}
}

// Report hands an inspection failure to the global handler, stamping it
// with the current time when Timestamp is unset.
func Report(err *InspectionError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	dispatch(func(h ErrorHandler) { h.HandleError(err) })
}

// ReportPanic hands a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	dispatch(func(h ErrorHandler) { h.HandlePanic(err) })
}

// ReportBuildError hands a failed custom-view build to the global handler.
func ReportBuildError(err *BuildError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	dispatch(func(h ErrorHandler) { h.HandleBuildError(err) })
}

// Recover reports a panic in progress. It must be deferred directly:
//
//	defer errors.Recover("inspect.Tap")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(panicked(op, r))
	}
}

// RecoverWithCallback is Recover followed by callback(r), so the caller can
// turn the panic into a returned error.
func RecoverWithCallback(op string, callback func(r any)) {
	if r := recover(); r != nil {
		ReportPanic(panicked(op, r))
		if callback != nil {
			callback(r)
		}
	}
}

func panicked(op string, r any) *PanicError {
	return &PanicError{
		Op:         op,
		Value:      r,
		StackTrace: stack(4),
		Timestamp:  time.Now(),
	}
}

// CaptureStack returns the caller's stack, one "function\n\tfile:line"
// entry per frame.
func CaptureStack() string {
	return stack(3)
}

// stack formats at most 32 frames, skipping the given number of frames
// in the runtime.Callers sense.
func stack(skip int) string {
	var pcs [32]uintptr
	n := runtime.Callers(skip, pcs[:])
	if n == 0 {
		return ""
	}
	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		fmt.Fprintf(&sb, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		if !more {
			return sb.String()
		}
	}
}
