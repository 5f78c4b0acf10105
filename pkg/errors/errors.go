// Package errors provides structured error values for widget inspection.
//
// Every failure the engine can produce is a value of one of the types in
// this package. Accessor chains fail fast and wrap the failure in an
// [InspectionError] carrying the path that was being evaluated; searches
// fail soft and aggregate [Blocker]s into a [NotFoundError].
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLabelNotFound indicates a missing field label.
	KindLabelNotFound
	// KindTypeMismatch indicates a value of an unexpected type.
	KindTypeMismatch
	// KindIndexOutOfBounds indicates a child index outside the valid range.
	KindIndexOutOfBounds
	// KindViewNotFound indicates an absent optional branch or modifier.
	KindViewNotFound
	// KindMissingAmbient indicates unregistered ambient dependencies.
	KindMissingAmbient
	// KindNotFound indicates a search without a match.
	KindNotFound
	// KindNotSupported indicates an operation the node's category cannot serve.
	KindNotSupported
	// KindBuild indicates a failure while evaluating a widget's Build.
	KindBuild
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLabelNotFound:
		return "label not found"
	case KindTypeMismatch:
		return "type mismatch"
	case KindIndexOutOfBounds:
		return "index out of bounds"
	case KindViewNotFound:
		return "view not found"
	case KindMissingAmbient:
		return "missing ambient dependency"
	case KindNotFound:
		return "not found"
	case KindNotSupported:
		return "not supported"
	case KindBuild:
		return "build"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// InspectionError is a failure raised while evaluating an accessor chain.
type InspectionError struct {
	// Op is the accessor that failed (e.g., "inspect.ChildAt").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Path is the rendered path of the view the accessor was called on.
	Path string
	// Err is the underlying error.
	Err error
	// Hint is an optional remediation suggestion.
	Hint string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *InspectionError) Error() string {
	var sb strings.Builder
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	if e.Err != nil {
		sb.WriteString(e.Err.Error())
	} else {
		sb.WriteString(e.Kind.String())
	}
	if e.Hint != "" {
		sb.WriteString(" (hint: ")
		sb.WriteString(e.Hint)
		sb.WriteString(")")
	}
	return sb.String()
}

func (e *InspectionError) Unwrap() error {
	return e.Err
}

// LabelNotFoundError reports a field label that does not exist on a value.
type LabelNotFoundError struct {
	// Label is the label that was requested.
	Label string
	// Type is the type name of the value that was searched.
	Type string
	// Path is the full "|"-separated path when the lookup was part of one.
	Path string
	// Segment is the zero-based index of the failing segment in Path.
	Segment int
}

func (e *LabelNotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s does not have '%s' attribute (segment %d of %q)", e.Type, e.Label, e.Segment, e.Path)
	}
	return fmt.Sprintf("%s does not have '%s' attribute", e.Type, e.Label)
}

// TypeMismatchError reports a value whose type differs from the expected one.
type TypeMismatchError struct {
	Expected string
	Actual   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: %s is not %s", e.Actual, e.Expected)
}

// IndexOutOfBoundsError reports a child index outside 0..<Count.
type IndexOutOfBoundsError struct {
	Index int
	Count int
}

func (e *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d is out of bounds: %s", e.Index, e.Range())
}

// Range renders the valid index range.
func (e *IndexOutOfBoundsError) Range() string {
	return fmt.Sprintf("0..<%d", e.Count)
}

// ViewNotFoundError reports an absent branch or modifier.
type ViewNotFoundError struct {
	// Parent is the type name of the node holding the branch.
	Parent string
	// Name is the branch, label or modifier that is absent.
	Name string
}

func (e *ViewNotFoundError) Error() string {
	return fmt.Sprintf("view for %s is absent: '%s'", e.Parent, e.Name)
}

// MissingAmbientError reports every ambient dependency a node needs but
// that was not registered. Keys lists all of them, not only the first.
type MissingAmbientError struct {
	// View is the type name of the node that declared the dependencies.
	View string
	// Keys are the missing capability keys, formatted "field: key" when the
	// dependency is a struct field.
	Keys []string
}

func (e *MissingAmbientError) Error() string {
	return fmt.Sprintf("%s is missing ambient dependencies: [%s]", e.View, strings.Join(e.Keys, ", "))
}

// NotSupportedError reports an operation the node cannot serve.
type NotSupportedError struct {
	Message string
}

func (e *NotSupportedError) Error() string {
	return e.Message
}

// Blocker is a node the search could not expand.
type Blocker struct {
	// Path is the rendered path of the node.
	Path string
	// Err is the reason the node could not be expanded.
	Err error
}

func (b *Blocker) Error() string {
	return fmt.Sprintf("%s: %v", b.Path, b.Err)
}

func (b *Blocker) Unwrap() error {
	return b.Err
}

// NotFoundError reports a search without a match.
type NotFoundError struct {
	// Skipped is the number of matches skipped before giving up.
	Skipped int
	// Blockers are the nodes that could not be expanded.
	Blockers []*Blocker
}

func (e *NotFoundError) Error() string {
	conclusion := "search did not find a match"
	if e.Skipped > 0 {
		conclusion = fmt.Sprintf("search did only find %d matches", e.Skipped)
	}
	if len(e.Blockers) == 0 {
		return conclusion
	}
	parts := make([]string, len(e.Blockers))
	for i, b := range e.Blockers {
		parts[i] = b.Error()
	}
	return conclusion + ". Possible blockers: " + strings.Join(parts, "; ")
}

// Obstructed reports whether the search was blocked by at least one node.
func (e *NotFoundError) Obstructed() bool {
	return len(e.Blockers) > 0
}

// BuildError represents a failure while evaluating a widget's Build.
type BuildError struct {
	// Widget is the type name of the widget that failed.
	Widget string
	// Recovered is the panic value (nil for regular errors).
	Recovered any
	// Err is the underlying error (nil for panics).
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *BuildError) Error() string {
	if e.Recovered != nil {
		return fmt.Sprintf("panic in %s.Build(): %v", e.Widget, e.Recovered)
	}
	if e.Err != nil {
		return fmt.Sprintf("error in %s.Build(): %v", e.Widget, e.Err)
	}
	return fmt.Sprintf("unknown error in %s.Build()", e.Widget)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "inspect.Tap").
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

// KindOf classifies err by the first typed error found in its chain.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindUnknown
	}
	var (
		insp     *InspectionError
		label    *LabelNotFoundError
		mismatch *TypeMismatchError
		bounds   *IndexOutOfBoundsError
		notFound *ViewNotFoundError
		ambient  *MissingAmbientError
		search   *NotFoundError
		unsup    *NotSupportedError
		build    *BuildError
		panicErr *PanicError
	)
	switch {
	case stderrors.As(err, &insp) && insp.Kind != KindUnknown:
		return insp.Kind
	case stderrors.As(err, &ambient):
		return KindMissingAmbient
	case stderrors.As(err, &label):
		return KindLabelNotFound
	case stderrors.As(err, &mismatch):
		return KindTypeMismatch
	case stderrors.As(err, &bounds):
		return KindIndexOutOfBounds
	case stderrors.As(err, &notFound):
		return KindViewNotFound
	case stderrors.As(err, &search):
		return KindNotFound
	case stderrors.As(err, &unsup):
		return KindNotSupported
	case stderrors.As(err, &build):
		return KindBuild
	case stderrors.As(err, &panicErr):
		return KindPanic
	default:
		return KindUnknown
	}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool { return stderrors.Is(err, target) }

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool { return stderrors.As(err, target) }

// ErrorHandler receives errors reported by the inspection engine.
type ErrorHandler interface {
	// HandleError is called when an inspection error is reported.
	HandleError(err *InspectionError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
	// HandleBuildError is called when a widget build fails.
	HandleBuildError(err *BuildError)
}
