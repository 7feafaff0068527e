// Package errors provides structured error handling for the sled kernel.
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
	// KindInit indicates an initialization error.
	KindInit
	// KindSetup indicates a deferred setup step that could not complete,
	// for example because its target entity was destroyed first.
	KindSetup
	// KindLookup indicates an expected entity or component was missing
	// while handling an input event. The event is dropped.
	KindLookup
	// KindInvariant indicates event data arrived in an unusable shape,
	// for example a click with no hit position.
	KindInvariant
	// KindMisuse indicates an API precondition violation by wiring code.
	KindMisuse
	// KindFrame indicates a failure inside the frame pipeline.
	KindFrame
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindInit:
		return "init"
	case KindSetup:
		return "setup"
	case KindLookup:
		return "lookup"
	case KindInvariant:
		return "invariant"
	case KindMisuse:
		return "misuse"
	case KindFrame:
		return "frame"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// SledError represents a structured error in the sled kernel.
type SledError struct {
	// Op is the operation that failed (e.g., "scroll.setupScrollbar").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Entity names the entity the failure concerns, if applicable.
	Entity string
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *SledError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("%s [%s] entity=%s: %v", e.Op, e.Kind, e.Entity, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *SledError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "frame.RunFrame").
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

// LookupError represents a missing component during event handling.
type LookupError struct {
	// Entity is the entity the component was expected on.
	Entity string
	// Component is the name of the missing component.
	Component string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("missing %s on entity %s", e.Component, e.Entity)
}

// ErrorHandler receives errors reported by the sled kernel.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *SledError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
