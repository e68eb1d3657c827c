package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseRegister Phase = "register" // object registration
	PhaseResolve  Phase = "resolve"  // handle resolution
	PhaseDispatch Phase = "dispatch" // event dispatch
	PhaseLoop     Phase = "loop"     // event loop control
	PhaseHost     Phase = "host"     // wasm host module wiring
	PhaseConfig   Phase = "config"   // configuration loading
)

// Kind categorizes the error
type Kind string

const (
	KindNotFound      Kind = "not_found"
	KindNoCapability  Kind = "no_capability"
	KindClosed        Kind = "closed"
	KindDetached      Kind = "detached"
	KindInvalidInput  Kind = "invalid_input"
	KindMissingExport Kind = "missing_export"
	KindMemoryAccess  Kind = "memory_access"
	KindUnsupported   Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Convenience constructors for common error patterns

// NotFound creates a not-found error
func NotFound(phase Phase, what string, id uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %d not found", what, id),
	}
}

// NoCapability creates a capability mismatch error
func NoCapability(phase Phase, id uint64, capability string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNoCapability,
		Detail: fmt.Sprintf("object %d does not support %s", id, capability),
	}
}

// Detached creates an error for operations needing an attached interactor
func Detached(phase Phase, id uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDetached,
		Detail: fmt.Sprintf("object %d has no attached interactor", id),
	}
}

// Closed creates an error for operations on a closed component
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// MissingExport creates an error for a guest lacking a required export
func MissingExport(name string) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindMissingExport,
		Detail: fmt.Sprintf("guest does not export %q", name),
	}
}

// MemoryAccess creates an error for an out-of-range guest memory read
func MemoryAccess(ptr, length uint32) *Error {
	return &Error{
		Phase:  PhaseHost,
		Kind:   KindMemoryAccess,
		Detail: fmt.Sprintf("guest memory read at %d (%d bytes) out of range", ptr, length),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
