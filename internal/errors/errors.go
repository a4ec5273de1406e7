package errors

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes for forage-wait
const (
	ExitSuccess      = 0
	ExitGeneralError = 1
)

// Kind classifies a WaitError.
type Kind string

const (
	KindGeneral             Kind = "general"
	KindInvalidRequest      Kind = "invalid-request"
	KindResourceUnavailable Kind = "resource-unavailable"
	KindUnhealthy           Kind = "unhealthy"
	KindTimedOut            Kind = "timed-out"
	KindInterrupted         Kind = "interrupted"
	KindHelpShown           Kind = "help-shown"
	KindConfig              Kind = "config"
)

// WaitError is the base error type for forage-wait
type WaitError struct {
	Kind    Kind
	Code    int
	Message string
	Cause   error

	// Signal is set for KindInterrupted.
	Signal os.Signal
}

func (e *WaitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *WaitError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *WaitError) ExitCode() int {
	return e.Code
}

// New creates a new WaitError
func New(kind Kind, message string) *WaitError {
	return &WaitError{
		Kind:    kind,
		Code:    ExitGeneralError,
		Message: message,
	}
}

// Wrap wraps an existing error with a WaitError
func Wrap(kind Kind, message string, cause error) *WaitError {
	return &WaitError{
		Kind:    kind,
		Code:    ExitGeneralError,
		Message: message,
		Cause:   cause,
	}
}

// InvalidRequest returns an error for a malformed watch request.
func InvalidRequest(format string, args ...any) *WaitError {
	return New(KindInvalidRequest, fmt.Sprintf(format, args...))
}

// ResourceUnavailable returns an error when the event channel or the event
// source process could not be set up.
func ResourceUnavailable(op string, cause error) *WaitError {
	return Wrap(KindResourceUnavailable, fmt.Sprintf("%s failed", op), cause)
}

// Unhealthy returns the error reported when a container turns unhealthy.
func Unhealthy(container string) *WaitError {
	return New(KindUnhealthy, fmt.Sprintf("container %s is unhealthy", container))
}

// TimedOut returns the error reported when the event window closes without a
// terminal health status.
func TimedOut(container string) *WaitError {
	return New(KindTimedOut, fmt.Sprintf("timed out waiting for container %s", container))
}

// Interrupted returns an error for a watch stopped by a signal.
func Interrupted(sig os.Signal) *WaitError {
	e := New(KindInterrupted, fmt.Sprintf("interrupted by %v", sig))
	e.Signal = sig
	return e
}

// HelpShown is returned after help output so the caller exits non-zero.
func HelpShown() *WaitError {
	return New(KindHelpShown, "help requested")
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *WaitError {
	return Wrap(KindConfig, message, cause)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var waitErr *WaitError
	if errors.As(err, &waitErr) {
		return waitErr.ExitCode()
	}
	return ExitGeneralError
}

// KindOf returns the Kind of the first WaitError in err's chain, or
// KindGeneral.
func KindOf(err error) Kind {
	var waitErr *WaitError
	if errors.As(err, &waitErr) {
		return waitErr.Kind
	}
	return KindGeneral
}

// IsKind reports whether err carries a WaitError of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// InterruptSignal returns the signal that interrupted the watch, if any.
func InterruptSignal(err error) (os.Signal, bool) {
	var waitErr *WaitError
	if errors.As(err, &waitErr) && waitErr.Kind == KindInterrupted && waitErr.Signal != nil {
		return waitErr.Signal, true
	}
	return nil, false
}
