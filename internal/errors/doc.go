// Package errors provides typed errors with exit codes for forage-wait.
//
// # Error Types
//
// WaitError is the base error type. It carries a Kind, an exit code, a
// user-facing message and an optional cause:
//
//	type WaitError struct {
//	    Kind    Kind   // Category used for dispatch in cmd and main
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
// A gate only distinguishes success from failure:
//
//	ExitSuccess      = 0  // Container reported healthy
//	ExitGeneralError = 1  // Everything else
//
// Interrupted runs do not use an exit code at all: main re-raises the
// signal so the process terminates the way the caller expects.
//
// # Error Constructors
//
//	errors.InvalidRequest("timeout must be a non-negative integer: %q", raw)
//	errors.ResourceUnavailable("open event channel", err)
//	errors.Unhealthy("web1")
//	errors.TimedOut("web1")
//	errors.Interrupted(syscall.SIGTERM)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
