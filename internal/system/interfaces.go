// Package system provides abstractions for OS operations to enable testing.
package system

import (
	"context"
)

// CommandExecutor abstracts one-shot command execution for testability.
type CommandExecutor interface {
	// Execute runs a command and returns its standard output. On failure the
	// error includes whatever the command wrote to standard error.
	Execute(ctx context.Context, name string, args ...string) ([]byte, error)

	// LookPath searches for an executable named name in PATH.
	LookPath(name string) (string, error)
}

var defaultExecutor CommandExecutor = &osExecutor{}

// DefaultExecutor returns the default CommandExecutor implementation.
func DefaultExecutor() CommandExecutor {
	return defaultExecutor
}

// SetDefaultExecutor sets the default CommandExecutor (useful for testing).
func SetDefaultExecutor(exec CommandExecutor) {
	defaultExecutor = exec
}

// ResetDefaults restores the default OS implementations.
func ResetDefaults() {
	defaultExecutor = &osExecutor{}
}
