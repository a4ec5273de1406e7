// Package logging provides logging utilities for forage-wait.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Status notifications for the person or script running the gate
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("starting event source", "container", id, "channel", chID)
//	logging.Warn("event source did not exit after SIGTERM", "pid", pid)
//
// # User Output
//
// Notifications go through a Printer, which carries the Display settings by
// value rather than reading process-wide flags:
//
//	p := logging.NewPrinter(logging.Display{Quiet: quiet}, os.Stdout, os.Stderr)
//	p.Success("Container %s is healthy", name)
//	p.Failure("Container %s is unhealthy", name)
//
// Output destinations:
//   - Success, Info: stdout, suppressed when Quiet
//   - Failure: stderr, suppressed when Quiet
//   - Error: stderr, always written
//
// # Status Indicators
//
// Printer methods prepend status indicators, coloured with lipgloss unless
// Monochrome is set:
//   - ℹ (info)
//   - ✓ (success)
//   - ✗ (failure, error)
package logging
