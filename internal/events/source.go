package events

import (
	"context"
	"time"
)

// Window bounds the events the engine reports.
type Window struct {
	// Since is the start of the window.
	Since time.Time

	// Until is the end of the window. Zero means the stream stays open until
	// the process is stopped.
	Until time.Time
}

// Bounded reports whether the window has an end.
func (w Window) Bounded() bool {
	return !w.Until.IsZero()
}

// Lines is a blocking, non-restartable sequence of event lines.
type Lines interface {
	// Next blocks until a line is available. It returns false at end of
	// stream, or when ctx is done, in which case the pending read is abandoned.
	Next(ctx context.Context) (string, bool)

	// Err returns the read error that ended the stream, if any.
	Err() error
}

// Process is a handle on a running event source.
type Process interface {
	// Pid returns the process identifier.
	Pid() int

	// Stop terminates the process if it is still running. It is safe to call
	// any number of times, including after the process exited on its own.
	Stop()

	// Exited reports whether the process has exited.
	Exited() bool
}

// Source starts event producers.
type Source interface {
	// Start launches the producer for containerID writing into ch. It returns
	// the line sequence read from ch and the producer's process handle.
	Start(ctx context.Context, ch *Channel, containerID string, w Window) (Lines, Process, error)
}

// CommandBuilder describes the engine command that streams events.
// runtime.Engine implements it.
type CommandBuilder interface {
	Name() string
	EventsArgs(containerID string, since, until time.Time) []string
}
