// Package watch blocks until a container reports a terminal health status.
package watch

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/events"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/health"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/logging"
)

// HealthInspector reports a container's present health status.
type HealthInspector interface {
	CurrentHealth(ctx context.Context, containerID string) (health.Status, error)
}

// Watcher runs watches against an event source.
type Watcher struct {
	source    events.Source
	inspector HealthInspector
	now       func() time.Time
	stdout    io.Writer
	stderr    io.Writer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithInspector checks the container's current health before streaming.
func WithInspector(i HealthInspector) Option {
	return func(w *Watcher) {
		w.inspector = i
	}
}

// WithClock overrides the clock used to compute the event window.
func WithClock(now func() time.Time) Option {
	return func(w *Watcher) {
		w.now = now
	}
}

// WithOutput sets the notification writers.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(w *Watcher) {
		w.stdout = stdout
		w.stderr = stderr
	}
}

// New creates a Watcher.
func New(source events.Source, opts ...Option) *Watcher {
	w := &Watcher{
		source: source,
		now:    time.Now,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch blocks until the container reports healthy or unhealthy, or until the
// event stream ends. The event source and its channel are released before
// Watch returns, whatever the path out.
//
// A cancelled ctx abandons the watch; the returned error is the context's
// cause and no outcome is reported.
func (w *Watcher) Watch(ctx context.Context, req Request) (Outcome, error) {
	p := logging.NewPrinter(req.Display, w.stdout, w.stderr)

	outcome, err := w.watch(ctx, req, p)
	if err != nil {
		return outcome, err
	}

	w.notify(p, req, outcome)
	return outcome, nil
}

func (w *Watcher) watch(ctx context.Context, req Request, p logging.Printer) (Outcome, error) {
	log := logging.With("container", req.Container)

	if w.inspector != nil {
		status, err := w.inspector.CurrentHealth(ctx, req.Container)
		switch {
		case err != nil:
			log.Debug("current health unavailable, watching events", "error", err)
		case status.IsTerminal():
			log.Debug("container already in terminal state", "status", status)
			return outcomeFor(status), nil
		case status == health.StatusStarting:
			p.Info("Container %s is starting", req.Container)
		}
	}

	window := req.Window(w.now())

	ch, err := events.OpenChannel()
	if err != nil {
		return TimedOut, errors.ResourceUnavailable("opening event channel", err)
	}
	defer func() {
		if err := ch.Close(); err != nil {
			log.Warn("closing event channel", "channel", ch.ID(), "error", err)
		}
	}()

	log = log.With("channel", ch.ID())
	log.Debug("watching health events", "since", window.Since.Unix(), "until", untilAttr(window))

	lines, proc, err := w.source.Start(ctx, ch, req.Container, window)
	if err != nil {
		if ctx.Err() != nil {
			return TimedOut, context.Cause(ctx)
		}
		return TimedOut, err
	}
	defer proc.Stop()

	log = log.With("pid", proc.Pid())

	for {
		line, ok := lines.Next(ctx)
		if !ok {
			if ctx.Err() != nil {
				log.Debug("watch interrupted")
				return TimedOut, context.Cause(ctx)
			}
			if err := lines.Err(); err != nil {
				log.Warn("reading event stream", "error", err)
			}
			log.Debug("event stream ended without a terminal status")
			return TimedOut, nil
		}

		status := health.Classify(line)
		switch status {
		case health.StatusHealthy, health.StatusUnhealthy:
			log.Debug("terminal health status", "status", status)
			return outcomeFor(status), nil
		case health.StatusStarting:
			p.Info("Container %s is starting", req.Container)
		default:
			log.Debug("ignoring event line", "line", line)
		}
	}
}

func (w *Watcher) notify(p logging.Printer, req Request, outcome Outcome) {
	switch outcome {
	case Healthy:
		p.Success("Container %s is healthy", req.Container)
	case Unhealthy:
		p.Failure("Container %s is unhealthy", req.Container)
	case TimedOut:
		if req.Timeout > 0 {
			p.Failure("Timed out after %s waiting for container %s to become healthy", req.Timeout, req.Container)
		} else {
			p.Failure("Event stream for container %s ended without a health status", req.Container)
		}
	}
}

func outcomeFor(s health.Status) Outcome {
	if s == health.StatusHealthy {
		return Healthy
	}
	return Unhealthy
}

func untilAttr(w events.Window) any {
	if !w.Bounded() {
		return "none"
	}
	return w.Until.Unix()
}
