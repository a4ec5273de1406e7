package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/logging"
)

var interruptSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// stopNotify is signal.Stop, replaced in tests.
var stopNotify = signal.Stop

// interruptContext returns a context cancelled by one of sigs. The cause is
// an Interrupted error naming the signal, so the caller can die by the same
// signal once cleanup has run.
//
// Only the first signal is caught. The handler is removed as soon as it
// arrives, so a second one during cleanup gets the default disposition.
func interruptContext(parent context.Context, sigs ...os.Signal) (context.Context, func()) {
	ctx, cancel := context.WithCancelCause(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, sigs...)

	go func() {
		select {
		case sig := <-sigCh:
			stopNotify(sigCh)
			logging.Debug("received signal", "signal", sig)
			cancel(errors.Interrupted(sig))
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		stopNotify(sigCh)
		cancel(nil)
	}
}
