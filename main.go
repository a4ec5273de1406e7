package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sys/unix"

	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/cmd"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/errors"
)

// killSelf delivers a signal to this process.
var killSelf = func(sig syscall.Signal) error {
	return unix.Kill(os.Getpid(), sig)
}

func main() {
	err := cmd.Execute()
	if sig, ok := errors.InterruptSignal(err); ok {
		reraise(sig)
	}
	os.Exit(errors.GetExitCode(err))
}

// reraise terminates the process with sig under its default disposition.
func reraise(sig os.Signal) {
	s, ok := sig.(syscall.Signal)
	if !ok {
		return
	}
	signal.Reset(s)
	if err := killSelf(s); err != nil {
		return
	}
	// Delivery is asynchronous; fall back to the shell convention if it
	// has not landed.
	time.Sleep(time.Second)
	os.Exit(128 + int(s))
}
