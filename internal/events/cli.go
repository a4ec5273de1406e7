package events

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"sync"
	"time"

	shellquote "github.com/kballard/go-shellquote"
	"golang.org/x/sys/unix"

	ferrors "github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/logging"
)

// DefaultStopGrace is how long Stop waits after SIGTERM before killing.
const DefaultStopGrace = 5 * time.Second

// CLISource runs the engine's events command as a child process.
type CLISource struct {
	// Builder supplies the engine binary and arguments.
	Builder CommandBuilder

	// StopGrace is the time allowed between SIGTERM and SIGKILL.
	StopGrace time.Duration
}

// NewCLISource creates a CLISource for the given engine.
func NewCLISource(b CommandBuilder, stopGrace time.Duration) *CLISource {
	if stopGrace <= 0 {
		stopGrace = DefaultStopGrace
	}
	return &CLISource{Builder: b, StopGrace: stopGrace}
}

// Start launches the engine's event stream with stdout wired to ch. Standard
// input and standard error are attached to the null device.
func (s *CLISource) Start(ctx context.Context, ch *Channel, containerID string, w Window) (Lines, Process, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	name := s.Builder.Name()
	args := s.Builder.EventsArgs(containerID, w.Since, w.Until)

	cmd := exec.Command(name, args...)
	cmd.Stdout = ch.Writer()

	logging.Debug("starting event source",
		"channel", ch.ID(),
		"container", containerID,
		"command", shellquote.Join(append([]string{name}, args...)...))

	if err := cmd.Start(); err != nil {
		return nil, nil, ferrors.ResourceUnavailable("starting event source", err)
	}

	if err := ch.CloseWriter(); err != nil {
		logging.Debug("closing parent write end", "channel", ch.ID(), "error", err)
	}

	grace := s.StopGrace
	if grace <= 0 {
		grace = DefaultStopGrace
	}

	return ch.Lines(), newCmdProcess(cmd, grace, ch.ID()), nil
}

// cmdProcess is the Process handle for an exec.Cmd.
type cmdProcess struct {
	cmd     *exec.Cmd
	grace   time.Duration
	channel string

	exited  chan struct{}
	waitErr error

	stopOnce sync.Once
}

func newCmdProcess(cmd *exec.Cmd, grace time.Duration, channel string) *cmdProcess {
	p := &cmdProcess{
		cmd:     cmd,
		grace:   grace,
		channel: channel,
		exited:  make(chan struct{}),
	}

	go func() {
		p.waitErr = cmd.Wait()
		logging.Debug("event source exited", "channel", channel, "pid", cmd.Process.Pid, "error", p.waitErr)
		// Closed last: once exited is closed the reaper touches nothing shared.
		close(p.exited)
	}()

	return p
}

func (p *cmdProcess) Pid() int {
	return p.cmd.Process.Pid
}

func (p *cmdProcess) Exited() bool {
	select {
	case <-p.exited:
		return true
	default:
		return false
	}
}

func (p *cmdProcess) Stop() {
	p.stopOnce.Do(p.stop)
}

func (p *cmdProcess) stop() {
	if p.Exited() {
		return
	}

	pid := p.Pid()
	if pid <= 1 {
		return
	}

	logging.Debug("stopping event source", "channel", p.channel, "pid", pid)
	// ESRCH means the reaper already collected the process; the wait below
	// still lets it finish.
	if err := unix.Kill(pid, unix.SIGTERM); err != nil && !errors.Is(err, unix.ESRCH) {
		logging.Warn("signalling event source", "pid", pid, "error", err)
	}

	timer := time.NewTimer(p.grace)
	defer timer.Stop()

	select {
	case <-p.exited:
	case <-timer.C:
		logging.Warn("event source ignored SIGTERM, killing", "pid", pid, "grace", p.grace)
		if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
			logging.Warn("killing event source", "pid", pid, "error", err)
		}
		<-p.exited
	}
}
