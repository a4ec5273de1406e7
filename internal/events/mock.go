package events

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MockSource is a Source that writes scripted lines into the channel.
// It goes through the real pipe, so the watcher reads exactly what the CLI
// source would deliver.
type MockSource struct {
	mu sync.Mutex

	// Lines are written in order, one per line.
	Lines []string

	// Delay is waited before each line.
	Delay time.Duration

	// HoldOpen keeps the stream open after the last line until Stop.
	// Without it the stream ends, as when the engine's window closes.
	HoldOpen bool

	// StartErr is returned by Start if set.
	StartErr error

	// Calls records every Start call.
	Calls []MockStart

	// Processes holds the handle returned by each successful Start.
	Processes []*MockProcess

	nextPid int
}

// MockStart records a Start call.
type MockStart struct {
	ContainerID string
	Window      Window
	ChannelID   string
}

// NewMockSource creates a MockSource emitting lines.
func NewMockSource(lines ...string) *MockSource {
	return &MockSource{
		Lines:   lines,
		nextPid: 4200,
	}
}

func (m *MockSource) Start(ctx context.Context, ch *Channel, containerID string, w Window) (Lines, Process, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockStart{ContainerID: containerID, Window: w, ChannelID: ch.ID()})

	if m.StartErr != nil {
		return nil, nil, m.StartErr
	}
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	m.nextPid++
	proc := &MockProcess{pid: m.nextPid, stopped: make(chan struct{}), exited: make(chan struct{})}
	m.Processes = append(m.Processes, proc)

	lines := append([]string(nil), m.Lines...)
	delay := m.Delay
	hold := m.HoldOpen

	go func() {
		defer close(proc.exited)
		defer ch.CloseWriter()

		for _, line := range lines {
			if delay > 0 {
				select {
				case <-time.After(delay):
				case <-proc.stopped:
					return
				}
			}
			if _, err := fmt.Fprintln(ch.Writer(), line); err != nil {
				return
			}
		}

		if hold {
			<-proc.stopped
		}
	}()

	return ch.Lines(), proc, nil
}

// Started returns the number of Start calls.
func (m *MockSource) Started() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// LastProcess returns the most recently started process.
func (m *MockSource) LastProcess() (*MockProcess, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Processes) == 0 {
		return nil, false
	}
	return m.Processes[len(m.Processes)-1], true
}

// MockProcess is the Process returned by MockSource.
type MockProcess struct {
	pid int

	mu        sync.Mutex
	stopCalls int
	stopped   chan struct{}
	exited    chan struct{}
}

func (p *MockProcess) Pid() int {
	return p.pid
}

func (p *MockProcess) Stop() {
	p.mu.Lock()
	p.stopCalls++
	first := p.stopCalls == 1
	p.mu.Unlock()

	if first {
		close(p.stopped)
	}
	<-p.exited
}

func (p *MockProcess) Exited() bool {
	select {
	case <-p.exited:
		return true
	default:
		return false
	}
}

// StopCalls returns how many times Stop was called.
func (p *MockProcess) StopCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stopCalls
}
