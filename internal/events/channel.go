package events

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

// maxLineSize bounds a single event line.
const maxLineSize = 64 * 1024

// Channel carries event lines from the event source to the watcher.
// It is an anonymous pipe tagged with a unique identifier.
type Channel struct {
	id string
	r  *os.File
	w  *os.File

	mu          sync.Mutex
	writeClosed bool
	closed      bool

	stop      chan struct{}
	linesOnce sync.Once
	lines     *lineStream
}

// OpenChannel creates a new Channel.
func OpenChannel() (*Channel, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("creating event pipe: %w", err)
	}

	return &Channel{
		id:   uuid.NewString(),
		r:    r,
		w:    w,
		stop: make(chan struct{}),
	}, nil
}

// ID returns the channel's unique identifier.
func (c *Channel) ID() string {
	return c.id
}

// Writer returns the write end of the channel, handed to the producer.
func (c *Channel) Writer() *os.File {
	return c.w
}

// CloseWriter closes the parent's copy of the write end so that the reader
// sees end of stream once the producer exits.
func (c *Channel) CloseWriter() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.writeClosed {
		return nil
	}
	c.writeClosed = true
	return ignoreClosed(c.w.Close())
}

// Lines returns the line sequence read from the channel. Every call returns
// the same sequence.
func (c *Channel) Lines() Lines {
	c.linesOnce.Do(func() {
		c.lines = newLineStream(c.r, c.stop)
	})
	return c.lines
}

// Close releases both ends of the channel and unblocks the line reader.
// It is idempotent.
func (c *Channel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	close(c.stop)

	var errs []error
	if !c.writeClosed {
		c.writeClosed = true
		errs = append(errs, ignoreClosed(c.w.Close()))
	}
	errs = append(errs, ignoreClosed(c.r.Close()))

	return errors.Join(errs...)
}

func ignoreClosed(err error) error {
	if errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}

// lineStream scans a reader on its own goroutine and hands lines over an
// unbuffered channel, so lines are observed in emission order.
type lineStream struct {
	lines chan string
	done  chan struct{}
	err   error
}

func newLineStream(r io.Reader, stop <-chan struct{}) *lineStream {
	s := &lineStream{
		lines: make(chan string),
		done:  make(chan struct{}),
	}

	go func() {
		defer close(s.lines)
		defer close(s.done)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

		for scanner.Scan() {
			select {
			case s.lines <- scanner.Text():
			case <-stop:
				return
			}
		}

		if err := scanner.Err(); err != nil && !errors.Is(err, os.ErrClosed) {
			s.err = err
		}
	}()

	return s
}

func (s *lineStream) Next(ctx context.Context) (string, bool) {
	select {
	case line, ok := <-s.lines:
		return line, ok
	case <-ctx.Done():
		return "", false
	}
}

func (s *lineStream) Err() error {
	select {
	case <-s.done:
		return s.err
	default:
		return nil
	}
}
