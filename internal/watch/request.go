package watch

import (
	"regexp"
	"strconv"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/events"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/logging"
)

// DefaultTimeout is used when no timeout is given.
const DefaultTimeout = 10 * time.Second

var (
	// timeoutPattern accepts whole, non-negative seconds.
	timeoutPattern = regexp.MustCompile(`^[0-9]+$`)

	// sincePattern accepts Unix seconds in 10-digit form.
	sincePattern = regexp.MustCompile(`^[0-9]{10}$`)
)

// Request is a validated watch request.
type Request struct {
	// Container is the container name or id.
	Container string

	// Since is the start of the event window.
	Since time.Time

	// Timeout bounds the event window. Zero waits indefinitely.
	Timeout time.Duration

	// Display controls user notifications.
	Display logging.Display
}

// NewRequest validates raw command line values. An empty since means now;
// an empty timeout means DefaultTimeout.
func NewRequest(container, since, timeout string, display logging.Display, now time.Time) (Request, error) {
	if container == "" {
		return Request{}, errors.InvalidRequest("container name or id is required")
	}

	req := Request{
		Container: container,
		Since:     time.Unix(now.Unix(), 0),
		Timeout:   DefaultTimeout,
		Display:   display,
	}

	if timeout != "" {
		if !timeoutPattern.MatchString(timeout) {
			return Request{}, errors.InvalidRequest("invalid timeout %q: must be a non-negative number of seconds", timeout)
		}
		secs, err := strconv.ParseInt(timeout, 10, 32)
		if err != nil {
			return Request{}, errors.InvalidRequest("invalid timeout %q: out of range", timeout)
		}
		req.Timeout = time.Duration(secs) * time.Second
	}

	if since != "" {
		if !sincePattern.MatchString(since) {
			return Request{}, errors.InvalidRequest("invalid since timestamp %q: must be a 10-digit Unix time", since)
		}
		secs, err := strconv.ParseInt(since, 10, 64)
		if err != nil {
			return Request{}, errors.InvalidRequest("invalid since timestamp %q", since)
		}
		req.Since = time.Unix(secs, 0)
	}

	if w := req.Window(now); w.Bounded() && w.Since.After(w.Until) {
		return Request{}, errors.InvalidRequest("since %d is after the deadline %d", w.Since.Unix(), w.Until.Unix())
	}

	return req, nil
}

// Window returns the event window for a watch starting at now.
func (r Request) Window(now time.Time) events.Window {
	w := events.Window{Since: r.Since}
	if r.Timeout > 0 {
		w.Until = time.Unix(now.Unix(), 0).Add(r.Timeout)
	}
	return w
}
