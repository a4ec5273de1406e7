package health

import "strings"

// Status represents the health status reported for a container
type Status string

const (
	StatusStarting  Status = "starting"
	StatusHealthy   Status = "healthy"
	StatusUnhealthy Status = "unhealthy"
	StatusUnknown   Status = "unknown"

	// EventPrefix starts every health status event line.
	EventPrefix = "health_status: "
)

// Classify maps a single event line to a Status. The match is exact: the
// line must be the prefix followed by a known state and nothing else, apart
// from a trailing line terminator.
func Classify(line string) Status {
	line = strings.TrimRight(line, "\r\n")

	state, ok := strings.CutPrefix(line, EventPrefix)
	if !ok {
		return StatusUnknown
	}

	return Parse(state)
}

// Parse maps a bare state name, as reported by the engine's inspect output,
// to a Status.
func Parse(state string) Status {
	switch Status(state) {
	case StatusStarting:
		return StatusStarting
	case StatusHealthy:
		return StatusHealthy
	case StatusUnhealthy:
		return StatusUnhealthy
	default:
		return StatusUnknown
	}
}

// IsTerminal reports whether the status ends a watch.
func (s Status) IsTerminal() bool {
	return s == StatusHealthy || s == StatusUnhealthy
}

// EventLine returns the event line the engine emits for s.
func (s Status) EventLine() string {
	return EventPrefix + string(s)
}
