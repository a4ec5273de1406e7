package watch

import (
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/errors"
)

// Outcome is the terminal result of a watch.
type Outcome int

const (
	Healthy Outcome = iota
	Unhealthy
	TimedOut
)

func (o Outcome) String() string {
	switch o {
	case Healthy:
		return "healthy"
	case Unhealthy:
		return "unhealthy"
	case TimedOut:
		return "timed-out"
	default:
		return "unknown"
	}
}

// ExitCode maps the outcome to the process exit code.
func (o Outcome) ExitCode() int {
	if o == Healthy {
		return errors.ExitSuccess
	}
	return errors.ExitGeneralError
}

// Err returns the error reported for a failed outcome, or nil for Healthy.
func (o Outcome) Err(container string) error {
	switch o {
	case Healthy:
		return nil
	case Unhealthy:
		return errors.Unhealthy(container)
	default:
		return errors.TimedOut(container)
	}
}
