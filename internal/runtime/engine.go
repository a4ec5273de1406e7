package runtime

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/health"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/system"
)

// HealthEvent is the engine event kind emitted on health check transitions.
const HealthEvent = "health_status"

// Event line templates. Docker puts the whole "health_status: <state>" text
// in .Status; podman reports the bare event name there and the state in
// .HealthStatus.
const (
	dockerEventFormat = "{{.Status}}"
	podmanEventFormat = HealthEvent + ": {{.HealthStatus}}"
)

// Engine is a container engine CLI.
type Engine struct {
	// Command is the engine binary (docker, podman, or an absolute path)
	Command string

	// Type selects the event line format. Empty means docker.
	Type RuntimeType

	exec system.CommandExecutor
}

// NewEngine returns an Engine running command through exec.
// A nil exec uses system.DefaultExecutor().
func NewEngine(command string, exec system.CommandExecutor) *Engine {
	if exec == nil {
		exec = system.DefaultExecutor()
	}
	return &Engine{Command: command, exec: exec}
}

// Name returns the engine identifier
func (e *Engine) Name() string {
	return e.Command
}

// EventsArgs returns the arguments that make the engine stream the health
// status of a single container, one status per line. A zero until leaves the
// stream open until the process is stopped.
func (e *Engine) EventsArgs(containerID string, since, until time.Time) []string {
	args := []string{
		"events",
		"--filter", "event=" + HealthEvent,
		"--filter", "container=" + containerID,
	}

	if !since.IsZero() {
		args = append(args, "--since", strconv.FormatInt(since.Unix(), 10))
	}
	if !until.IsZero() {
		args = append(args, "--until", strconv.FormatInt(until.Unix(), 10))
	}

	return append(args, "--format", e.eventFormat())
}

func (e *Engine) eventFormat() string {
	if e.Type == RuntimePodman {
		return podmanEventFormat
	}
	return dockerEventFormat
}

// CurrentHealth returns the container's present health status.
// Containers without a health check report StatusUnknown.
func (e *Engine) CurrentHealth(ctx context.Context, containerID string) (health.Status, error) {
	logging.Debug("inspecting container health", "container", containerID, "runtime", e.Command)

	out, err := e.exec.Execute(ctx, e.Command, "inspect",
		"--type", "container",
		"--format", "{{if .State.Health}}{{.State.Health.Status}}{{end}}",
		containerID)
	if err != nil {
		return health.StatusUnknown, fmt.Errorf("%s inspect %s failed: %w", e.Command, containerID, err)
	}

	return health.Parse(strings.TrimSpace(string(out))), nil
}
