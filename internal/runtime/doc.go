// Package runtime locates the container engine CLI and builds the commands
// forage-wait runs against it.
//
// Supported engines:
//   - docker
//   - podman
//
// Engine selection is automatic unless configured; detection tries docker
// first. Both engines stream one "health_status: <state>" line per event:
// docker through {{.Status}}, podman through {{.HealthStatus}}.
//
// The engine is used two ways:
//   - EventsArgs builds the argv for the long-lived event stream consumed by
//     the events package.
//   - CurrentHealth runs a one-shot inspect through a system.CommandExecutor.
package runtime
