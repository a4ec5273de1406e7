package runtime

import (
	"fmt"

	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/system"
)

// RuntimeType identifies which container engine to use
type RuntimeType string

const (
	RuntimeDocker RuntimeType = "docker"
	RuntimePodman RuntimeType = "podman"
	RuntimeAuto   RuntimeType = "auto"
)

// Config holds runtime configuration
type Config struct {
	// Type specifies which engine to use (or "auto" for auto-detection)
	Type RuntimeType

	// Executor runs one-shot engine commands and resolves binaries.
	// Nil uses system.DefaultExecutor().
	Executor system.CommandExecutor
}

// DefaultConfig returns the default runtime configuration
func DefaultConfig() *Config {
	return &Config{
		Type: RuntimeAuto,
	}
}

// ParseType validates a runtime name from flags or the config file.
func ParseType(s string) (RuntimeType, error) {
	switch t := RuntimeType(s); t {
	case RuntimeDocker, RuntimePodman, RuntimeAuto:
		return t, nil
	case "":
		return RuntimeAuto, nil
	default:
		return "", fmt.Errorf("unknown runtime %q (want auto, docker or podman)", s)
	}
}

// Detect determines which container engine is available on the system.
func Detect(exec system.CommandExecutor) (RuntimeType, error) {
	if exec == nil {
		exec = system.DefaultExecutor()
	}

	for _, rt := range []RuntimeType{RuntimeDocker, RuntimePodman} {
		if _, err := exec.LookPath(string(rt)); err == nil {
			logging.Debug("detected container engine", "runtime", rt)
			return rt, nil
		}
	}

	return "", fmt.Errorf("no supported container engine found (tried: docker, podman)")
}

// New creates an Engine based on the configuration.
// If Type is RuntimeAuto, it auto-detects the engine.
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	exec := cfg.Executor
	if exec == nil {
		exec = system.DefaultExecutor()
	}

	runtimeType := cfg.Type
	if runtimeType == "" || runtimeType == RuntimeAuto {
		detected, err := Detect(exec)
		if err != nil {
			return nil, err
		}
		runtimeType = detected
	}

	logging.Debug("creating runtime", "type", runtimeType)

	switch runtimeType {
	case RuntimeDocker, RuntimePodman:
		path, err := exec.LookPath(string(runtimeType))
		if err != nil {
			return nil, fmt.Errorf("%s not found: %w", runtimeType, err)
		}
		e := NewEngine(path, exec)
		e.Type = runtimeType
		return e, nil
	default:
		return nil, fmt.Errorf("unknown runtime type: %s", runtimeType)
	}
}
