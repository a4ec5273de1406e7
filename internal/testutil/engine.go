package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shirou/gopsutil/v3/process"

	"github.com/firefly-engineering/firefly-forage/packages/forage-wait/internal/runtime"
)

// FakeEngine is a runtime.Engine whose binary is a generated shell script.
type FakeEngine struct {
	*runtime.Engine

	// ArgsFile receives the script's arguments, one per line.
	ArgsFile string

	// PidFile receives the script's process id.
	PidFile string
}

// NewFakeEngine writes an engine script running body and returns it.
func NewFakeEngine(t *testing.T, body string) *FakeEngine {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "engine")
	argsFile := filepath.Join(dir, "args")
	pidFile := filepath.Join(dir, "pid")

	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$@\" > %q\necho $$ > %q\n%s", argsFile, pidFile, body)
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake engine: %v", err)
	}

	return &FakeEngine{
		Engine:   runtime.NewEngine(path, nil),
		ArgsFile: argsFile,
		PidFile:  pidFile,
	}
}

// EmitLines returns a script fragment printing each line.
func EmitLines(lines ...string) string {
	var b strings.Builder
	for _, line := range lines {
		fmt.Fprintf(&b, "printf '%%s\\n' %q\n", line)
	}
	return b.String()
}

// Args returns the arguments the script was invoked with.
func (f *FakeEngine) Args(t *testing.T) []string {
	t.Helper()

	data := waitForFile(t, f.ArgsFile)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

// Pid returns the process id the script recorded.
func (f *FakeEngine) Pid(t *testing.T) int {
	t.Helper()

	data := waitForFile(t, f.PidFile)
	var pid int
	if _, err := fmt.Sscanf(string(data), "%d", &pid); err != nil {
		t.Fatalf("Failed to parse pid file: %v", err)
	}
	return pid
}

func waitForFile(t *testing.T, path string) []byte {
	t.Helper()

	var data []byte
	op := func() error {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return err
		}
		if len(data) == 0 || data[len(data)-1] != '\n' {
			return fmt.Errorf("%s incomplete", path)
		}
		return nil
	}

	if err := backoff.Retry(op, backoff.WithMaxRetries(backoff.NewConstantBackOff(10*time.Millisecond), 500)); err != nil {
		t.Fatalf("Timed out waiting for %s: %v", path, err)
	}
	return data
}

// ProcessRunning reports whether pid is a live process.
func ProcessRunning(t *testing.T, pid int) bool {
	t.Helper()

	exists, err := process.PidExists(int32(pid))
	if err != nil {
		t.Fatalf("Failed to look up pid %d: %v", pid, err)
	}
	return exists
}
