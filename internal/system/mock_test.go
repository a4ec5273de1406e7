package system

import (
	"context"
	"errors"
	"os/exec"
	"testing"
)

func TestMockExecutor_Execute(t *testing.T) {
	exec := NewMockExecutor()
	exec.AddResponse("docker inspect", []byte("healthy\n"), nil)

	output, err := exec.Execute(context.Background(), "docker", "inspect", "web1")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if string(output) != "healthy\n" {
		t.Errorf("Output = %q, want %q", string(output), "healthy\n")
	}

	cmd, ok := exec.LastCommand()
	if !ok {
		t.Fatal("No command recorded")
	}
	if cmd.Name != "docker" {
		t.Errorf("Command name = %q, want %q", cmd.Name, "docker")
	}
	if len(cmd.Args) != 2 || cmd.Args[1] != "web1" {
		t.Errorf("Command args = %v, want [inspect web1]", cmd.Args)
	}
}

func TestMockExecutor_DefaultResponse(t *testing.T) {
	exec := NewMockExecutor()
	exec.DefaultResponse = MockResponse{Output: []byte("default"), Err: nil}

	output, err := exec.Execute(context.Background(), "unknown", "command")
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if string(output) != "default" {
		t.Errorf("Output = %q, want %q", string(output), "default")
	}
}

func TestMockExecutor_LookPath(t *testing.T) {
	m := NewMockExecutor()
	m.AddBinary("podman", "/usr/bin/podman")

	path, err := m.LookPath("podman")
	if err != nil {
		t.Fatalf("LookPath error: %v", err)
	}
	if path != "/usr/bin/podman" {
		t.Errorf("LookPath = %q, want %q", path, "/usr/bin/podman")
	}

	_, err = m.LookPath("docker")
	var execErr *exec.Error
	if !errors.As(err, &execErr) {
		t.Errorf("LookPath(docker) error = %v, want *exec.Error", err)
	}
}

func TestMockExecutor_Reset(t *testing.T) {
	exec := NewMockExecutor()
	exec.Execute(context.Background(), "cmd1")
	exec.Execute(context.Background(), "cmd2")

	if len(exec.Commands) != 2 {
		t.Errorf("Commands length = %d, want 2", len(exec.Commands))
	}

	exec.Reset()

	if len(exec.Commands) != 0 {
		t.Errorf("Commands length after reset = %d, want 0", len(exec.Commands))
	}
}

func TestDefaultExecutor_Swap(t *testing.T) {
	mock := NewMockExecutor()
	SetDefaultExecutor(mock)
	defer ResetDefaults()

	if DefaultExecutor() != mock {
		t.Error("DefaultExecutor() should return the mock after SetDefaultExecutor")
	}

	ResetDefaults()
	if _, ok := DefaultExecutor().(*osExecutor); !ok {
		t.Error("ResetDefaults() should restore the OS executor")
	}
}
