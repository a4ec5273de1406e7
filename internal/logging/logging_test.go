package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetup_TextOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Warn("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, true, &buf)

	Warn("test message", "key", "value")

	output := buf.String()
	if !strings.Contains(output, "{") {
		t.Errorf("Expected JSON output, got: %s", output)
	}
	if !strings.Contains(output, "test message") {
		t.Errorf("Expected 'test message' in output, got: %s", output)
	}
}

func TestSetup_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(true, false, &buf)

	Debug("debug message")
	Info("info message")

	output := buf.String()
	if !strings.Contains(output, "debug message") {
		t.Errorf("Debug message should appear in verbose mode, got: %s", output)
	}
	if !strings.Contains(output, "info message") {
		t.Errorf("Info message should appear in verbose mode, got: %s", output)
	}
}

func TestSetup_NonVerboseMode(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	Debug("debug message")
	Info("info message")

	if buf.Len() != 0 {
		t.Errorf("Debug and info should NOT appear in non-verbose mode, got: %s", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	Setup(false, false, &buf)

	logger := With("component", "test")
	if logger == nil {
		t.Fatal("With() returned nil")
	}

	logger.Warn("with test")

	output := buf.String()
	if !strings.Contains(output, "with test") {
		t.Errorf("Expected 'with test' in output, got: %s", output)
	}
	if !strings.Contains(output, "component") {
		t.Errorf("Expected 'component' in output, got: %s", output)
	}
}

func TestSetup_NilWriter(t *testing.T) {
	Setup(false, false, nil)

	if Logger == nil {
		t.Error("Logger should not be nil after Setup with nil writer")
	}
}

func TestPrinter_Monochrome(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(Display{Monochrome: true}, &out, &errOut)

	p.Success("container %s is healthy", "web1")
	p.Info("container %s is starting", "web1")
	p.Failure("container %s is unhealthy", "web1")

	wantOut := "✓ container web1 is healthy\nℹ container web1 is starting\n"
	if out.String() != wantOut {
		t.Errorf("stdout = %q, want %q", out.String(), wantOut)
	}

	wantErr := "✗ container web1 is unhealthy\n"
	if errOut.String() != wantErr {
		t.Errorf("stderr = %q, want %q", errOut.String(), wantErr)
	}
}

func TestPrinter_Quiet(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(Display{Quiet: true, Monochrome: true}, &out, &errOut)

	p.Success("healthy")
	p.Info("starting")
	p.Failure("unhealthy")

	if out.Len() != 0 {
		t.Errorf("stdout should be empty when quiet, got %q", out.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("stderr should be empty when quiet, got %q", errOut.String())
	}

	p.Error("bad timeout")
	if errOut.String() != "✗ bad timeout\n" {
		t.Errorf("Error() should write even when quiet, got %q", errOut.String())
	}
}

func TestPrinter_Colour(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(Display{}, &out, &errOut)

	p.Success("container web1 is healthy")

	if !strings.Contains(out.String(), "container web1 is healthy") {
		t.Errorf("stdout = %q, want it to contain the message", out.String())
	}
	if !strings.HasSuffix(out.String(), "\n") {
		t.Errorf("stdout = %q, want a trailing newline", out.String())
	}
	if errOut.Len() != 0 {
		t.Errorf("stderr should be empty, got %q", errOut.String())
	}
}

func TestNewPrinter_NilWriters(t *testing.T) {
	p := NewPrinter(Display{Quiet: true}, nil, nil)
	if p.Stderr() == nil {
		t.Error("Stderr() should default to os.Stderr")
	}
}
