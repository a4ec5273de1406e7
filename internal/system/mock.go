package system

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

// MockExecutor implements CommandExecutor for testing.
type MockExecutor struct {
	mu sync.Mutex

	// Commands records all executed commands for verification.
	Commands []MockCommand

	// Responses maps command patterns to responses.
	// Key format: "command arg1"
	Responses map[string]MockResponse

	// DefaultResponse is used when no matching response is found.
	DefaultResponse MockResponse

	// Binaries lists the names LookPath resolves. Anything else is not found.
	Binaries map[string]string
}

// MockCommand records an executed command.
type MockCommand struct {
	Name string
	Args []string
}

// MockResponse defines the response for a command.
type MockResponse struct {
	Output []byte
	Err    error
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:  make([]MockCommand, 0),
		Responses: make(map[string]MockResponse),
		Binaries:  make(map[string]string),
	}
}

// AddResponse adds a response for a specific command pattern.
func (m *MockExecutor) AddResponse(pattern string, output []byte, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[pattern] = MockResponse{Output: output, Err: err}
}

// AddBinary makes LookPath resolve name to path.
func (m *MockExecutor) AddBinary(name, path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Binaries[name] = path
}

func (m *MockExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Commands = append(m.Commands, MockCommand{Name: name, Args: args})

	key := name
	if len(args) > 0 {
		key = name + " " + args[0]
	}

	if resp, ok := m.Responses[key]; ok {
		return resp.Output, resp.Err
	}
	if resp, ok := m.Responses[name]; ok {
		return resp.Output, resp.Err
	}

	return m.DefaultResponse.Output, m.DefaultResponse.Err
}

func (m *MockExecutor) LookPath(name string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if path, ok := m.Binaries[name]; ok {
		return path, nil
	}
	return "", &exec.Error{Name: name, Err: fmt.Errorf("executable file not found in $PATH")}
}

// LastCommand returns the most recently executed command.
func (m *MockExecutor) LastCommand() (MockCommand, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Commands) == 0 {
		return MockCommand{}, false
	}
	return m.Commands[len(m.Commands)-1], true
}

// Reset clears all recorded commands.
func (m *MockExecutor) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Commands = make([]MockCommand, 0)
}
