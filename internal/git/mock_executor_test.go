package git

import (
	"context"
	"fmt"
	"os/exec"
	"sync"
)

// recordedCall is one invocation seen by MockCommandExecutor.
type recordedCall struct {
	Name string
	Args []string
	Env  map[string]string
}

// MockCommandExecutor records calls instead of running anything.
type MockCommandExecutor struct {
	mu     sync.Mutex
	Calls  []recordedCall
	Output string

	// Probes holds ExecuteWithContext calls such as the repository check.
	Probes []recordedCall

	// FailOn makes the nth call (1-based) of ExecuteWithEnv fail.
	FailOn map[int]bool

	// OnCall runs after each ExecuteWithEnv call is recorded.
	OnCall func(n int)

	ExecuteWithContextFn func(ctx context.Context, name string, args ...string) error
}

func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{FailOn: map[int]bool{}}
}

func (m *MockCommandExecutor) record(name string, args []string, env map[string]string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := make(map[string]string, len(env))
	for k, v := range env {
		copied[k] = v
	}
	m.Calls = append(m.Calls, recordedCall{Name: name, Args: append([]string(nil), args...), Env: copied})
	return len(m.Calls)
}

// Execute implements the CommandExecutor interface
func (m *MockCommandExecutor) Execute(ctx context.Context, cmd *exec.Cmd) error {
	m.record(cmd.Args[0], cmd.Args[1:], nil)
	return nil
}

// ExecuteWithOutput implements the CommandExecutor interface
func (m *MockCommandExecutor) ExecuteWithOutput(ctx context.Context, cmd *exec.Cmd) (string, error) {
	m.record(cmd.Args[0], cmd.Args[1:], nil)
	return m.Output, nil
}

// ExecuteWithContext implements the CommandExecutor interface
func (m *MockCommandExecutor) ExecuteWithContext(ctx context.Context, name string, args ...string) error {
	m.mu.Lock()
	m.Probes = append(m.Probes, recordedCall{Name: name, Args: append([]string(nil), args...)})
	m.mu.Unlock()

	if m.ExecuteWithContextFn != nil {
		return m.ExecuteWithContextFn(ctx, name, args...)
	}
	return nil
}

// ExecuteWithContextAndOutput implements the CommandExecutor interface
func (m *MockCommandExecutor) ExecuteWithContextAndOutput(ctx context.Context, name string, args ...string) (string, error) {
	m.record(name, args, nil)
	return m.Output, nil
}

// ExecuteWithEnv implements the CommandExecutor interface
func (m *MockCommandExecutor) ExecuteWithEnv(ctx context.Context, env map[string]string, name string, args ...string) error {
	n := m.record(name, args, env)
	if m.OnCall != nil {
		m.OnCall(n)
	}
	if m.FailOn[n] {
		return commandError(exec.Command(name, args...), fmt.Errorf("exit status 1"), "fatal: simulated failure")
	}
	return nil
}
