package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/bashhack/gitpix/internal/errors"
)

// CommandExecutor runs external commands on behalf of the committer
type CommandExecutor interface {
	// Execute runs a prepared command and returns an error on non-zero exit
	Execute(ctx context.Context, cmd *exec.Cmd) error

	// ExecuteWithOutput runs a prepared command and returns its stdout
	ExecuteWithOutput(ctx context.Context, cmd *exec.Cmd) (string, error)

	// ExecuteWithContext builds and runs name with args
	ExecuteWithContext(ctx context.Context, name string, args ...string) error

	// ExecuteWithContextAndOutput builds and runs name with args, returning stdout
	ExecuteWithContextAndOutput(ctx context.Context, name string, args ...string) (string, error)

	// ExecuteWithEnv runs name with args in the inherited environment plus the
	// given overrides. The overrides apply to this invocation only.
	ExecuteWithEnv(ctx context.Context, env map[string]string, name string, args ...string) error
}

// ExecExecutor is the default implementation of CommandExecutor
// that delegates to the os/exec package
type ExecExecutor struct{}

// NewExecExecutor creates a new ExecExecutor
func NewExecExecutor() *ExecExecutor {
	return &ExecExecutor{}
}

// Execute implements CommandExecutor.Execute
func (e *ExecExecutor) Execute(ctx context.Context, cmd *exec.Cmd) error {
	var stderr bytes.Buffer
	if cmd.Stderr == nil {
		cmd.Stderr = &stderr
	}

	if err := cmd.Run(); err != nil {
		return commandError(cmd, err, stderr.String())
	}
	return nil
}

// ExecuteWithOutput implements CommandExecutor.ExecuteWithOutput
func (e *ExecExecutor) ExecuteWithOutput(ctx context.Context, cmd *exec.Cmd) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", commandError(cmd, err, stderr.String())
	}

	return stdout.String(), nil
}

// ExecuteWithContext implements CommandExecutor.ExecuteWithContext
func (e *ExecExecutor) ExecuteWithContext(ctx context.Context, name string, args ...string) error {
	return e.Execute(ctx, exec.CommandContext(ctx, name, args...))
}

// ExecuteWithContextAndOutput implements CommandExecutor.ExecuteWithContextAndOutput
func (e *ExecExecutor) ExecuteWithContextAndOutput(ctx context.Context, name string, args ...string) (string, error) {
	return e.ExecuteWithOutput(ctx, exec.CommandContext(ctx, name, args...))
}

// ExecuteWithEnv implements CommandExecutor.ExecuteWithEnv
func (e *ExecExecutor) ExecuteWithEnv(ctx context.Context, env map[string]string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = MergeEnv(os.Environ(), env)
	return e.Execute(ctx, cmd)
}

// MergeEnv appends overrides to base in key order. os/exec keeps the last
// value of a duplicated key, so an override replaces any inherited value.
func MergeEnv(base []string, overrides map[string]string) []string {
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	merged := make([]string, 0, len(base)+len(keys))
	merged = append(merged, base...)
	for _, k := range keys {
		merged = append(merged, k+"="+overrides[k])
	}
	return merged
}

// commandError wraps a failed run in a GitError carrying stderr. Both the
// sentinel and the original *exec.ExitError stay reachable through errors.As.
func commandError(cmd *exec.Cmd, err error, stderr string) error {
	operation, args := splitOperation(cmd.Args)
	wrappedErr := fmt.Errorf("%w: %w", errors.ErrGitOperationFailed, err)
	return errors.NewGitError(operation, args, wrappedErr, stderr)
}

// splitOperation finds the git subcommand in argv, skipping global options
// such as "-C <path>". For other programs the program name is the operation.
func splitOperation(argv []string) (string, []string) {
	if len(argv) == 0 {
		return "", nil
	}
	if argv[0] != "git" {
		return argv[0], argv[1:]
	}
	for i := 1; i < len(argv); i++ {
		switch {
		case argv[i] == "-C":
			i++
		case strings.HasPrefix(argv[i], "-"):
		default:
			return argv[i], argv[i+1:]
		}
	}
	return "git", argv[1:]
}
