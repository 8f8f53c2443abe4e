//go:build integration

package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

func requireIntegration(t *testing.T) {
	t.Helper()
	if os.Getenv("GITPIX_INTEGRATION_TESTS") != "1" {
		t.Skip("Skipping integration test. Set GITPIX_INTEGRATION_TESTS=1 to run")
	}
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

// buildGitpix compiles the CLI into a temp dir and returns the binary path.
func buildGitpix(t *testing.T) string {
	t.Helper()

	bin := filepath.Join(t.TempDir(), "gitpix")
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/gitpix")
	cmd.Dir = filepath.Join("..", "..")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build gitpix: %v\n%s", err, out)
	}
	return bin
}

// setupTestRepo initializes an empty repository with a local identity.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	for _, args := range [][]string{
		{"init", dir},
		{"-C", dir, "config", "user.email", "test@example.com"},
		{"-C", dir, "config", "user.name", "Test User"},
		{"-C", dir, "config", "commit.gpgsign", "false"},
	} {
		if out, err := exec.Command("git", args...).CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
	return dir
}

// runGitpix runs the binary with an isolated environment.
func runGitpix(t *testing.T, bin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(bin, args...)
	cmd.Env = append(os.Environ(),
		"XDG_DATA_HOME="+t.TempDir(),
		"GITPIX_CONFIG=",
	)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := exec.Command("git", append([]string{"-C", dir}, args...)...).Output()
	if err != nil {
		t.Fatalf("git %v failed: %v", args, err)
	}
	return strings.TrimSpace(string(out))
}
