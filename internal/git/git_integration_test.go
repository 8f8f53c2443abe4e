package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bashhack/gitpix/internal/calendar"
	"github.com/bashhack/gitpix/internal/errors"
	"github.com/bashhack/gitpix/internal/logger"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available in PATH")
	}
}

// setupTestRepo initializes a throwaway repository with a local identity.
func setupTestRepo(t *testing.T) string {
	t.Helper()
	requireGit(t)

	dir := t.TempDir()
	for _, args := range [][]string{
		{"init", dir},
		{"-C", dir, "config", "user.email", "test@example.com"},
		{"-C", dir, "config", "user.name", "Test User"},
		{"-C", dir, "config", "commit.gpgsign", "false"},
		{"-C", dir, "config", "core.hooksPath", filepath.Join(dir, ".git", "hooks")},
	} {
		if out, err := exec.Command("git", args...).CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}
	return dir
}

func gitOutput(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := exec.Command("git", append([]string{"-C", dir}, args...)...).Output()
	require.NoError(t, err, "git %v", args)
	return strings.TrimSpace(string(out))
}

func TestRunAgainstRealRepository(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)
	log := logger.New(false, "", false)

	c, err := NewCommitterWithDeps(
		CommitterConfig{RepoPath: repo, MessagePrefix: DefaultMessagePrefix},
		log,
		NewExecExecutor(),
		calendar.DefaultAnchor(),
		fixedClock,
	)
	require.NoError(t, err)

	g := weighted(2, [2]int{0, 0})
	g[0][40] = 1
	g[6][51] = 1

	report, err := c.Run(context.Background(), g)
	require.NoError(t, err)
	assert.True(t, report.OK(), "failures: %v", report.Failures())

	assert.Equal(t, "4", gitOutput(t, repo, "rev-list", "--count", "HEAD"))

	// Both dates carry the full wall-clock time in the commit's own zone.
	dates := strings.Split(gitOutput(t, repo, "log", "--reverse", "--format=%ad %cd",
		"--date=format:%Y-%m-%dT%H:%M:%S"), "\n")
	assert.Equal(t, []string{
		"2024-02-18T12:00:00 2024-02-18T12:00:00",
		"2024-02-18T12:00:00 2024-02-18T12:00:00",
		"2024-11-24T12:00:00 2024-11-24T12:00:00",
		"2025-02-15T12:00:00 2025-02-15T12:00:00",
	}, dates)

	subjects := strings.Split(gitOutput(t, repo, "log", "--reverse", "--format=%s"), "\n")
	assert.Equal(t, []string{"pixel #1", "pixel #2", "pixel #3", "pixel #4"}, subjects)

	assert.Empty(t, gitOutput(t, repo, "status", "--porcelain"))
}

func TestRunRefusesNonRepository(t *testing.T) {
	t.Parallel()
	requireGit(t)

	notRepo := t.TempDir()
	c, _ := setupTestCommitter(t, CommitterConfig{RepoPath: notRepo}, NewExecExecutor())

	report, err := c.Run(context.Background(), weighted(1, [2]int{0, 0}))
	assert.Nil(t, report)
	require.True(t, errors.Is(err, errors.ErrNotGitRepository), "got %v", err)
}

func TestRunRecordsRealGitFailures(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)

	hook := filepath.Join(repo, ".git", "hooks", "pre-commit")
	require.NoError(t, os.MkdirAll(filepath.Dir(hook), 0o755))
	require.NoError(t, os.WriteFile(hook, []byte("#!/bin/sh\necho 'rejected by hook' >&2\nexit 1\n"), 0o755))

	c, out := setupTestCommitter(t, CommitterConfig{RepoPath: repo}, NewExecExecutor())

	report, err := c.Run(context.Background(), weighted(1, [2]int{0, 0}, [2]int{1, 0}))
	require.NoError(t, err)

	assert.Equal(t, 2, report.Attempted)
	assert.Equal(t, 2, report.Failed)
	assert.Contains(t, out.stderr.String(), "ERROR on commit 1: rejected by hook")
	assert.Contains(t, out.stderr.String(), "ERROR on commit 2: rejected by hook")
	assert.Equal(t, "0", gitOutput(t, repo, "rev-list", "--all", "--count"))
}

func TestIsRepository(t *testing.T) {
	t.Parallel()

	repo := setupTestRepo(t)

	ok, err := IsRepository(repo)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = IsRepository(t.TempDir())
	require.NoError(t, err)
	assert.False(t, ok)
}
