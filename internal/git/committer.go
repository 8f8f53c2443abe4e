package git

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/bashhack/gitpix/internal/calendar"
	"github.com/bashhack/gitpix/internal/errors"
	"github.com/bashhack/gitpix/internal/grid"
	"github.com/bashhack/gitpix/internal/logger"
)

const (
	// DefaultMessagePrefix labels every generated commit: "pixel #1", "pixel #2", ...
	DefaultMessagePrefix = "pixel"

	// DefaultProgressEvery is how many attempts pass between progress lines.
	DefaultProgressEvery = 200

	// AuthorDateEnv and CommitterDateEnv carry the forged timestamp to git.
	AuthorDateEnv    = "GIT_AUTHOR_DATE"
	CommitterDateEnv = "GIT_COMMITTER_DATE"
)

// CommitterConfig contains configuration for a commit run.
type CommitterConfig struct {
	// RepoPath is the repository the commits are appended to.
	RepoPath string

	// MessagePrefix starts each commit message; the sequence number follows.
	MessagePrefix string

	// ProgressEvery prints a progress line each time this many commits have
	// been attempted. Zero disables progress lines.
	ProgressEvery int
}

// Validate sanity-checks the config and returns an error if something is wrong.
func (c *CommitterConfig) Validate() error {
	if c.RepoPath == "" {
		return errors.New("RepoPath must not be empty")
	}
	if c.MessagePrefix == "" {
		return errors.New("MessagePrefix must not be empty")
	}
	if c.ProgressEvery < 0 {
		return errors.Errorf("ProgressEvery cannot be negative (got %d)", c.ProgressEvery)
	}
	return nil
}

// Committer turns a shaded grid into backdated empty commits: for every cell,
// one commit per unit of weight, dated at midday of the cell's day.
type Committer struct {
	config   CommitterConfig
	logger   logger.Logger
	executor CommandExecutor
	anchor   calendar.Anchor
	now      func() time.Time
}

// NewCommitter creates a Committer with the exec-based executor, the default
// Sunday anchor and the system clock.
func NewCommitter(config CommitterConfig, logger logger.Logger) (*Committer, error) {
	return NewCommitterWithDeps(config, logger, NewExecExecutor(), calendar.DefaultAnchor(), time.Now)
}

// NewCommitterWithDeps creates a Committer with custom dependencies
func NewCommitterWithDeps(
	config CommitterConfig,
	logger logger.Logger,
	executor CommandExecutor,
	anchor calendar.Anchor,
	now func() time.Time,
) (*Committer, error) {
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid committer configuration")
	}
	if anchor == nil {
		anchor = calendar.DefaultAnchor()
	}
	if now == nil {
		now = time.Now
	}

	return &Committer{
		config:   config,
		logger:   logger,
		executor: executor,
		anchor:   anchor,
		now:      now,
	}, nil
}

// IsRepository checks if the given path is a git repository
// Returns true if it is a repository, false otherwise.
// If path is not a repository due to git exit code 128, returns (false, nil).
// For other errors (git not found, permission issues, etc), returns (false, err).
func IsRepository(path string) (bool, error) {
	return isRepository(context.Background(), NewExecExecutor(), path)
}

func isRepository(ctx context.Context, executor CommandExecutor, path string) (bool, error) {
	if err := executor.ExecuteWithContext(ctx, "git", "-C", path, "rev-parse", "--is-inside-work-tree"); err != nil {
		// 128 is git's generic fatal exit; for rev-parse it means no repository here.
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 128 {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Preflight checks that git can be run and that RepoPath is a repository.
func (c *Committer) Preflight(ctx context.Context) error {
	ok, err := isRepository(ctx, c.executor, c.config.RepoPath)
	if err != nil {
		return errors.Wrap(err, "failed to run git")
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotGitRepository, "%s", c.config.RepoPath)
	}
	return nil
}

// Start returns the epoch a run started now would use.
func (c *Committer) Start() time.Time {
	return c.anchor.Start(c.now())
}

// Run creates the commits for g in column-major order, so timestamps never
// decrease. A failed commit is recorded in the report and the run continues.
// Run returns an error when the preflight check fails, with a nil report, or
// when ctx is cancelled, with the partial report.
func (c *Committer) Run(ctx context.Context, g grid.Grid) (*Report, error) {
	if err := c.Preflight(ctx); err != nil {
		return nil, err
	}

	report := &Report{
		RunID: uuid.NewString(),
		Start: c.Start(),
		Total: g.TotalWeight(),
	}

	c.logger.Info("commit run %s started: repo=%s start=%s total=%d",
		report.RunID, c.config.RepoPath, calendar.Day(report.Start), report.Total)
	c.logger.StatusMessage("")
	c.logger.StatusMessage("Heatmap start date : %s", calendar.Day(report.Start))
	c.logger.StatusMessage("Commits to create  : %d", report.Total)
	c.logger.StatusMessage("")

	for _, cell := range g.Cells() {
		if cell.Weight <= 0 {
			continue
		}

		date := calendar.CellDate(report.Start, cell.Col, cell.Row)
		stamp := calendar.Timestamp(date)
		env := map[string]string{
			AuthorDateEnv:    stamp,
			CommitterDateEnv: stamp,
		}

		for i := 0; i < cell.Weight; i++ {
			if err := ctx.Err(); err != nil {
				report.Interrupted = true
				c.logger.Info("commit run %s interrupted after %d of %d commits", report.RunID, report.Attempted, report.Total)
				return report, err
			}

			report.Attempted++
			result := Result{
				Seq:  report.Attempted,
				Col:  cell.Col,
				Row:  cell.Row,
				Date: date,
				Err:  c.commitEmpty(ctx, report.Attempted, env),
			}
			if result.Err != nil {
				report.Failed++
				c.logger.Error("ERROR on commit %d: %s", result.Seq, result.Reason())
			}
			report.Results = append(report.Results, result)

			if c.config.ProgressEvery > 0 && report.Attempted%c.config.ProgressEvery == 0 {
				c.logger.StatusMessage("  %d / %d commits done...", report.Attempted, report.Total)
			}
		}
	}

	c.logger.Info("commit run %s finished: attempted=%d failed=%d", report.RunID, report.Attempted, report.Failed)
	return report, nil
}

// PrintSummary prints the outcome of a commit run
func (c *Committer) PrintSummary(report *Report) {
	c.logger.StatusMessage("")
	if report.Interrupted {
		c.logger.WarningToUser("Interrupted after %d of %d commits; the history is incomplete.", report.Attempted, report.Total)
	}
	c.logger.StatusMessage("Done!  %d of %d commits attempted,  %d created,  %d errors.",
		report.Attempted, report.Total, report.Created(), report.Failed)

	if created := report.Created(); created > 0 {
		c.logger.StatusMessage("To undo before pushing:  git reset --hard HEAD~%d", created)
	}
	if report.OK() {
		c.logger.StatusMessage("Run:  git push")
	}
}

// commitEmpty creates one contentless commit labelled with seq
func (c *Committer) commitEmpty(ctx context.Context, seq int, env map[string]string) error {
	msg := fmt.Sprintf("%s #%d", c.config.MessagePrefix, seq)
	return c.runGitCommandWithEnv(ctx, env, "commit", "--allow-empty", "-m", msg)
}

// runGitCommandWithEnv executes a git command in the repository directory
// with per-invocation environment overrides.
func (c *Committer) runGitCommandWithEnv(ctx context.Context, env map[string]string, args ...string) error {
	allArgs := append([]string{"-C", c.config.RepoPath}, args...)
	return c.executor.ExecuteWithEnv(ctx, env, "git", allArgs...)
}
