package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bashhack/gitpix/internal/calendar"
	"github.com/bashhack/gitpix/internal/config"
	"github.com/bashhack/gitpix/internal/constants"
	"github.com/bashhack/gitpix/internal/errors"
	"github.com/bashhack/gitpix/internal/git"
	"github.com/bashhack/gitpix/internal/grid"
	"github.com/bashhack/gitpix/internal/lock"
	"github.com/bashhack/gitpix/internal/logger"
	"github.com/bashhack/gitpix/internal/preview"
)

// commitHint is the invocation suggested at the end of the preview.
const commitHint = "gitpix --commit"

// Committer creates the commits for a shaded grid
type Committer interface {
	Run(ctx context.Context, g grid.Grid) (*git.Report, error)
	PrintSummary(report *git.Report)
}

// Locker manages file locking
type Locker interface {
	Acquire() error
	Release() error
}

// AppOptions contains app configuration and dependencies.
// Any optional dependency left nil is created during Initialize.
type AppOptions struct {
	// Config holds the application configuration settings (required).
	// The application will panic if this field is nil.
	Config *config.Config

	// Optional components

	// Logger provides logging functionality for internal and user-facing messages.
	Logger logger.Logger

	// Locker keeps two commit runs off the same repository.
	Locker Locker

	// Committer creates the commits in commit mode.
	Committer Committer

	// I/O dependencies

	// Stdout receives the preview and all progress output (defaults to os.Stdout).
	Stdout io.Writer

	// Stderr receives error messages (defaults to os.Stderr).
	Stderr io.Writer

	// System dependencies

	// Exit terminates the process (defaults to os.Exit).
	Exit func(code int)

	// ExecLookPath is used to locate the git executable (defaults to exec.LookPath).
	ExecLookPath func(file string) (string, error)

	// IsRepository validates the repository path (defaults to git.IsRepository).
	IsRepository func(string) (bool, error)

	// Now is the clock the heatmap epoch is computed from (defaults to time.Now).
	Now func() time.Time
}

// App is the main gitpix application.
// It wires configuration, logging, preview and the commit driver together.
type App struct {
	Config    *config.Config
	Logger    logger.Logger
	Locker    Locker
	Committer Committer

	Stdout io.Writer
	Stderr io.Writer

	exit         func(code int)
	execLookPath func(file string) (string, error)
	isRepository func(string) (bool, error)
	now          func() time.Time

	initialized bool

	// report is the outcome of the last commit run, if any.
	report *git.Report
}

// LoadConfig builds the configuration from defaults, the YAML file named in
// args or GITPIX_CONFIG, and the environment. Flags are applied later by
// the root command.
func LoadConfig(versionInfo config.VersionInfo, args []string) (*config.Config, error) {
	cfg := config.New()
	cfg.VersionInfo = versionInfo

	if path := config.FindConfigPath(args); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	cfg.LoadFromEnvironment()

	return cfg, nil
}

// NewDefaultApp creates an App with standard OS dependencies.
func NewDefaultApp(cfg *config.Config) *App {
	return NewApp(AppOptions{
		Config:       cfg,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Exit:         os.Exit,
		ExecLookPath: exec.LookPath,
		IsRepository: git.IsRepository,
		Now:          time.Now,
	})
}

// NewApp creates an App with custom dependencies specified in opts.
// It panics if opts.Config is nil.
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config:       opts.Config,
		Logger:       opts.Logger,
		Locker:       opts.Locker,
		Committer:    opts.Committer,
		Stdout:       opts.Stdout,
		Stderr:       opts.Stderr,
		exit:         opts.Exit,
		execLookPath: opts.ExecLookPath,
		isRepository: opts.IsRepository,
		now:          opts.Now,
	}

	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.exit == nil {
		app.exit = os.Exit
	}
	if app.execLookPath == nil {
		app.execLookPath = exec.LookPath
	}
	if app.isRepository == nil {
		app.isRepository = git.IsRepository
	}
	if app.now == nil {
		app.now = time.Now
	}

	return app
}

// Initialize finalizes the configuration and creates the components not
// provided during construction. It is safe to call more than once.
func (a *App) Initialize() error {
	if a.initialized {
		return nil
	}

	if err := a.Config.Finalize(); err != nil {
		if errors.Is(err, errors.ErrInvalidConfiguration) {
			return err
		}
		return errors.Wrap(errors.ErrInvalidConfiguration, err.Error())
	}

	if a.Logger == nil {
		a.Logger = logger.NewWithOutput(a.Config.Debug, a.Config.LogFile, a.Config.Verbose, a.Stdout, a.Stderr)
	}

	if a.Locker == nil {
		locker, err := lock.New(a.Config.RepoPath)
		if err != nil {
			return errors.Wrap(err, "failed to initialize lock")
		}
		a.Locker = locker
	}

	if a.Committer == nil {
		committer, err := git.NewCommitterWithDeps(
			git.CommitterConfig{
				RepoPath:      a.Config.RepoPath,
				MessagePrefix: a.Config.MessagePrefix,
				ProgressEvery: a.Config.ProgressEvery,
			},
			a.Logger,
			git.NewExecExecutor(),
			calendar.DefaultAnchor(),
			a.now,
		)
		if err != nil {
			return fmt.Errorf("failed to create committer: %w", err)
		}
		a.Committer = committer
	}

	a.initialized = true
	return nil
}

// Run executes the mode selected by the configuration: version, logo,
// preview (the default) or commit.
func (a *App) Run(ctx context.Context) error {
	if err := a.Initialize(); err != nil {
		return err
	}

	if a.Config.Version {
		a.ShowVersion()
		return nil
	}

	if a.Config.ShowLogo {
		a.ShowLogo()
		return nil
	}

	defer func() {
		if err := a.Close(); err != nil {
			_, _ = fmt.Fprintf(a.Stderr, "❌ Error during cleanup: %v\n", err)
		}
	}()

	g := grid.Build(grid.DefaultLayout(), a.Config.Weight)
	if !a.Config.Commit {
		return a.runPreview(g)
	}
	return a.runCommits(ctx, g)
}

func (a *App) runPreview(g grid.Grid) error {
	start := calendar.HeatmapStart(a.now())
	stats, err := preview.New(a.Stdout, a.Config.Weight, commitHint).Render(g, start)
	if err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	a.Logger.Info("preview rendered: filled=%d total=%d start=%s", stats.Filled, stats.Total, calendar.Day(start))
	return nil
}

func (a *App) runCommits(ctx context.Context, g grid.Grid) error {
	if err := a.checkRequiredCommands(); err != nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error: %v. Please install it and try again.\n", err)
		return err
	}

	isRepo, err := a.isRepository(a.Config.RepoPath)
	if err != nil {
		a.Logger.Warning("Failed to check if path is a git repository: %v", err)
		return errors.Wrap(errors.ErrGitOperationFailed, err.Error())
	}
	if !isRepo {
		return errors.Wrapf(errors.ErrNotGitRepository, "%s", a.Config.RepoPath)
	}
	a.Logger.Info("Git repository verified: %s", a.Config.RepoPath)

	if err := a.Locker.Acquire(); err != nil {
		if errors.Is(err, errors.ErrAlreadyRunning) {
			return err
		}
		return errors.Wrap(errors.ErrLockAcquisitionFailure, err.Error())
	}
	if l, ok := a.Locker.(*lock.Locker); ok && l.PreviousPID() != 0 {
		a.Logger.Warning("Recovered stale lock left by PID %d", l.PreviousPID())
	}

	report, runErr := a.Committer.Run(ctx, g)
	if report == nil {
		return runErr
	}
	a.report = report
	a.Committer.PrintSummary(report)

	// An interrupt is a normal way to stop; the summary already says so.
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	if a.Config.Strict && !report.OK() {
		return errors.Wrapf(errors.ErrCommitFailures, "%d of %d commits created", report.Created(), report.Total)
	}
	return nil
}

// Report returns the outcome of the last commit run, or nil.
func (a *App) Report() *git.Report {
	return a.report
}

// ShowVersion displays version information
func (a *App) ShowVersion() {
	_, _ = fmt.Fprintf(a.Stdout, "gitpix %s (%s) built on %s\n",
		a.Config.VersionInfo.Version,
		a.Config.VersionInfo.Commit,
		a.Config.VersionInfo.Date)
}

// ShowLogo displays the logo with the tagline centred beneath it
func (a *App) ShowLogo() {
	_, _ = fmt.Fprintln(a.Stdout, constants.Logo)
	_, _ = fmt.Fprintln(a.Stdout, "")

	padding := (lipgloss.Width(constants.Logo) - len(constants.Tagline)) / 2
	if padding < 0 {
		padding = 0
	}
	_, _ = fmt.Fprintln(a.Stdout, strings.Repeat(" ", padding)+constants.Tagline)
}

// checkRequiredCommands verifies git is available in PATH
func (a *App) checkRequiredCommands() error {
	if _, err := a.execLookPath("git"); err != nil {
		return fmt.Errorf("git is not found in PATH")
	}
	return nil
}

// Close releases resources held by the App
func (a *App) Close() error {
	var errs []error

	if a.Locker != nil {
		if err := a.Locker.Release(); err != nil {
			if a.Logger != nil {
				a.Logger.Error("Failed to release lock during cleanup: %v", err)
			} else {
				_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to release lock during cleanup: %v\n", err)
			}
			errs = append(errs, err)
		}
	}

	if a.Logger != nil {
		if err := a.Logger.Close(); err != nil {
			_, _ = fmt.Fprintf(a.Stderr, "❌ Failed to close logger: %v\n", err)
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// CleanupOnSignal releases the lock when the process is forced to exit
// before Run has returned.
func (a *App) CleanupOnSignal() {
	if err := a.Close(); err != nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error during cleanup: %v\n", err)
	}
}
