// Package git drives the git executable to paint a contribution heatmap.
//
// A Committer walks a shaded grid in column-major order and, for every
// unit of weight in a cell, creates one empty commit whose author and
// committer dates are noon of that cell's day. The dates are passed to
// each git invocation through GIT_AUTHOR_DATE and GIT_COMMITTER_DATE; the
// process environment is never modified.
//
// # Core Components
//
// - Committer: runs the commit loop and prints progress and a summary
// - CommandExecutor: interface for executing git commands
// - Report: per-invocation outcome of a run
//
// # Usage
//
//	committer, err := git.NewCommitter(git.CommitterConfig{
//	    RepoPath:      "/path/to/repo",
//	    MessagePrefix: git.DefaultMessagePrefix,
//	    ProgressEvery: git.DefaultProgressEvery,
//	}, logger)
//	if err != nil {
//	    // Handle error
//	}
//
//	report, err := committer.Run(ctx, grid.Build(grid.DefaultLayout(), grid.DefaultWeight))
//	committer.PrintSummary(report)
//
// # Error Handling
//
// A failed commit does not stop the run. Its stderr is printed, the
// failure is recorded in the Report, and the next commit is attempted.
// Run returns an error only when its context is cancelled, together with
// the partial report.
//
// # Concurrency Model
//
// Commits are created one at a time. A Committer should be used from a
// single goroutine; concurrent runs against one repository are prevented
// by the lock package.
package git
