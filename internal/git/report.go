package git

import (
	"time"

	"github.com/bashhack/gitpix/internal/errors"
)

// Result is the outcome of one commit invocation.
type Result struct {
	Seq  int
	Col  int
	Row  int
	Date time.Time
	Err  error
}

// OK reports whether the commit was created.
func (r Result) OK() bool {
	return r.Err == nil
}

// Reason describes why the commit failed, preferring git's own stderr.
func (r Result) Reason() string {
	if r.Err == nil {
		return ""
	}
	var gitErr *errors.GitError
	if errors.As(r.Err, &gitErr) {
		return gitErr.Reason()
	}
	return r.Err.Error()
}

// Report collects every invocation of a commit run.
type Report struct {
	RunID string
	Start time.Time

	// Total is the grid's total weight: the number of commits the run needs.
	Total int

	// Attempted counts invocations. It equals Total unless the run was interrupted.
	Attempted int

	// Failed counts invocations that exited non-zero.
	Failed int

	Interrupted bool
	Results     []Result
}

// Created is the number of commits that succeeded.
func (r *Report) Created() int {
	return r.Attempted - r.Failed
}

// Failures returns the failed results in order.
func (r *Report) Failures() []Result {
	var failed []Result
	for _, res := range r.Results {
		if !res.OK() {
			failed = append(failed, res)
		}
	}
	return failed
}

// OK reports whether the run completed with no failures, meaning the new
// history is complete and safe to push.
func (r *Report) OK() bool {
	return r.Failed == 0 && !r.Interrupted && r.Attempted == r.Total
}
