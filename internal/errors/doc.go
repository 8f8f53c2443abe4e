// Package errors provides error handling utilities for the gitpix application.
//
// It defines the sentinel errors the rest of the module compares against with
// Is, plus typed errors (GitError, LockError, ConfigError) that carry enough
// context to explain a failure to the user without losing the wrapped cause.
//
// # Usage
//
//	if err != nil {
//	    return errors.Wrap(err, "failed to open file")
//	}
//
// A failed git invocation is reported as a *GitError; Reason returns git's own
// stderr when present, which is what the commit report records per commit:
//
//	var gitErr *errors.GitError
//	if errors.As(err, &gitErr) {
//	    fmt.Println(gitErr.Reason())
//	}
//
// # Compatibility
//
// The package is compatible with the standard library errors package; Is, As
// and Join delegate to it directly.
package errors
