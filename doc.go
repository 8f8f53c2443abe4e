// Package gitpix paints pixel art onto a git contribution heatmap
//
// gitpix draws a ghost fleeing from Pac-Man across the 7x52 grid of a
// one-year contribution graph. Every background cell of the picture gets a
// fixed number of empty commits dated on that cell's day, so the characters
// show up as light silhouettes against a dark year.
//
// # Quick Start
//
//	# Look at what will be drawn and how many commits it takes
//	gitpix
//
//	# Create the commits in a throwaway repository
//	git init art && cd art
//	gitpix --commit
//
//	# Publish when the summary says it is safe
//	git push
//
// # Module Structure
//
// The module is organized into these packages:
//
//   - cmd/gitpix: Command-line interface
//   - internal/sprite: The two 7x7 character bitmaps
//   - internal/grid: Compositing, inversion and shading of the 7x52 grid
//   - internal/calendar: Mapping grid cells to calendar days
//   - internal/preview: Text rendering of the grid and its statistics
//   - internal/git: The commit driver and its per-commit report
//   - internal/config: Defaults, YAML file, environment and flags
//   - internal/lock: File-based locking per repository
//   - internal/logger: Logging facilities
//   - internal/errors: Error handling utilities
//   - internal/constants: Logo and tagline
//
// # Calendar Alignment
//
// Column 0, row 0 is the Sunday on or before today, 51 weeks back. Hosting
// services do not document the exact window of their graph, so the picture
// may land one column off. Run gitpix on the day you intend to push.
//
// # Re-running
//
// Each commit run starts numbering at 1 and appends a full new set of
// commits. Running twice doubles the history. The summary prints the
// git reset command that removes a run before it is pushed.
//
// # Implementation Notes
//
// gitpix uses the command-line Git executable rather than a Go Git library.
// Author and committer dates are passed per invocation through
// GIT_AUTHOR_DATE and GIT_COMMITTER_DATE; the process environment is never
// modified.
package gitpix
