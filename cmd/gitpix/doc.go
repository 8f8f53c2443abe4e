/*
Gitpix paints pixel art onto a contribution heatmap using backdated, empty
git commits.

Usage:

	gitpix [flags]

Without flags gitpix prints a preview of the 7x52 heatmap, the calendar range
it covers and the number of commits needed. Nothing is written.

With --commit it creates the commits in the repository given by --repo (or
the current directory). Each background cell of the picture receives
--weight commits dated at noon of that cell's day. A failed commit is
reported and skipped; the run goes on. When every commit succeeded gitpix
suggests running git push. It never pushes by itself.

The flags are:

	--commit
		Create the commits instead of printing the preview.
	--repo path
		Repository to write to (default: current directory).
	--weight n
		Commits per background cell, 1 to 100 (default: 10).
	--prefix text
		Commit message prefix (default: "pixel").
	--progress-every n
		Print progress every n commits, 0 to disable (default: 200).
	--strict
		Exit with status 1 if any commit failed.
	--quiet
		Hide informational messages.
	--debug
		Write an internal log file.
	--log-file path
		Log file location (default: ~/.local/share/gitpix/logs/gitpix-<hash>.log).
	--config path
		YAML file with default settings.
	--version
		Print version information and exit.
	--logo
		Display the logo and exit.

SIGINT or SIGTERM stops a commit run before its next commit and prints the
summary. A second signal exits immediately.
*/
package main
